package ledger

import "context"

type MaintenanceRepository interface {
	Create(ctx context.Context, m *MaintenanceLog) error
	List(ctx context.Context) ([]MaintenanceEntry, error)
	Recent(ctx context.Context, limit int) ([]MaintenanceEntry, error)
	TotalCost(ctx context.Context) (float64, error)
}

type FuelRepository interface {
	Create(ctx context.Context, f *FuelLog) error
	List(ctx context.Context) ([]FuelEntry, error)
	TotalCost(ctx context.Context) (float64, error)
}

// ReportRepository serves the financial dashboard's per-vehicle aggregation.
// Pure reads over committed state.
type ReportRepository interface {
	VehicleCosts(ctx context.Context) ([]VehicleCost, error)
}
