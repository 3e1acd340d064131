package ledgermock

import (
	"context"

	domain "fleetflow-backend/internal/domain/ledger"
)

var (
	_ domain.MaintenanceRepository = (*MaintenanceRepo)(nil)
	_ domain.FuelRepository        = (*FuelRepo)(nil)
	_ domain.ReportRepository      = (*ReportRepo)(nil)
)

// MaintenanceRepo is a function-backed mock for domain.MaintenanceRepository.
type MaintenanceRepo struct {
	CreateFn    func(ctx context.Context, m *domain.MaintenanceLog) error
	ListFn      func(ctx context.Context) ([]domain.MaintenanceEntry, error)
	RecentFn    func(ctx context.Context, limit int) ([]domain.MaintenanceEntry, error)
	TotalCostFn func(ctx context.Context) (float64, error)
}

func (m *MaintenanceRepo) Create(ctx context.Context, log *domain.MaintenanceLog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, log)
	}
	return nil
}

func (m *MaintenanceRepo) List(ctx context.Context) ([]domain.MaintenanceEntry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MaintenanceRepo) Recent(ctx context.Context, limit int) ([]domain.MaintenanceEntry, error) {
	if m.RecentFn != nil {
		return m.RecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *MaintenanceRepo) TotalCost(ctx context.Context) (float64, error) {
	if m.TotalCostFn != nil {
		return m.TotalCostFn(ctx)
	}
	return 0, nil
}

// FuelRepo is a function-backed mock for domain.FuelRepository.
type FuelRepo struct {
	CreateFn    func(ctx context.Context, f *domain.FuelLog) error
	ListFn      func(ctx context.Context) ([]domain.FuelEntry, error)
	TotalCostFn func(ctx context.Context) (float64, error)
}

func (m *FuelRepo) Create(ctx context.Context, log *domain.FuelLog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, log)
	}
	return nil
}

func (m *FuelRepo) List(ctx context.Context) ([]domain.FuelEntry, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *FuelRepo) TotalCost(ctx context.Context) (float64, error) {
	if m.TotalCostFn != nil {
		return m.TotalCostFn(ctx)
	}
	return 0, nil
}

// ReportRepo is a function-backed mock for domain.ReportRepository.
type ReportRepo struct {
	VehicleCostsFn func(ctx context.Context) ([]domain.VehicleCost, error)
}

func (m *ReportRepo) VehicleCosts(ctx context.Context) ([]domain.VehicleCost, error) {
	if m.VehicleCostsFn != nil {
		return m.VehicleCostsFn(ctx)
	}
	return nil, nil
}
