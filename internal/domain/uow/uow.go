package uow

import (
	"context"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/ledger"
	"fleetflow-backend/internal/domain/trip"
	"fleetflow-backend/internal/domain/vehicle"
)

// Repos bundles every repository bound to one transaction. Operations that
// must move trip, vehicle and driver state as a single atomic unit receive a
// Repos and never touch repositories bound to the outer connection.
type Repos struct {
	Accounts    account.Repository
	Vehicles    vehicle.Repository
	Drivers     driver.Repository
	Trips       trip.Repository
	Maintenance ledger.MaintenanceRepository
	Fuel        ledger.FuelRepository
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
