// Package dashboard aggregates committed state for the three role views.
// Pure reads; no invariants beyond reflecting what is committed.
package dashboard

import (
	"context"
	"time"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/ledger"
	"fleetflow-backend/internal/domain/trip"
	"fleetflow-backend/internal/domain/vehicle"
)

const recentLimit = 8

type Usecase struct {
	accounts    account.Repository
	vehicles    vehicle.Repository
	drivers     driver.Repository
	trips       trip.Repository
	maintenance ledger.MaintenanceRepository
	fuel        ledger.FuelRepository
	reports     ledger.ReportRepository
}

func NewUsecase(
	accounts account.Repository,
	vehicles vehicle.Repository,
	drivers driver.Repository,
	trips trip.Repository,
	maintenance ledger.MaintenanceRepository,
	fuel ledger.FuelRepository,
	reports ledger.ReportRepository,
) *Usecase {
	return &Usecase{
		accounts:    accounts,
		vehicles:    vehicles,
		drivers:     drivers,
		trips:       trips,
		maintenance: maintenance,
		fuel:        fuel,
		reports:     reports,
	}
}

type ManagerView struct {
	ActiveFleet          int64             `json:"active_fleet"`
	InMaintenance        int64             `json:"in_maintenance"`
	AvailableVehicles    int64             `json:"available_vehicles"`
	PendingTrips         int64             `json:"pending_trips"`
	ExpiredLicenses      int64             `json:"expired_licenses"`
	AvgSafetyScore       float64           `json:"avg_safety_score"`
	TotalOperationalCost float64           `json:"total_operational_cost"`
	RecentTrips          []trip.Summary    `json:"recent_trips"`
	PendingRoleRequests  []account.Account `json:"pending_role_requests"`
	ApprovedRoleUsers    []account.Account `json:"approved_role_users"`
}

func (u *Usecase) Manager(ctx context.Context) (*ManagerView, error) {
	now := time.Now()
	view := &ManagerView{}

	var err error
	if view.ActiveFleet, err = u.vehicles.CountByStatus(ctx, vehicle.StatusOnTrip); err != nil {
		return nil, err
	}
	if view.InMaintenance, err = u.vehicles.CountByStatus(ctx, vehicle.StatusInShop); err != nil {
		return nil, err
	}
	if view.AvailableVehicles, err = u.vehicles.CountByStatus(ctx, vehicle.StatusAvailable); err != nil {
		return nil, err
	}
	if view.PendingTrips, err = u.trips.CountByStatus(ctx, trip.StatusDraft); err != nil {
		return nil, err
	}
	if view.ExpiredLicenses, err = u.drivers.CountExpiredLicenses(ctx, now); err != nil {
		return nil, err
	}
	if view.AvgSafetyScore, err = u.drivers.AverageSafetyScore(ctx); err != nil {
		return nil, err
	}
	maintCost, err := u.maintenance.TotalCost(ctx)
	if err != nil {
		return nil, err
	}
	fuelCost, err := u.fuel.TotalCost(ctx)
	if err != nil {
		return nil, err
	}
	view.TotalOperationalCost = maintCost + fuelCost

	if view.RecentTrips, err = u.trips.Recent(ctx, recentLimit); err != nil {
		return nil, err
	}
	if view.PendingRoleRequests, err = u.accounts.ListPending(ctx); err != nil {
		return nil, err
	}
	if view.ApprovedRoleUsers, err = u.accounts.ListApprovedRestricted(ctx); err != nil {
		return nil, err
	}
	return view, nil
}

type SafetyView struct {
	ExpiredLicenses  int64          `json:"expired_licenses"`
	SuspendedDrivers int64          `json:"suspended_drivers"`
	AvgSafetyScore   float64        `json:"avg_safety_score"`
	Drivers          []DriverReview `json:"drivers"`
}

type DriverReview struct {
	driver.Driver
	LicenseExpired bool  `json:"license_expired"`
	CompletedTrips int64 `json:"completed_trips"`
}

func (u *Usecase) Safety(ctx context.Context) (*SafetyView, error) {
	now := time.Now()
	view := &SafetyView{}

	var err error
	if view.ExpiredLicenses, err = u.drivers.CountExpiredLicenses(ctx, now); err != nil {
		return nil, err
	}
	if view.SuspendedDrivers, err = u.drivers.CountByStatus(ctx, driver.StatusSuspended); err != nil {
		return nil, err
	}
	if view.AvgSafetyScore, err = u.drivers.AverageSafetyScore(ctx); err != nil {
		return nil, err
	}

	all, err := u.drivers.List(ctx)
	if err != nil {
		return nil, err
	}
	view.Drivers = make([]DriverReview, 0, len(all))
	for i := range all {
		d := all[i]
		completed, err := u.trips.CountCompletedByDriver(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		view.Drivers = append(view.Drivers, DriverReview{
			Driver:         d,
			LicenseExpired: d.LicenseExpired(now),
			CompletedTrips: completed,
		})
	}
	return view, nil
}

type FinancialView struct {
	TotalFuelCost        float64                   `json:"total_fuel_cost"`
	TotalMaintenanceCost float64                   `json:"total_maintenance_cost"`
	TotalOperationalCost float64                   `json:"total_operational_cost"`
	CompletedTripCount   int64                     `json:"completed_trip_count"`
	CostRows             []ledger.VehicleCost      `json:"cost_rows"`
	CompletedTrips       []trip.Summary            `json:"completed_trips"`
	RecentMaintenance    []ledger.MaintenanceEntry `json:"recent_maintenance"`
}

func (u *Usecase) Financial(ctx context.Context) (*FinancialView, error) {
	view := &FinancialView{}

	var err error
	if view.TotalFuelCost, err = u.fuel.TotalCost(ctx); err != nil {
		return nil, err
	}
	if view.TotalMaintenanceCost, err = u.maintenance.TotalCost(ctx); err != nil {
		return nil, err
	}
	view.TotalOperationalCost = view.TotalFuelCost + view.TotalMaintenanceCost

	if view.CompletedTripCount, err = u.trips.CountByStatus(ctx, trip.StatusCompleted); err != nil {
		return nil, err
	}
	if view.CostRows, err = u.reports.VehicleCosts(ctx); err != nil {
		return nil, err
	}
	if view.CompletedTrips, err = u.trips.RecentCompleted(ctx, 10); err != nil {
		return nil, err
	}
	if view.RecentMaintenance, err = u.maintenance.Recent(ctx, 10); err != nil {
		return nil, err
	}
	return view, nil
}
