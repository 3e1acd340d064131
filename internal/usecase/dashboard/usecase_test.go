package dashboard

import (
	"context"
	"testing"
	"time"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/ledger"
	"fleetflow-backend/internal/domain/trip"
	"fleetflow-backend/internal/domain/vehicle"
	"fleetflow-backend/internal/testutil/accountmock"
	"fleetflow-backend/internal/testutil/drivermock"
	"fleetflow-backend/internal/testutil/ledgermock"
	"fleetflow-backend/internal/testutil/tripmock"
	"fleetflow-backend/internal/testutil/vehiclemock"
)

func TestManagerView(t *testing.T) {
	ctx := context.Background()

	vehicles := &vehiclemock.Repo{
		CountByStatusFn: func(_ context.Context, s vehicle.Status) (int64, error) {
			switch s {
			case vehicle.StatusOnTrip:
				return 3, nil
			case vehicle.StatusInShop:
				return 1, nil
			case vehicle.StatusAvailable:
				return 6, nil
			}
			return 0, nil
		},
	}
	drivers := &drivermock.Repo{
		CountExpiredLicensesFn: func(context.Context, time.Time) (int64, error) { return 2, nil },
		AverageSafetyScoreFn:   func(context.Context) (float64, error) { return 81.5, nil },
	}
	trips := &tripmock.Repo{
		CountByStatusFn: func(_ context.Context, s trip.Status) (int64, error) {
			if s == trip.StatusDraft {
				return 4, nil
			}
			return 0, nil
		},
		RecentFn: func(_ context.Context, limit int) ([]trip.Summary, error) {
			if limit != 8 {
				t.Fatalf("recent trips limit = %d, want 8", limit)
			}
			return []trip.Summary{{LicensePlate: "B-1"}}, nil
		},
	}
	maintenance := &ledgermock.MaintenanceRepo{
		TotalCostFn: func(context.Context) (float64, error) { return 300, nil },
	}
	fuel := &ledgermock.FuelRepo{
		TotalCostFn: func(context.Context) (float64, error) { return 120.5, nil },
	}
	accounts := &accountmock.Repo{
		ListPendingFn: func(context.Context) ([]account.Account, error) {
			return []account.Account{{ID: 5, Status: account.StatusPending}}, nil
		},
		ListApprovedRestrictedFn: func(context.Context) ([]account.Account, error) {
			return []account.Account{{ID: 6, Status: account.StatusApproved}}, nil
		},
	}

	uc := NewUsecase(accounts, vehicles, drivers, trips, maintenance, fuel, &ledgermock.ReportRepo{})
	view, err := uc.Manager(ctx)
	if err != nil {
		t.Fatalf("Manager: %v", err)
	}
	if view.ActiveFleet != 3 || view.InMaintenance != 1 || view.AvailableVehicles != 6 {
		t.Fatalf("unexpected vehicle counts: %+v", view)
	}
	if view.PendingTrips != 4 || view.ExpiredLicenses != 2 || view.AvgSafetyScore != 81.5 {
		t.Fatalf("unexpected aggregates: %+v", view)
	}
	if view.TotalOperationalCost != 420.5 {
		t.Fatalf("total cost = %v, want 420.5", view.TotalOperationalCost)
	}
	if len(view.RecentTrips) != 1 || len(view.PendingRoleRequests) != 1 || len(view.ApprovedRoleUsers) != 1 {
		t.Fatalf("listing sections missing: %+v", view)
	}
}

func TestSafetyView(t *testing.T) {
	ctx := context.Background()
	valid := time.Now().AddDate(1, 0, 0)
	expired := time.Now().AddDate(0, 0, -3)

	drivers := &drivermock.Repo{
		CountExpiredLicensesFn: func(context.Context, time.Time) (int64, error) { return 1, nil },
		CountByStatusFn: func(_ context.Context, s driver.Status) (int64, error) {
			if s == driver.StatusSuspended {
				return 1, nil
			}
			return 0, nil
		},
		AverageSafetyScoreFn: func(context.Context) (float64, error) { return 70, nil },
		ListFn: func(context.Context) ([]driver.Driver, error) {
			return []driver.Driver{
				{ID: 1, LicenseExpiryDate: valid, Status: driver.StatusAvailable},
				{ID: 2, LicenseExpiryDate: expired, Status: driver.StatusSuspended},
			}, nil
		},
	}
	trips := &tripmock.Repo{
		CountCompletedByDriverFn: func(_ context.Context, driverID uint64) (int64, error) {
			if driverID == 1 {
				return 7, nil
			}
			return 0, nil
		},
	}

	uc := NewUsecase(&accountmock.Repo{}, &vehiclemock.Repo{}, drivers, trips,
		&ledgermock.MaintenanceRepo{}, &ledgermock.FuelRepo{}, &ledgermock.ReportRepo{})
	view, err := uc.Safety(ctx)
	if err != nil {
		t.Fatalf("Safety: %v", err)
	}
	if len(view.Drivers) != 2 {
		t.Fatalf("want 2 driver rows, got %d", len(view.Drivers))
	}
	if view.Drivers[0].LicenseExpired || view.Drivers[0].CompletedTrips != 7 {
		t.Fatalf("row 0 wrong: %+v", view.Drivers[0])
	}
	if !view.Drivers[1].LicenseExpired || view.Drivers[1].CompletedTrips != 0 {
		t.Fatalf("row 1 wrong: %+v", view.Drivers[1])
	}
}

func TestFinancialView(t *testing.T) {
	ctx := context.Background()

	perTrip := 60.0
	reports := &ledgermock.ReportRepo{
		VehicleCostsFn: func(context.Context) ([]ledger.VehicleCost, error) {
			return []ledger.VehicleCost{
				{VehicleID: 1, TotalCost: 120, CompletedTrips: 2, CostPerTrip: &perTrip},
				{VehicleID: 2, TotalCost: 30, CompletedTrips: 0, CostPerTrip: nil},
			}, nil
		},
	}
	maintenance := &ledgermock.MaintenanceRepo{
		TotalCostFn: func(context.Context) (float64, error) { return 100, nil },
		RecentFn: func(_ context.Context, limit int) ([]ledger.MaintenanceEntry, error) {
			if limit != 10 {
				t.Fatalf("recent maintenance limit = %d, want 10", limit)
			}
			return nil, nil
		},
	}
	fuel := &ledgermock.FuelRepo{
		TotalCostFn: func(context.Context) (float64, error) { return 50, nil },
	}
	trips := &tripmock.Repo{
		CountByStatusFn: func(_ context.Context, s trip.Status) (int64, error) {
			if s == trip.StatusCompleted {
				return 2, nil
			}
			return 0, nil
		},
	}

	uc := NewUsecase(&accountmock.Repo{}, &vehiclemock.Repo{}, &drivermock.Repo{}, trips,
		maintenance, fuel, reports)
	view, err := uc.Financial(ctx)
	if err != nil {
		t.Fatalf("Financial: %v", err)
	}
	if view.TotalOperationalCost != 150 || view.CompletedTripCount != 2 {
		t.Fatalf("unexpected totals: %+v", view)
	}
	if len(view.CostRows) != 2 {
		t.Fatalf("want 2 cost rows, got %d", len(view.CostRows))
	}
	if view.CostRows[1].CostPerTrip != nil {
		t.Fatalf("vehicle with no completed trips must have nil cost per trip")
	}
}
