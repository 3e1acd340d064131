package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/domain/driver"
	"fleetflow-backend/internal/domain/trip"
	"fleetflow-backend/internal/domain/vehicle"
	"fleetflow-backend/internal/usecase/approval"
	"fleetflow-backend/internal/usecase/dispatch"
	"fleetflow-backend/internal/usecase/fleet"
	ledgeruc "fleetflow-backend/internal/usecase/ledger"
)

// TestFleetLifecycle drives the whole stack over a real store: registration
// and approval, registry setup, the full trip lifecycle, and the maintenance
// coupling. Statuses are re-read from the store at every step.
func TestFleetLifecycle(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	accounts := NewAccountRepository(db)
	vehicles := NewVehicleRepository(db)
	drivers := NewDriverRepository(db)
	trips := NewTripRepository(db)
	maintenance := NewMaintenanceRepository(db)
	fuel := NewFuelRepository(db)
	unit := NewGormUoW(db)

	approvalUC := approval.NewUsecase(accounts, unit)
	dispatchUC := dispatch.NewUsecase(trips, unit)
	fleetUC := fleet.NewUsecase(vehicles, drivers, trips, unit)
	ledgerUC := ledgeruc.NewUsecase(maintenance, fuel, unit)

	// seed the manager directly; registration never produces one
	manager := makeAccount("manager@fleet.local", account.RoleManager, account.StatusApproved)
	if err := accounts.Create(ctx, manager); err != nil {
		t.Fatalf("seed manager: %v", err)
	}
	actor := account.Actor{AccountID: manager.ID, Role: account.RoleManager}

	// register a dispatcher, approve it
	pending, err := approvalUC.RequestAccess(ctx, approval.RegisterInput{
		Name:     "Dina",
		Email:    "dina@fleet.local",
		Password: "dispatch-me",
		Role:     account.RoleDispatcher,
	})
	if err != nil {
		t.Fatalf("RequestAccess: %v", err)
	}
	if _, err := approvalUC.Authenticate(ctx, approval.LoginInput{Username: "dina@fleet.local", Password: "dispatch-me"}); !errors.Is(err, account.ErrNotApproved) {
		t.Fatalf("pending login: want ErrNotApproved, got %v", err)
	}
	if _, err := approvalUC.Decide(ctx, actor, pending.ID, approval.OutcomeApprove); err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if _, err := approvalUC.Authenticate(ctx, approval.LoginInput{Username: "dina@fleet.local", Password: "dispatch-me"}); err != nil {
		t.Fatalf("approved login: %v", err)
	}
	// decided accounts stay decided
	if _, err := approvalUC.Decide(ctx, actor, pending.ID, approval.OutcomeReject); !errors.Is(err, account.ErrNotPending) {
		t.Fatalf("re-decide: want ErrNotPending, got %v", err)
	}
	// the role is now taken
	if _, err := approvalUC.RequestAccess(ctx, approval.RegisterInput{
		Email: "rival@fleet.local", Password: "x", Role: account.RoleDispatcher,
	}); !errors.Is(err, account.ErrRoleOccupied) {
		t.Fatalf("second dispatcher: want ErrRoleOccupied, got %v", err)
	}

	// registry
	v, err := fleetUC.CreateVehicle(ctx, fleet.VehicleInput{
		ModelName: "Hino 300", LicensePlate: "B-9000-FL", MaxCapacityKg: 1000,
	})
	if err != nil {
		t.Fatalf("CreateVehicle: %v", err)
	}
	d, err := fleetUC.CreateDriver(ctx, fleet.DriverInput{
		Name: "Dani", LicenseNumber: "SIM-B2-77", LicenseExpiryDate: time.Now().AddDate(1, 0, 0),
	})
	if err != nil {
		t.Fatalf("CreateDriver: %v", err)
	}

	// draft within capacity
	tr, err := dispatchUC.CreateTrip(ctx, dispatch.CreateTripInput{
		VehicleID: v.ID, DriverID: d.ID, CargoWeight: 800,
		Origin: "Jakarta", Destination: "Surabaya",
	})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	if tr.Status != trip.StatusDraft {
		t.Fatalf("trip status = %s, want Draft", tr.Status)
	}
	gotV, _ := vehicles.GetByID(ctx, v.ID)
	gotD, _ := drivers.GetByID(ctx, d.ID)
	if gotV.Status != vehicle.StatusAvailable || gotD.Status != driver.StatusAvailable {
		t.Fatalf("draft must not bind: vehicle=%s driver=%s", gotV.Status, gotD.Status)
	}

	// over-capacity draft is refused
	if _, err := dispatchUC.CreateTrip(ctx, dispatch.CreateTripInput{
		VehicleID: v.ID, DriverID: d.ID, CargoWeight: 1001,
		Origin: "A", Destination: "B",
	}); !errors.Is(err, trip.ErrCapacityExceeded) {
		t.Fatalf("want ErrCapacityExceeded, got %v", err)
	}

	// dispatch binds all three
	if _, err := dispatchUC.Dispatch(ctx, tr.ID); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	gotV, _ = vehicles.GetByID(ctx, v.ID)
	gotD, _ = drivers.GetByID(ctx, d.ID)
	if gotV.Status != vehicle.StatusOnTrip || gotD.Status != driver.StatusOnTrip {
		t.Fatalf("dispatch must bind: vehicle=%s driver=%s", gotV.Status, gotD.Status)
	}

	// maintenance on the active vehicle leaves the trip dispatched, and
	// restore is refused until the trip reaches a terminal state
	if _, err := ledgerUC.LogMaintenance(ctx, ledgeruc.MaintenanceInput{
		VehicleID: v.ID, Description: "roadside check", Cost: 50, Date: time.Now(),
	}); err != nil {
		t.Fatalf("LogMaintenance: %v", err)
	}
	gotV, _ = vehicles.GetByID(ctx, v.ID)
	if gotV.Status != vehicle.StatusInShop {
		t.Fatalf("vehicle status = %s, want In Shop", gotV.Status)
	}
	gotT, _ := trips.GetByID(ctx, tr.ID)
	if gotT.Status != trip.StatusDispatched {
		t.Fatalf("maintenance must not touch the trip, got %s", gotT.Status)
	}
	if _, err := fleetUC.RestoreVehicle(ctx, v.ID); !errors.Is(err, vehicle.ErrActiveTrip) {
		t.Fatalf("restore during trip: want ErrActiveTrip, got %v", err)
	}

	// completion releases vehicle and driver regardless of the shop detour
	if _, err := dispatchUC.Complete(ctx, tr.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	gotV, _ = vehicles.GetByID(ctx, v.ID)
	gotD, _ = drivers.GetByID(ctx, d.ID)
	gotT, _ = trips.GetByID(ctx, tr.ID)
	if gotT.Status != trip.StatusCompleted || gotV.Status != vehicle.StatusAvailable || gotD.Status != driver.StatusAvailable {
		t.Fatalf("completion incomplete: trip=%s vehicle=%s driver=%s", gotT.Status, gotV.Status, gotD.Status)
	}

	// terminal trips stay terminal
	if _, err := dispatchUC.Complete(ctx, tr.ID); !errors.Is(err, trip.ErrInvalidTransition) {
		t.Fatalf("double complete: want ErrInvalidTransition, got %v", err)
	}

	// vehicle with history cannot be deleted
	if err := fleetUC.DeleteVehicle(ctx, v.ID); !errors.Is(err, vehicle.ErrInUse) {
		t.Fatalf("delete with history: want ErrInUse, got %v", err)
	}
}

// TestDispatchAfterMaintenance covers the race shape where the vehicle goes
// to the shop between draft creation and dispatch.
func TestDispatchAfterMaintenance(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	vehicles := NewVehicleRepository(db)
	drivers := NewDriverRepository(db)
	trips := NewTripRepository(db)
	maintenance := NewMaintenanceRepository(db)
	fuel := NewFuelRepository(db)
	unit := NewGormUoW(db)

	dispatchUC := dispatch.NewUsecase(trips, unit)
	ledgerUC := ledgeruc.NewUsecase(maintenance, fuel, unit)

	vid, did := seedPair(t, vehicles, drivers)
	tr, err := dispatchUC.CreateTrip(ctx, dispatch.CreateTripInput{
		VehicleID: vid, DriverID: did, CargoWeight: 500,
		Origin: "A", Destination: "B",
	})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}

	if _, err := ledgerUC.LogMaintenance(ctx, ledgeruc.MaintenanceInput{
		VehicleID: vid, Description: "engine", Cost: 900, Date: time.Now(),
	}); err != nil {
		t.Fatalf("LogMaintenance: %v", err)
	}

	if _, err := dispatchUC.Dispatch(ctx, tr.ID); !errors.Is(err, vehicle.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
	gotT, _ := trips.GetByID(ctx, tr.ID)
	gotD, _ := drivers.GetByID(ctx, did)
	if gotT.Status != trip.StatusDraft || gotD.Status != driver.StatusAvailable {
		t.Fatalf("failed dispatch must be a no-op: trip=%s driver=%s", gotT.Status, gotD.Status)
	}
}
