package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "fleetflow-backend/internal/adapter/http"
	"fleetflow-backend/internal/adapter/middleware"
	"fleetflow-backend/internal/adapter/repository/mysql"
	"fleetflow-backend/internal/config"
	"fleetflow-backend/internal/domain/account"
	"fleetflow-backend/internal/infrastructure/cache"
	"fleetflow-backend/internal/infrastructure/db"
	"fleetflow-backend/internal/usecase/approval"
	"fleetflow-backend/internal/usecase/compliance"
	"fleetflow-backend/internal/usecase/dashboard"
	"fleetflow-backend/internal/usecase/dispatch"
	"fleetflow-backend/internal/usecase/fleet"
	ledgeruc "fleetflow-backend/internal/usecase/ledger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.SeedManager(ctx, gdb, cfg.ManagerUsername, cfg.ManagerPassword); err != nil {
		cancel()
		log.Fatalf("seed: %v", err)
	}
	cancel()

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	accounts := mysql.NewAccountRepository(gdb)
	vehicles := mysql.NewVehicleRepository(gdb)
	drivers := mysql.NewDriverRepository(gdb)
	trips := mysql.NewTripRepository(gdb)
	maintenance := mysql.NewMaintenanceRepository(gdb)
	fuel := mysql.NewFuelRepository(gdb)
	reports := mysql.NewReportRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	approvalUC := approval.NewUsecase(accounts, unit)
	dispatchUC := dispatch.NewUsecase(trips, unit)
	fleetUC := fleet.NewUsecase(vehicles, drivers, trips, unit)
	ledgerUC := ledgeruc.NewUsecase(maintenance, fuel, unit)
	complianceUC := compliance.NewUsecase(drivers, unit)
	dashboardUC := dashboard.NewUsecase(accounts, vehicles, drivers, trips, maintenance, fuel, reports)

	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(approvalUC, cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	accountH := httpadp.NewAccountHandler(approvalUC)
	vehicleH := httpadp.NewVehicleHandler(fleetUC)
	driverH := httpadp.NewDriverHandler(fleetUC, complianceUC)
	tripH := httpadp.NewTripHandler(dispatchUC)
	ledgerH := httpadp.NewLedgerHandler(ledgerUC)
	dashH := httpadp.NewDashboardHandler(dashboardUC)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	auth := middleware.RequireAuth(cfg.JWTSecret)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)
	managerOnly := middleware.RequireRoles(account.RoleManager)
	dispatcherOnly := middleware.RequireRoles(account.RoleDispatcher)
	safetyOnly := middleware.RequireRoles(account.RoleSafetyOfficer)
	financeOnly := middleware.RequireRoles(account.RoleFinancialAnalyst)

	e.GET("/health", h.Health)
	e.POST("/auth/register", authH.Register)
	e.POST("/auth/login", authH.Login)
	e.GET("/auth/roles", authH.AvailableRoles)

	users := e.Group("/users", auth, managerOnly)
	users.POST("/:id/approve", accountH.Approve)
	users.POST("/:id/reject", accountH.Reject)
	users.DELETE("/:id", accountH.Remove)

	veh := e.Group("/vehicles", auth)
	veh.GET("", vehicleH.List)
	veh.GET("/:id", vehicleH.Get)
	veh.POST("", vehicleH.Create, managerOnly)
	veh.PUT("/:id", vehicleH.Update, managerOnly)
	veh.DELETE("/:id", vehicleH.Delete, managerOnly)
	veh.POST("/:id/restore", vehicleH.Restore, managerOnly, idemp)

	drv := e.Group("/drivers", auth)
	drv.GET("", driverH.List)
	drv.GET("/:id", driverH.Get)
	drv.POST("", driverH.Create, managerOnly)
	drv.PUT("/:id", driverH.Update, managerOnly)
	drv.DELETE("/:id", driverH.Delete, managerOnly)
	drv.POST("/:id/suspend", driverH.Suspend, safetyOnly, idemp)
	drv.POST("/:id/reactivate", driverH.Reactivate, safetyOnly, idemp)
	drv.PUT("/:id/compliance", driverH.UpdateProfile, safetyOnly)

	trip := e.Group("/trips", auth, dispatcherOnly)
	trip.GET("", tripH.List)
	trip.GET("/:id", tripH.Get)
	trip.POST("", tripH.Create, idemp)
	trip.POST("/:id/dispatch", tripH.Dispatch, idemp)
	trip.POST("/:id/complete", tripH.Complete, idemp)
	trip.POST("/:id/cancel", tripH.Cancel, idemp)

	e.GET("/maintenance", ledgerH.ListMaintenance, auth, managerOnly)
	e.POST("/maintenance", ledgerH.LogMaintenance, auth, managerOnly, idemp)
	e.GET("/fuel", ledgerH.ListFuel, auth, financeOnly)
	e.POST("/fuel", ledgerH.LogFuel, auth, financeOnly, idemp)

	dash := e.Group("/dashboard", auth)
	dash.GET("/manager", dashH.Manager, managerOnly)
	dash.GET("/safety", dashH.Safety, safetyOnly)
	dash.GET("/financial", dashH.Financial, financeOnly)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
