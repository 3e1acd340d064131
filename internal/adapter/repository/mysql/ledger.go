package mysql

import (
	"context"

	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/ledger"
)

type MaintenanceRepository struct{ db *gorm.DB }

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *ledger.MaintenanceLog) error {
	return translate(r.db.WithContext(ctx).Create(m).Error, nil)
}

func (r *MaintenanceRepository) entries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("maintenance_logs AS m").
		Select("m.*, v.license_plate").
		Joins("JOIN vehicles v ON v.id = m.vehicle_id")
}

func (r *MaintenanceRepository) List(ctx context.Context) ([]ledger.MaintenanceEntry, error) {
	var out []ledger.MaintenanceEntry
	err := r.entries(ctx).Order("m.id DESC").Scan(&out).Error
	return out, err
}

func (r *MaintenanceRepository) Recent(ctx context.Context, limit int) ([]ledger.MaintenanceEntry, error) {
	var out []ledger.MaintenanceEntry
	err := r.entries(ctx).Order("m.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

func (r *MaintenanceRepository) TotalCost(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&ledger.MaintenanceLog{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return total, err
}

type FuelRepository struct{ db *gorm.DB }

func NewFuelRepository(db *gorm.DB) *FuelRepository { return &FuelRepository{db: db} }

func (r *FuelRepository) Create(ctx context.Context, f *ledger.FuelLog) error {
	return translate(r.db.WithContext(ctx).Create(f).Error, nil)
}

func (r *FuelRepository) List(ctx context.Context) ([]ledger.FuelEntry, error) {
	var out []ledger.FuelEntry
	err := r.db.WithContext(ctx).
		Table("fuel_logs AS f").
		Select("f.*, v.license_plate").
		Joins("JOIN vehicles v ON v.id = f.vehicle_id").
		Order("f.id DESC").
		Scan(&out).Error
	return out, err
}

func (r *FuelRepository) TotalCost(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&ledger.FuelLog{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return total, err
}
