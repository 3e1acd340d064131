package mysql

import (
	"context"

	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/trip"
)

type TripRepository struct{ db *gorm.DB }

func NewTripRepository(db *gorm.DB) *TripRepository { return &TripRepository{db: db} }

func (r *TripRepository) Create(ctx context.Context, t *trip.Trip) error {
	return translate(r.db.WithContext(ctx).Create(t).Error, nil)
}

func (r *TripRepository) Save(ctx context.Context, t *trip.Trip) error {
	return translate(r.db.WithContext(ctx).Save(t).Error, nil)
}

func (r *TripRepository) GetByID(ctx context.Context, id uint64) (*trip.Trip, error) {
	var out trip.Trip
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *TripRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*trip.Trip, error) {
	var out trip.Trip
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

func (r *TripRepository) summaries(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("trips AS t").
		Select("t.*, v.license_plate, d.name AS driver_name").
		Joins("JOIN vehicles v ON v.id = t.vehicle_id").
		Joins("JOIN drivers d ON d.id = t.driver_id")
}

func (r *TripRepository) List(ctx context.Context) ([]trip.Summary, error) {
	var out []trip.Summary
	err := r.summaries(ctx).Order("t.id DESC").Scan(&out).Error
	return out, err
}

func (r *TripRepository) Recent(ctx context.Context, limit int) ([]trip.Summary, error) {
	var out []trip.Summary
	err := r.summaries(ctx).Order("t.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

func (r *TripRepository) RecentCompleted(ctx context.Context, limit int) ([]trip.Summary, error) {
	var out []trip.Summary
	err := r.summaries(ctx).
		Where("t.status = ?", trip.StatusCompleted).
		Order("t.id DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *TripRepository) CountByStatus(ctx context.Context, s trip.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&trip.Trip{}).
		Where("status = ?", s).
		Count(&n).Error
	return n, err
}

func (r *TripRepository) HasActiveForVehicle(ctx context.Context, vehicleID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&trip.Trip{}).
		Where("vehicle_id = ? AND status = ?", vehicleID, trip.StatusDispatched).
		Count(&n).Error
	return n > 0, err
}

func (r *TripRepository) ExistsForVehicle(ctx context.Context, vehicleID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&trip.Trip{}).
		Where("vehicle_id = ?", vehicleID).
		Count(&n).Error
	return n > 0, err
}

func (r *TripRepository) ExistsForDriver(ctx context.Context, driverID uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&trip.Trip{}).
		Where("driver_id = ?", driverID).
		Count(&n).Error
	return n > 0, err
}

func (r *TripRepository) CountCompletedByDriver(ctx context.Context, driverID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&trip.Trip{}).
		Where("driver_id = ? AND status = ?", driverID, trip.StatusCompleted).
		Count(&n).Error
	return n, err
}
