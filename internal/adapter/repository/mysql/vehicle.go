package mysql

import (
	"context"

	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/vehicle"
)

type VehicleRepository struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) *VehicleRepository { return &VehicleRepository{db: db} }

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	return translate(r.db.WithContext(ctx).Create(v).Error, vehicle.ErrDuplicatePlate)
}

func (r *VehicleRepository) Save(ctx context.Context, v *vehicle.Vehicle) error {
	return translate(r.db.WithContext(ctx).Save(v).Error, vehicle.ErrDuplicatePlate)
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint64) error {
	return translate(r.db.WithContext(ctx).Delete(&vehicle.Vehicle{}, id).Error, nil)
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uint64) (*vehicle.Vehicle, error) {
	var out vehicle.Vehicle
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *VehicleRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*vehicle.Vehicle, error) {
	var out vehicle.Vehicle
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

func (r *VehicleRepository) List(ctx context.Context) ([]vehicle.Vehicle, error) {
	var out []vehicle.Vehicle
	err := r.db.WithContext(ctx).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, id uint64, s vehicle.Status) error {
	return r.db.WithContext(ctx).
		Model(&vehicle.Vehicle{}).
		Where("id = ?", id).
		Update("status", s).Error
}

func (r *VehicleRepository) CountByStatus(ctx context.Context, s vehicle.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&vehicle.Vehicle{}).
		Where("status = ?", s).
		Count(&n).Error
	return n, err
}
