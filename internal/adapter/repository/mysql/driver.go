package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/driver"
)

type DriverRepository struct{ db *gorm.DB }

func NewDriverRepository(db *gorm.DB) *DriverRepository { return &DriverRepository{db: db} }

// day truncates to a UTC date so expiry comparisons ignore time of day.
func day(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

func (r *DriverRepository) Create(ctx context.Context, d *driver.Driver) error {
	return translate(r.db.WithContext(ctx).Create(d).Error, driver.ErrDuplicateLicense)
}

func (r *DriverRepository) Save(ctx context.Context, d *driver.Driver) error {
	return translate(r.db.WithContext(ctx).Save(d).Error, driver.ErrDuplicateLicense)
}

func (r *DriverRepository) Delete(ctx context.Context, id uint64) error {
	return translate(r.db.WithContext(ctx).Delete(&driver.Driver{}, id).Error, nil)
}

func (r *DriverRepository) GetByID(ctx context.Context, id uint64) (*driver.Driver, error) {
	var out driver.Driver
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *DriverRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*driver.Driver, error) {
	var out driver.Driver
	res := forUpdate(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

func (r *DriverRepository) List(ctx context.Context) ([]driver.Driver, error) {
	var out []driver.Driver
	err := r.db.WithContext(ctx).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *DriverRepository) ListEligible(ctx context.Context, now time.Time) ([]driver.Driver, error) {
	var out []driver.Driver
	err := r.db.WithContext(ctx).
		Where("status = ? AND license_expiry_date >= ?", driver.StatusAvailable, day(now)).
		Order("name").
		Find(&out).Error
	return out, err
}

func (r *DriverRepository) UpdateStatus(ctx context.Context, id uint64, s driver.Status) error {
	return r.db.WithContext(ctx).
		Model(&driver.Driver{}).
		Where("id = ?", id).
		Update("status", s).Error
}

func (r *DriverRepository) CountByStatus(ctx context.Context, s driver.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&driver.Driver{}).
		Where("status = ?", s).
		Count(&n).Error
	return n, err
}

func (r *DriverRepository) CountExpiredLicenses(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&driver.Driver{}).
		Where("license_expiry_date < ?", day(now)).
		Count(&n).Error
	return n, err
}

func (r *DriverRepository) AverageSafetyScore(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&driver.Driver{}).
		Select("COALESCE(AVG(safety_score), 0)").
		Scan(&avg).Error
	return avg, err
}
