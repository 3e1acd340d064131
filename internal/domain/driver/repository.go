package driver

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d *Driver) error
	Save(ctx context.Context, d *Driver) error
	Delete(ctx context.Context, id uint64) error

	GetByID(ctx context.Context, id uint64) (*Driver, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Driver, error)
	List(ctx context.Context) ([]Driver, error)
	// ListEligible returns drivers that are Available with an unexpired
	// license, the only ones a dispatcher may assign.
	ListEligible(ctx context.Context, now time.Time) ([]Driver, error)

	UpdateStatus(ctx context.Context, id uint64, s Status) error
	CountByStatus(ctx context.Context, s Status) (int64, error)
	CountExpiredLicenses(ctx context.Context, now time.Time) (int64, error)
	AverageSafetyScore(ctx context.Context) (float64, error)
}
