package vehicle

import "context"

type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	Save(ctx context.Context, v *Vehicle) error
	Delete(ctx context.Context, id uint64) error

	GetByID(ctx context.Context, id uint64) (*Vehicle, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Vehicle, error)
	List(ctx context.Context) ([]Vehicle, error)

	UpdateStatus(ctx context.Context, id uint64, s Status) error
	CountByStatus(ctx context.Context, s Status) (int64, error)
}
