package trip

import "context"

// Summary is a trip row joined with its vehicle plate and driver name for
// listings and dashboards.
type Summary struct {
	Trip
	LicensePlate string `json:"license_plate"`
	DriverName   string `json:"driver_name"`
}

type Repository interface {
	Create(ctx context.Context, t *Trip) error
	Save(ctx context.Context, t *Trip) error

	GetByID(ctx context.Context, id uint64) (*Trip, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Trip, error)
	List(ctx context.Context) ([]Summary, error)
	Recent(ctx context.Context, limit int) ([]Summary, error)
	RecentCompleted(ctx context.Context, limit int) ([]Summary, error)

	CountByStatus(ctx context.Context, s Status) (int64, error)
	// HasActiveForVehicle reports whether any Dispatched trip references the
	// vehicle.
	HasActiveForVehicle(ctx context.Context, vehicleID uint64) (bool, error)
	// ExistsForVehicle / ExistsForDriver report any trip history at all;
	// parents with history are restrict-on-delete.
	ExistsForVehicle(ctx context.Context, vehicleID uint64) (bool, error)
	ExistsForDriver(ctx context.Context, driverID uint64) (bool, error)
	CountCompletedByDriver(ctx context.Context, driverID uint64) (int64, error)
}
