package mysql

import (
	"context"

	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/ledger"
)

type ReportRepository struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{db: db} }

// VehicleCosts aggregates fuel and maintenance spend per vehicle with a
// cost-per-completed-trip column (NULL when no trips completed). Plain SQL
// that runs identically on mysql and sqlite.
func (r *ReportRepository) VehicleCosts(ctx context.Context) ([]ledger.VehicleCost, error) {
	var out []ledger.VehicleCost
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			v.id AS vehicle_id,
			v.license_plate,
			v.model_name,
			COALESCE(f.fuel_cost, 0) AS fuel_cost,
			COALESCE(m.maintenance_cost, 0) AS maintenance_cost,
			COALESCE(f.fuel_cost, 0) + COALESCE(m.maintenance_cost, 0) AS total_cost,
			COALESCE(tc.completed_trips, 0) AS completed_trips,
			CASE
				WHEN COALESCE(tc.completed_trips, 0) = 0 THEN NULL
				ELSE (COALESCE(f.fuel_cost, 0) + COALESCE(m.maintenance_cost, 0)) / tc.completed_trips
			END AS cost_per_trip
		FROM vehicles v
		LEFT JOIN (
			SELECT vehicle_id, SUM(cost) AS fuel_cost
			FROM fuel_logs
			GROUP BY vehicle_id
		) f ON f.vehicle_id = v.id
		LEFT JOIN (
			SELECT vehicle_id, SUM(cost) AS maintenance_cost
			FROM maintenance_logs
			GROUP BY vehicle_id
		) m ON m.vehicle_id = v.id
		LEFT JOIN (
			SELECT vehicle_id, COUNT(*) AS completed_trips
			FROM trips
			WHERE status = ?
			GROUP BY vehicle_id
		) tc ON tc.vehicle_id = v.id
		ORDER BY v.license_plate
	`, "Completed").Scan(&out).Error
	return out, err
}
