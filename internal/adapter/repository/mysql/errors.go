package mysql

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fleetflow-backend/internal/domain/storage"
)

// translate maps gorm's translated driver errors onto domain errors. A
// duplicate key becomes onDuplicate when the caller has a specific meaning
// for it; anything else constraint-shaped is the generic backstop class.
func translate(err, onDuplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		if onDuplicate != nil {
			return onDuplicate
		}
		return storage.ErrConstraintViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return storage.ErrConstraintViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return storage.ErrConstraintViolation
	default:
		return err
	}
}

// forUpdate adds a row lock on MySQL. SQLite (tests) has no row-level locks
// and is single-writer, so the clause is skipped there.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "mysql" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
