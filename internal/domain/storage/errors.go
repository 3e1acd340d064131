// Package storage carries the error class for store-level constraint
// violations (unique/check/foreign-key) that slip past application-level
// validation. These should not occur in normal operation; they are the
// defense-in-depth backstop, kept distinct from the domain errors.
package storage

import "errors"

var ErrConstraintViolation = errors.New("store constraint violation")
