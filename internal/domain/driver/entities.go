package driver

import (
	"errors"
	"time"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusOnTrip    Status = "On Trip"
	StatusSuspended Status = "Suspended"
)

const DefaultSafetyScore = 75

var (
	ErrNotFound         = errors.New("driver not found")
	ErrIneligible       = errors.New("driver is not eligible for assignment")
	ErrOnActiveTrip     = errors.New("driver is on an active trip")
	ErrNotSuspended     = errors.New("driver is not suspended")
	ErrInUse            = errors.New("driver has trip records and cannot be deleted")
	ErrDuplicateLicense = errors.New("license number already registered")
	ErrInvalidScore     = errors.New("safety score must be between 0 and 100")
)

type Driver struct {
	ID                uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name              string    `gorm:"size:255;not null" json:"name"`
	LicenseNumber     string    `gorm:"column:license_number;size:64;not null;uniqueIndex:ux_drivers_license" json:"license_number"`
	LicenseExpiryDate time.Time `gorm:"column:license_expiry_date;type:date;not null" json:"license_expiry_date"`
	Status            Status    `gorm:"type:enum('Available','On Trip','Suspended');default:'Available';not null;index" json:"status"`
	SafetyScore       int       `gorm:"column:safety_score;not null;default:75" json:"safety_score"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Driver) TableName() string { return "drivers" }

// LicenseExpired compares in UTC date terms: a license expiring today is
// still valid through the end of the day.
func (d *Driver) LicenseExpired(now time.Time) bool {
	today := now.UTC().Truncate(24 * time.Hour)
	expiry := d.LicenseExpiryDate.UTC().Truncate(24 * time.Hour)
	return expiry.Before(today)
}

// Eligible reports whether the driver can be bound to a new trip assignment.
func (d *Driver) Eligible(now time.Time) bool {
	return d.Status == StatusAvailable && !d.LicenseExpired(now)
}
