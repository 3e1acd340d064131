package db

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fleetflow-backend/internal/domain/account"
)

// sqlite-safe shadow of the users table; the real model carries mysql enum
// types that sqlite cannot migrate.
type userSQLite struct {
	ID           uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	Username     string    `gorm:"size:255;uniqueIndex;column:username"`
	Name         string    `gorm:"size:255;column:name"`
	Email        string    `gorm:"size:255;column:email"`
	PasswordHash string    `gorm:"size:255;column:password_hash"`
	Role         string    `gorm:"size:32;column:role"`
	Status       string    `gorm:"size:16;column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userSQLite) TableName() string { return "users" }

func openSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func TestSeedManager(t *testing.T) {
	gdb := openSeedTestDB(t)
	ctx := context.Background()

	if err := SeedManager(ctx, gdb, "boss", "super-secret"); err != nil {
		t.Fatalf("SeedManager: %v", err)
	}

	var got account.Account
	if err := gdb.Where("role = ?", account.RoleManager).First(&got).Error; err != nil {
		t.Fatalf("manager row missing: %v", err)
	}
	if got.Username != "boss" || got.Status != account.StatusApproved {
		t.Fatalf("unexpected seed row: %+v", got)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("super-secret")); err != nil {
		t.Fatalf("seeded hash does not verify: %v", err)
	}

	// idempotent: a second run must not add another manager
	if err := SeedManager(ctx, gdb, "boss2", "other"); err != nil {
		t.Fatalf("second SeedManager: %v", err)
	}
	var n int64
	if err := gdb.Model(&account.Account{}).Where("role = ?", account.RoleManager).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("manager rows = %d, want 1", n)
	}
}
