// Package bootstrap holds explicit startup steps that sit outside the
// request-handling core.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/crimetrack/crimetrack-be/internal/auth"
	"github.com/crimetrack/crimetrack-be/internal/models"
	"github.com/crimetrack/crimetrack-be/internal/storage"
)

type demoUser struct {
	username string
	password string
	fullName string
	role     string
}

var demoUsers = []demoUser{
	{username: "officer1", password: "password123", fullName: "Officer John Smith", role: models.RoleOfficer},
	{username: "admin1", password: "admin123", fullName: "Admin Jane Doe", role: models.RoleAdmin},
	{username: "officer2", password: "password456", fullName: "Officer Michael Johnson", role: models.RoleOfficer},
}

// SeedDemoUsers creates the demo accounts on first startup. It is
// idempotent: if the first demo account already exists the whole step is
// skipped.
func SeedDemoUsers(ctx context.Context, store storage.UserStore) error {
	_, err := store.FindByUsername(ctx, demoUsers[0].username)
	if err == nil {
		log.Println("demo users already exist")
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("check demo users: %w", err)
	}

	for _, u := range demoUsers {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash demo password: %w", err)
		}
		_, err = store.CreateUser(ctx, models.User{
			Username:     u.username,
			FullName:     u.fullName,
			Role:         u.role,
			PasswordHash: hash,
		})
		if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		log.Printf("seeded demo user %s (%s)", u.username, u.role)
	}
	return nil
}
