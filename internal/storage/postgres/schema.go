package postgres

import (
	"context"
	"fmt"
)

// Schema mirrors the flat-file layout field for field. role and status are
// closed enumerations enforced with CHECK constraints; username, email and
// room_number carry the uniqueness the store contract relies on.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'student'))
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone VARCHAR(20),
		room_number VARCHAR(10),
		check_in_date DATE,
		check_out_date DATE,
		status VARCHAR(20) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive'))
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		room_number VARCHAR(10) UNIQUE NOT NULL,
		capacity INT NOT NULL,
		room_type VARCHAR(50),
		occupied INT NOT NULL DEFAULT 0
	)`,
}

// bootstrapSchema creates the three tables if they don't exist.
func (s *Store) bootstrapSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}
	return nil
}

// seedDefaultUsers inserts the documented default credentials once.
// Reruns are no-ops thanks to the username uniqueness.
func (s *Store) seedDefaultUsers(ctx context.Context) error {
	query := `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING
	`

	defaults := []struct {
		username, password, role string
	}{
		{"admin", "admin123", "admin"},
		{"student1", "student123", "student"},
	}

	for _, u := range defaults {
		if _, err := s.pool.Exec(ctx, query, u.username, u.password, u.role); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
	}
	return nil
}
