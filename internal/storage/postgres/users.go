package postgres

import (
	"context"
	"fmt"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/pkg/apperrors"
	"github.com/emrekoc/hostelms/internal/pkg/dberrors"
)

// Authenticate matches username and password exactly. Passwords are stored
// and compared as plain text.
func (s *Store) Authenticate(ctx context.Context, username, password string) (models.Role, error) {
	query := `
		SELECT role
		FROM users
		WHERE username = $1 AND password = $2
	`

	var role models.Role
	err := s.pool.QueryRow(ctx, query, username, password).Scan(&role)
	if err != nil {
		if dberrors.IsNoRows(err) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error authenticating user: %w", err)
	}

	return role, nil
}
