package csvfile

import (
	"context"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/pkg/apperrors"
)

// Authenticate scans the users file for an exact username and password match.
func (s *Store) Authenticate(_ context.Context, username, password string) (models.Role, error) {
	for _, u := range s.readUsers() {
		if u.Username == username && u.Password == password {
			return u.Role, nil
		}
	}
	return "", apperrors.ErrInvalidCredentials
}
