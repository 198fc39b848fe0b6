// Package storage defines the backend-agnostic record store contract and the
// facade that selects exactly one concrete backend at startup: PostgreSQL when
// reachable, delimited text files otherwise. The choice is fixed for the
// process lifetime.
package storage

import (
	"context"

	"github.com/emrekoc/hostelms/internal/app/models"
)

// RecordStore is the capability set implemented by each backend adapter.
// Implementations own their durable medium exclusively for the process
// lifetime. Operations are synchronous; a failed write is reported once and
// never retried.
type RecordStore interface {
	// Authenticate matches username and password exactly against the users
	// collection and returns the user's role.
	// Returns apperrors.ErrInvalidCredentials when no user matches.
	Authenticate(ctx context.Context, username, password string) (models.Role, error)

	// ListStudents returns every student record. Full scan, no pagination;
	// filtering is a caller concern.
	ListStudents(ctx context.Context) ([]models.Student, error)

	// AddStudent persists a new student. The backend assigns the id, sets
	// CheckInDate to today and Status to active, and — when RoomNumber is
	// non-empty — increments that room's occupied counter in the same unit
	// of work. The populated record is written back into student.
	// Returns apperrors.ErrEmailAlreadyExists on a duplicate email.
	AddStudent(ctx context.Context, student *models.Student) error

	// UpdateStudent overwrites name, email, phone, room number and status of
	// the record with student.ID. When the room number changes, occupancy
	// moves with it: the old room is decremented and the new one incremented.
	// Returns apperrors.ErrStudentNotFound if the id does not exist.
	UpdateStudent(ctx context.Context, student *models.Student) error

	// DeleteStudent removes the student and decrements the referenced room's
	// occupied counter when the student had one. A missing id returns
	// apperrors.ErrStudentNotFound with zero side effects.
	DeleteStudent(ctx context.Context, id int64) error

	// ListRooms returns every room record.
	ListRooms(ctx context.Context) ([]models.Room, error)

	// AddRoom persists a new room with occupied = 0. Room numbers are unique
	// in both backends; a duplicate returns apperrors.ErrRoomAlreadyExists.
	// The store does not check occupied against capacity, ever.
	AddRoom(ctx context.Context, room *models.Room) error

	// DashboardData recomputes the four aggregate counters by full scan.
	DashboardData(ctx context.Context) (*models.DashboardData, error)

	// Close releases the backend's durable resources.
	Close() error
}
