package csvfile

import (
	"context"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/pkg/apperrors"
	"github.com/emrekoc/hostelms/internal/storage/idalloc"
)

// ListRooms returns the full room collection.
func (s *Store) ListRooms(_ context.Context) ([]models.Room, error) {
	return s.readRooms(), nil
}

// AddRoom assigns a fresh id and appends the room with occupied = 0.
// Duplicate room numbers are rejected for parity with the relational
// backend's uniqueness constraint.
func (s *Store) AddRoom(_ context.Context, room *models.Room) error {
	rooms := s.readRooms()

	ids := make([]int64, 0, len(rooms))
	for i := range rooms {
		if rooms[i].RoomNumber == room.RoomNumber {
			return apperrors.ErrRoomAlreadyExists
		}
		ids = append(ids, rooms[i].ID)
	}

	room.ID = idalloc.Next(ids)
	room.Occupied = 0

	rooms = append(rooms, *room)
	return s.writeRooms(rooms)
}

// DashboardData recomputes the aggregate counters from full scans of both
// collections.
func (s *Store) DashboardData(_ context.Context) (*models.DashboardData, error) {
	data := &models.DashboardData{}

	for _, student := range s.readStudents() {
		if student.Status == models.StatusActive {
			data.TotalStudents++
		}
	}

	for _, room := range s.readRooms() {
		data.TotalRooms++
		if room.Occupied > 0 {
			data.OccupiedRooms++
		}
		data.AvailableBeds += room.Capacity - room.Occupied
	}

	return data, nil
}
