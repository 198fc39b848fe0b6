package postgres

import (
	"context"
	"fmt"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/pkg/apperrors"
	"github.com/emrekoc/hostelms/internal/pkg/dberrors"
)

// ListRooms retrieves all rooms.
func (s *Store) ListRooms(ctx context.Context) ([]models.Room, error) {
	query := `
		SELECT id, room_number, capacity, room_type, occupied
		FROM rooms
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rooms: %w", err)
	}
	defer rows.Close()

	var rooms []models.Room
	for rows.Next() {
		var (
			room     models.Room
			roomType *string
		)
		if err := rows.Scan(
			&room.ID,
			&room.RoomNumber,
			&room.Capacity,
			&roomType,
			&room.Occupied,
		); err != nil {
			return nil, err
		}
		room.RoomType = deref(roomType)
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}

// AddRoom inserts a new room with occupied = 0.
func (s *Store) AddRoom(ctx context.Context, room *models.Room) error {
	room.Occupied = 0

	query := `
		INSERT INTO rooms (room_number, capacity, room_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.pool.QueryRow(ctx, query,
		room.RoomNumber,
		room.Capacity,
		nullIfEmpty(room.RoomType),
	).Scan(&room.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrRoomAlreadyExists
		}
		return fmt.Errorf("error adding room: %w", err)
	}

	return nil
}

// DashboardData recomputes the aggregate counters with one scan per value,
// mirroring the flat-file backend's full-scan semantics.
func (s *Store) DashboardData(ctx context.Context) (*models.DashboardData, error) {
	data := &models.DashboardData{}

	queries := []struct {
		query string
		dest  *int64
	}{
		{`SELECT COUNT(*) FROM students WHERE status = 'active'`, &data.TotalStudents},
		{`SELECT COUNT(*) FROM rooms`, &data.TotalRooms},
		{`SELECT COUNT(*) FROM rooms WHERE occupied > 0`, &data.OccupiedRooms},
		{`SELECT COALESCE(SUM(capacity - occupied), 0) FROM rooms`, &data.AvailableBeds},
	}

	for _, q := range queries {
		if err := s.pool.QueryRow(ctx, q.query).Scan(q.dest); err != nil {
			return nil, fmt.Errorf("error computing dashboard data: %w", err)
		}
	}

	return data, nil
}
