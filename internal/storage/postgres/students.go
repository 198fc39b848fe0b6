package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/pkg/apperrors"
	"github.com/emrekoc/hostelms/internal/pkg/dberrors"
)

// occupancy adjustment statements. Matching zero rooms is tolerated: a
// provisional room number affects nothing.
const (
	incrementOccupied = `UPDATE rooms SET occupied = occupied + 1 WHERE room_number = $1`
	decrementOccupied = `UPDATE rooms SET occupied = occupied - 1 WHERE room_number = $1`
)

// ListStudents retrieves all students.
func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name, email, phone, room_number, check_in_date, check_out_date, status
		FROM students
		ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var (
			student           models.Student
			phone, roomNumber *string
			checkIn, checkOut *time.Time
		)
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&phone,
			&roomNumber,
			&checkIn,
			&checkOut,
			&student.Status,
		); err != nil {
			return nil, err
		}
		student.Phone = deref(phone)
		student.RoomNumber = deref(roomNumber)
		if checkIn != nil {
			student.CheckInDate = models.Date{Time: *checkIn}
		}
		if checkOut != nil {
			student.CheckOutDate = models.Date{Time: *checkOut}
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// AddStudent inserts the student and bumps the target room's occupancy in one
// transaction.
func (s *Store) AddStudent(ctx context.Context, student *models.Student) error {
	student.CheckInDate = models.Today()
	student.Status = models.StatusActive

	return s.withTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO students (name, email, phone, room_number, check_in_date, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query,
			student.Name,
			student.Email,
			nullIfEmpty(student.Phone),
			nullIfEmpty(student.RoomNumber),
			student.CheckInDate.Time,
			student.Status,
		).Scan(&student.ID)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error adding student: %w", err)
		}

		if student.RoomNumber != "" {
			if _, err := tx.Exec(ctx, incrementOccupied, student.RoomNumber); err != nil {
				return fmt.Errorf("error updating room occupancy: %w", err)
			}
		}

		return nil
	})
}

// UpdateStudent overwrites the mutable fields and moves occupancy from the
// old room to the new one when the room number changed.
func (s *Store) UpdateStudent(ctx context.Context, student *models.Student) error {
	return s.withTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var oldRoom *string
		err := tx.QueryRow(ctx,
			`SELECT room_number FROM students WHERE id = $1 FOR UPDATE`,
			student.ID,
		).Scan(&oldRoom)
		if err != nil {
			if dberrors.IsNoRows(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error locating student: %w", err)
		}

		query := `
			UPDATE students
			SET name = $1, email = $2, phone = $3, room_number = $4, status = $5
			WHERE id = $6
		`

		_, err = tx.Exec(ctx, query,
			student.Name,
			student.Email,
			nullIfEmpty(student.Phone),
			nullIfEmpty(student.RoomNumber),
			student.Status,
			student.ID,
		)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating student: %w", err)
		}

		previous := deref(oldRoom)
		if previous != student.RoomNumber {
			if previous != "" {
				if _, err := tx.Exec(ctx, decrementOccupied, previous); err != nil {
					return fmt.Errorf("error releasing old room: %w", err)
				}
			}
			if student.RoomNumber != "" {
				if _, err := tx.Exec(ctx, incrementOccupied, student.RoomNumber); err != nil {
					return fmt.Errorf("error occupying new room: %w", err)
				}
			}
		}

		return nil
	})
}

// DeleteStudent removes the student and releases their room in one
// transaction. A missing id leaves every row untouched.
func (s *Store) DeleteStudent(ctx context.Context, id int64) error {
	return s.withTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var roomNumber *string
		err := tx.QueryRow(ctx,
			`SELECT room_number FROM students WHERE id = $1 FOR UPDATE`,
			id,
		).Scan(&roomNumber)
		if err != nil {
			if dberrors.IsNoRows(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error locating student: %w", err)
		}

		if room := deref(roomNumber); room != "" {
			if _, err := tx.Exec(ctx, decrementOccupied, room); err != nil {
				return fmt.Errorf("error releasing room: %w", err)
			}
		}

		if _, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}

		return nil
	})
}
