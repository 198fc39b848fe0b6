package csvfile

import (
	"context"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/pkg/apperrors"
	"github.com/emrekoc/hostelms/internal/storage/idalloc"
)

// ListStudents returns the full student collection.
func (s *Store) ListStudents(_ context.Context) ([]models.Student, error) {
	return s.readStudents(), nil
}

// AddStudent assigns a fresh id, stamps check-in date and active status,
// appends the record, and bumps the target room's occupancy. Both files are
// rewritten from the same in-memory snapshot.
func (s *Store) AddStudent(_ context.Context, student *models.Student) error {
	students := s.readStudents()

	ids := make([]int64, 0, len(students))
	for i := range students {
		if students[i].Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		ids = append(ids, students[i].ID)
	}

	student.ID = idalloc.Next(ids)
	student.CheckInDate = models.Today()
	student.Status = models.StatusActive

	students = append(students, *student)
	if err := s.writeStudents(students); err != nil {
		return err
	}

	if student.RoomNumber != "" {
		return s.adjustOccupancy(student.RoomNumber, 1)
	}
	return nil
}

// UpdateStudent overwrites the mutable fields in place by id and moves
// occupancy when the room number changed.
func (s *Store) UpdateStudent(_ context.Context, student *models.Student) error {
	students := s.readStudents()

	idx := -1
	for i := range students {
		if students[i].ID == student.ID {
			idx = i
		} else if students[i].Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if idx < 0 {
		return apperrors.ErrStudentNotFound
	}

	oldRoom := students[idx].RoomNumber
	students[idx].Name = student.Name
	students[idx].Email = student.Email
	students[idx].Phone = student.Phone
	students[idx].RoomNumber = student.RoomNumber
	students[idx].Status = student.Status

	if err := s.writeStudents(students); err != nil {
		return err
	}

	if oldRoom != student.RoomNumber {
		if oldRoom != "" {
			if err := s.adjustOccupancy(oldRoom, -1); err != nil {
				return err
			}
		}
		if student.RoomNumber != "" {
			return s.adjustOccupancy(student.RoomNumber, 1)
		}
	}
	return nil
}

// DeleteStudent removes the record and releases its room. A missing id
// returns an error before any file is touched.
func (s *Store) DeleteStudent(_ context.Context, id int64) error {
	students := s.readStudents()

	idx := -1
	for i := range students {
		if students[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrStudentNotFound
	}

	roomNumber := students[idx].RoomNumber
	students = append(students[:idx], students[idx+1:]...)

	if roomNumber != "" {
		if err := s.adjustOccupancy(roomNumber, -1); err != nil {
			return err
		}
	}

	return s.writeStudents(students)
}
