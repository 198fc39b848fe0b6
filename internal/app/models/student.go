package models

// Student defines the student model based on the 'students' table.
// RoomNumber references Room.RoomNumber by value; empty means unassigned.
// The csv tag order defines the flat-file header order.
type Student struct {
	ID           int64         `json:"id" db:"id" csv:"id"`
	Name         string        `json:"name" db:"name" csv:"name"`
	Email        string        `json:"email" db:"email" csv:"email"`
	Phone        string        `json:"phone,omitempty" db:"phone" csv:"phone"`
	RoomNumber   string        `json:"roomNumber,omitempty" db:"room_number" csv:"room_number"`
	CheckInDate  Date          `json:"checkInDate" db:"check_in_date" csv:"check_in_date"`
	CheckOutDate Date          `json:"checkOutDate,omitempty" db:"check_out_date" csv:"check_out_date"` // reserved, never set by current flows
	Status       StudentStatus `json:"status" db:"status" csv:"status"`
}

// IsActive reports whether the student counts toward dashboard totals
// and the per-room cap.
func (s *Student) IsActive() bool {
	return s.Status == StatusActive
}
