package validation

import (
	"regexp"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email validation pattern - configurable
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone pattern - exactly 10 digits
	PhonePattern = `^\d{10}$`

	// Room number pattern - 1 to 3 digits
	RoomNumberPattern = `^\d{1,3}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// MaxStudentsPerRoom is the caller-enforced occupancy cap. The store itself
// never rejects a write that exceeds it.
const MaxStudentsPerRoom = 2

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	Phone      *regexp.Regexp
	RoomNumber *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	Phone:      regexp.MustCompile(PhonePattern),
	RoomNumber: regexp.MustCompile(RoomNumberPattern),
}

// ValidateStudentInput checks the field-level rules for a student add/update.
// Phone and room number are optional; when present they must match their
// patterns.
func ValidateStudentInput(name, email, phone, roomNumber string) error {
	if len(name) < NameMinLength || len(name) > NameMaxLength {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "name must be between 2 and 100 characters")
	}
	if !CompiledPatterns.Email.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}
	if phone != "" && !CompiledPatterns.Phone.MatchString(phone) {
		return apperrors.ErrInvalidPhone
	}
	if roomNumber != "" && !CompiledPatterns.RoomNumber.MatchString(roomNumber) {
		return apperrors.ErrInvalidRoomNo
	}
	return nil
}

// ValidateRoomInput checks the field-level rules for adding a room.
func ValidateRoomInput(roomNumber string, capacity int64) error {
	if !CompiledPatterns.RoomNumber.MatchString(roomNumber) {
		return apperrors.ErrInvalidRoomNo
	}
	if capacity < 1 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "capacity must be at least 1")
	}
	return nil
}

// CheckRoomCap enforces the per-room cap over active students. excludeID
// skips the student being edited so a same-room update does not count itself;
// pass 0 when adding.
func CheckRoomCap(students []models.Student, roomNumber string, excludeID int64) error {
	if roomNumber == "" {
		return nil
	}
	var count int
	for i := range students {
		s := &students[i]
		if s.ID != excludeID && s.RoomNumber == roomNumber && s.IsActive() {
			count++
		}
	}
	if count >= MaxStudentsPerRoom {
		return apperrors.ErrRoomFull
	}
	return nil
}
