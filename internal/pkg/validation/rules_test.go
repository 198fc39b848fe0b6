package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/pkg/apperrors"
)

func TestValidateStudentInput(t *testing.T) {
	tests := []struct {
		name    string
		student [4]string // name, email, phone, room
		wantErr error
	}{
		{"valid full", [4]string{"Ali Veli", "ali@example.com", "5551234567", "101"}, nil},
		{"valid minimal", [4]string{"Ali Veli", "ali@example.com", "", ""}, nil},
		{"bad email", [4]string{"Ali Veli", "not-an-email", "", ""}, apperrors.ErrInvalidEmail},
		{"short phone", [4]string{"Ali Veli", "ali@example.com", "12345", ""}, apperrors.ErrInvalidPhone},
		{"alpha phone", [4]string{"Ali Veli", "ali@example.com", "555123456x", ""}, apperrors.ErrInvalidPhone},
		{"long room", [4]string{"Ali Veli", "ali@example.com", "", "1001"}, apperrors.ErrInvalidRoomNo},
		{"alpha room", [4]string{"Ali Veli", "ali@example.com", "", "A1"}, apperrors.ErrInvalidRoomNo},
		{"short name", [4]string{"A", "ali@example.com", "", ""}, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStudentInput(tt.student[0], tt.student[1], tt.student[2], tt.student[3])
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRoomInput(t *testing.T) {
	assert.NoError(t, ValidateRoomInput("101", 2))
	assert.ErrorIs(t, ValidateRoomInput("", 2), apperrors.ErrInvalidRoomNo)
	assert.ErrorIs(t, ValidateRoomInput("12345", 2), apperrors.ErrInvalidRoomNo)
	assert.ErrorIs(t, ValidateRoomInput("101", 0), apperrors.ErrValidationFailed)
}

func TestCheckRoomCap(t *testing.T) {
	students := []models.Student{
		{ID: 1, RoomNumber: "101", Status: models.StatusActive},
		{ID: 2, RoomNumber: "101", Status: models.StatusActive},
		{ID: 3, RoomNumber: "102", Status: models.StatusActive},
		{ID: 4, RoomNumber: "103", Status: models.StatusInactive},
		{ID: 5, RoomNumber: "103", Status: models.StatusInactive},
	}

	t.Run("full room rejected", func(t *testing.T) {
		require.ErrorIs(t, CheckRoomCap(students, "101", 0), apperrors.ErrRoomFull)
	})

	t.Run("room with space accepted", func(t *testing.T) {
		assert.NoError(t, CheckRoomCap(students, "102", 0))
	})

	t.Run("inactive students do not count", func(t *testing.T) {
		assert.NoError(t, CheckRoomCap(students, "103", 0))
	})

	t.Run("edited student excluded from count", func(t *testing.T) {
		assert.NoError(t, CheckRoomCap(students, "101", 2))
	})

	t.Run("unassigned is always fine", func(t *testing.T) {
		assert.NoError(t, CheckRoomCap(students, "", 0))
	})
}
