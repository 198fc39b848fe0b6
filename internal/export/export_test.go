package export

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/hostelms/internal/app/models"
)

type fakeSource struct {
	students []models.Student
	rooms    []models.Room
}

func (f *fakeSource) ListStudents(context.Context) ([]models.Student, error) {
	return f.students, nil
}

func (f *fakeSource) ListRooms(context.Context) ([]models.Room, error) {
	return f.rooms, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		students: []models.Student{
			{ID: 1, Name: "Ayse Yilmaz", Email: "ayse@example.com", RoomNumber: "101", Status: models.StatusActive},
			{ID: 2, Name: "Mehmet Kaya", Email: "mehmet@example.com", Status: models.StatusInactive},
		},
		rooms: []models.Room{
			{ID: 1, RoomNumber: "101", Capacity: 2, RoomType: "double", Occupied: 1},
		},
	}
}

func TestStudentsCSV(t *testing.T) {
	dir := t.TempDir()
	e := New(newFakeSource(), dir, true, zerolog.Nop())

	filename, err := e.StudentsCSV(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, dir))
	assert.Contains(t, filename, "students_export_")

	content, err := os.ReadFile(filename)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3) // header plus two records
	assert.Equal(t, "id,name,email,phone,room_number,check_in_date,check_out_date,status", lines[0])
	assert.Contains(t, lines[1], "ayse@example.com")
}

func TestRoomsCSV(t *testing.T) {
	dir := t.TempDir()
	e := New(newFakeSource(), dir, true, zerolog.Nop())

	filename, err := e.RoomsCSV(context.Background())
	require.NoError(t, err)
	assert.Contains(t, filename, "rooms_export_")

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "id,room_number,capacity,room_type,occupied")
	assert.Contains(t, string(content), "101")
}

func TestStudentsPDF(t *testing.T) {
	dir := t.TempDir()
	e := New(newFakeSource(), dir, true, zerolog.Nop())

	filename, err := e.StudentsPDF(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, filename)
	assert.Contains(t, filename, "students_export_")

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPDFDisabledIsSoftFailure(t *testing.T) {
	e := New(newFakeSource(), t.TempDir(), false, zerolog.Nop())

	filename, err := e.StudentsPDF(context.Background())
	require.NoError(t, err)
	assert.Empty(t, filename)

	filename, err = e.RoomsPDF(context.Background())
	require.NoError(t, err)
	assert.Empty(t, filename)
}
