package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/config"
)

// fallbackConfig points the database at a port nothing listens on so Open
// takes the flat-file path immediately.
func fallbackConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = "1"
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.Export.Dir = t.TempDir()
	return cfg
}

func TestOpen_FallsBackToFlatFile(t *testing.T) {
	cfg := fallbackConfig(t)

	store, err := Open(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, BackendCSV, store.Backend())

	// Fallback storage is seeded and usable immediately after construction.
	role, err := store.Authenticate(context.Background(), "student1", "student123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, role)
}

func TestStore_ForwardsOperationsToActiveBackend(t *testing.T) {
	cfg := fallbackConfig(t)

	store, err := Open(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	require.NoError(t, store.AddRoom(ctx, &models.Room{RoomNumber: "101", Capacity: 2}))
	require.NoError(t, store.AddStudent(ctx, &models.Student{
		Name: "Ayse Yilmaz", Email: "ayse@example.com", RoomNumber: "101",
	}))

	data, err := store.DashboardData(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.TotalStudents)
	assert.Equal(t, int64(1), data.TotalRooms)
	assert.Equal(t, int64(1), data.OccupiedRooms)
	assert.Equal(t, int64(1), data.AvailableBeds)
}

func TestStore_ExportStudentsCSV(t *testing.T) {
	cfg := fallbackConfig(t)

	store, err := Open(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.AddStudent(ctx, &models.Student{Name: "Ayse Yilmaz", Email: "ayse@example.com"}))

	filename, err := store.ExportStudentsCSV(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, filename)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ayse@example.com")
}

func TestStore_ExportPDFDisabled(t *testing.T) {
	cfg := fallbackConfig(t)
	cfg.Export.PDFEnabled = false

	store, err := Open(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close()

	filename, err := store.ExportStudentsPDF(context.Background())
	require.NoError(t, err)
	assert.Empty(t, filename)
}
