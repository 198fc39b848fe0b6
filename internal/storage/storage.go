package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/config"
	"github.com/emrekoc/hostelms/internal/export"
	"github.com/emrekoc/hostelms/internal/storage/csvfile"
	"github.com/emrekoc/hostelms/internal/storage/postgres"
)

// Backend names reported by Store.Backend.
const (
	BackendPostgres = "postgres"
	BackendCSV      = "csv"
)

// Compile-time checks that both adapters satisfy the contract.
var (
	_ RecordStore = (*postgres.Store)(nil)
	_ RecordStore = (*csvfile.Store)(nil)
)

// Store is the storage facade. It owns exactly one active backend, chosen at
// construction, forwards every record store operation to it, and drives
// export generation. It adds no validation of its own: field-level rules and
// the per-room cap live in the calling layer.
type Store struct {
	backend  RecordStore
	name     string
	exporter *export.Exporter
	logger   zerolog.Logger
}

// Open selects the backend: PostgreSQL when a connection plus schema
// bootstrap succeed, flat-file storage otherwise. A relational failure is
// never surfaced to the user; it is logged and absorbed by the fallback.
// There is no runtime re-attempt; the choice holds for the process lifetime.
func Open(cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	s := &Store{logger: lgr}

	pg, err := postgres.Open(cfg, lgr)
	if err == nil {
		s.backend = pg
		s.name = BackendPostgres
	} else {
		lgr.Warn().Err(err).Msg("PostgreSQL unavailable, falling back to flat-file storage")
		cs, csvErr := csvfile.Open(cfg.Storage.DataDir, lgr)
		if csvErr != nil {
			return nil, fmt.Errorf("failed to initialize flat-file storage: %w", csvErr)
		}
		s.backend = cs
		s.name = BackendCSV
	}

	s.exporter = export.New(s.backend, cfg.Export.Dir, cfg.Export.PDFEnabled, lgr)
	return s, nil
}

// Backend reports which backend is active ("postgres" or "csv").
func (s *Store) Backend() string {
	return s.name
}

// Close releases the active backend's resources.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Authenticate forwards to the active backend.
func (s *Store) Authenticate(ctx context.Context, username, password string) (models.Role, error) {
	return s.backend.Authenticate(ctx, username, password)
}

// ListStudents forwards to the active backend.
func (s *Store) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.backend.ListStudents(ctx)
}

// AddStudent forwards to the active backend.
func (s *Store) AddStudent(ctx context.Context, student *models.Student) error {
	return s.backend.AddStudent(ctx, student)
}

// UpdateStudent forwards to the active backend.
func (s *Store) UpdateStudent(ctx context.Context, student *models.Student) error {
	return s.backend.UpdateStudent(ctx, student)
}

// DeleteStudent forwards to the active backend.
func (s *Store) DeleteStudent(ctx context.Context, id int64) error {
	return s.backend.DeleteStudent(ctx, id)
}

// ListRooms forwards to the active backend.
func (s *Store) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.backend.ListRooms(ctx)
}

// AddRoom forwards to the active backend.
func (s *Store) AddRoom(ctx context.Context, room *models.Room) error {
	return s.backend.AddRoom(ctx, room)
}

// DashboardData forwards to the active backend.
func (s *Store) DashboardData(ctx context.Context) (*models.DashboardData, error) {
	return s.backend.DashboardData(ctx)
}

// ExportStudentsCSV exports all students to a timestamped CSV file.
func (s *Store) ExportStudentsCSV(ctx context.Context) (string, error) {
	return s.exporter.StudentsCSV(ctx)
}

// ExportRoomsCSV exports all rooms to a timestamped CSV file.
func (s *Store) ExportRoomsCSV(ctx context.Context) (string, error) {
	return s.exporter.RoomsCSV(ctx)
}

// ExportStudentsPDF exports all students to a timestamped PDF report.
// Returns an empty filename when PDF rendering is disabled.
func (s *Store) ExportStudentsPDF(ctx context.Context) (string, error) {
	return s.exporter.StudentsPDF(ctx)
}

// ExportRoomsPDF exports all rooms to a timestamped PDF report.
// Returns an empty filename when PDF rendering is disabled.
func (s *Store) ExportRoomsPDF(ctx context.Context) (string, error) {
	return s.exporter.RoomsPDF(ctx)
}
