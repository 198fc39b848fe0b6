// Package csvfile implements the record store over delimited text files on
// local disk, one file per collection with a header row. Reads parse the
// whole file into memory; writes serialize the whole collection back,
// overwriting the file. Concurrent processes touching the same files are
// unsupported; this backend exists for the single-user desktop deployment
// where no database server is reachable.
package csvfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/emrekoc/hostelms/internal/app/models"
)

const (
	usersFile    = "users.csv"
	studentsFile = "students.csv"
	roomsFile    = "rooms.csv"
)

// Store is the flat-file-backed record store.
type Store struct {
	dataDir string
	logger  zerolog.Logger
}

// Open creates the data directory and the collection files when absent, and
// seeds the default users into an empty users file.
func Open(dataDir string, lgr zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{dataDir: dataDir, logger: lgr}

	if err := s.initFiles(); err != nil {
		return nil, err
	}
	if err := s.seedDefaultUsers(); err != nil {
		return nil, err
	}

	lgr.Info().Str("dataDir", dataDir).Msg("Using flat-file storage")
	return s, nil
}

// Close is a no-op; files are opened and closed per operation.
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// initFiles creates each absent collection file with only its header row.
func (s *Store) initFiles() error {
	creators := []struct {
		name  string
		write func(f *os.File) error
	}{
		{usersFile, func(f *os.File) error { return gocsv.MarshalFile(&[]models.User{}, f) }},
		{studentsFile, func(f *os.File) error { return gocsv.MarshalFile(&[]models.Student{}, f) }},
		{roomsFile, func(f *os.File) error { return gocsv.MarshalFile(&[]models.Room{}, f) }},
	}

	for _, c := range creators {
		path := s.path(c.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.name, err)
		}
		err = c.write(f)
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("failed to initialize %s: %w", c.name, err)
		}
	}

	return nil
}

// seedDefaultUsers writes the documented default credentials when the users
// file has no data rows.
func (s *Store) seedDefaultUsers() error {
	users := s.readUsers()
	if len(users) > 0 {
		return nil
	}

	users = []models.User{
		{ID: 1, Username: "admin", Password: "admin123", Role: models.RoleAdmin},
		{ID: 2, Username: "student1", Password: "student123", Role: models.RoleStudent},
	}
	return s.writeUsers(users)
}

// read parses the whole named file into out. Any failure (missing file,
// corrupt rows, bad header) is treated as an empty collection: the fail-soft
// behavior the id allocator and the read paths rely on.
func (s *Store) read(name string, out interface{}) {
	f, err := os.Open(s.path(name))
	if err != nil {
		s.logger.Debug().Err(err).Str("file", name).Msg("Collection file unreadable, treating as empty")
		return
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		s.logger.Debug().Err(err).Str("file", name).Msg("Collection file unparsable, treating as empty")
	}
}

// write serializes the whole collection back, overwriting the file.
func (s *Store) write(name string, in interface{}) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", name, err)
	}

	err = gocsv.MarshalFile(in, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *Store) readUsers() []models.User {
	var users []models.User
	s.read(usersFile, &users)
	return users
}

func (s *Store) writeUsers(users []models.User) error {
	return s.write(usersFile, &users)
}

func (s *Store) readStudents() []models.Student {
	var students []models.Student
	s.read(studentsFile, &students)
	return students
}

func (s *Store) writeStudents(students []models.Student) error {
	return s.write(studentsFile, &students)
}

func (s *Store) readRooms() []models.Room {
	var rooms []models.Room
	s.read(roomsFile, &rooms)
	return rooms
}

func (s *Store) writeRooms(rooms []models.Room) error {
	return s.write(roomsFile, &rooms)
}

// adjustOccupancy re-reads the room collection, shifts the occupied counter
// of every row matching roomNumber by delta, and rewrites the file. This is
// the only occupancy write path.
func (s *Store) adjustOccupancy(roomNumber string, delta int64) error {
	rooms := s.readRooms()
	var touched bool
	for i := range rooms {
		if rooms[i].RoomNumber == roomNumber {
			rooms[i].Occupied += delta
			touched = true
		}
	}
	if !touched {
		// Provisional room reference, nothing to update.
		return nil
	}
	return s.writeRooms(rooms)
}
