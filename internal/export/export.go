// Package export renders the full student or room collection to a delimited
// text file, and optionally to a paginated PDF report. It consumes the
// store's read operations only and never mutates anything.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/emrekoc/hostelms/internal/app/models"
)

// Source is the read-only slice of the record store that exports consume.
type Source interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
}

// Exporter writes timestamp-suffixed export files into a fixed directory.
// When PDF rendering is disabled, the PDF methods report a soft absence:
// empty filename, nil error.
type Exporter struct {
	src        Source
	dir        string
	pdfEnabled bool
	logger     zerolog.Logger
}

// New creates an Exporter writing into dir.
func New(src Source, dir string, pdfEnabled bool, lgr zerolog.Logger) *Exporter {
	return &Exporter{src: src, dir: dir, pdfEnabled: pdfEnabled, logger: lgr}
}

// timestamp suffixes filenames so repeated exports never collide.
func timestamp() string {
	return time.Now().Format("20060102_150405")
}

// StudentsCSV exports the full student collection and returns the filename.
func (e *Exporter) StudentsCSV(ctx context.Context) (string, error) {
	students, err := e.src.ListStudents(ctx)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(e.dir, fmt.Sprintf("students_export_%s.csv", timestamp()))
	return filename, e.writeCSV(filename, &students)
}

// RoomsCSV exports the full room collection and returns the filename.
func (e *Exporter) RoomsCSV(ctx context.Context) (string, error) {
	rooms, err := e.src.ListRooms(ctx)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(e.dir, fmt.Sprintf("rooms_export_%s.csv", timestamp()))
	return filename, e.writeCSV(filename, &rooms)
}

func (e *Exporter) writeCSV(filename string, in interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	err = gocsv.MarshalFile(in, f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	e.logger.Info().Str("file", filename).Msg("Export written")
	return nil
}

// StudentsPDF renders one line per student. Returns ("", nil) when PDF
// rendering is disabled.
func (e *Exporter) StudentsPDF(ctx context.Context) (string, error) {
	if !e.pdfEnabled {
		e.logger.Warn().Msg("PDF rendering disabled, skipping export")
		return "", nil
	}

	students, err := e.src.ListStudents(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(students))
	for i := range students {
		s := &students[i]
		lines = append(lines, fmt.Sprintf("ID: %d, Name: %s, Email: %s, Room: %s",
			s.ID, s.Name, s.Email, s.RoomNumber))
	}

	filename := filepath.Join(e.dir, fmt.Sprintf("students_export_%s.pdf", timestamp()))
	return filename, e.writePDF(filename, "Students Report", lines)
}

// RoomsPDF renders one line per room. Returns ("", nil) when PDF rendering
// is disabled.
func (e *Exporter) RoomsPDF(ctx context.Context) (string, error) {
	if !e.pdfEnabled {
		e.logger.Warn().Msg("PDF rendering disabled, skipping export")
		return "", nil
	}

	rooms, err := e.src.ListRooms(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(rooms))
	for i := range rooms {
		r := &rooms[i]
		lines = append(lines, fmt.Sprintf("Room: %s, Capacity: %d, Type: %s, Occupied: %d",
			r.RoomNumber, r.Capacity, r.RoomType, r.Occupied))
	}

	filename := filepath.Join(e.dir, fmt.Sprintf("rooms_export_%s.pdf", timestamp()))
	return filename, e.writePDF(filename, "Rooms Report", lines)
}

func (e *Exporter) writePDF(filename, title string, lines []string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("failed to write PDF export: %w", err)
	}

	e.logger.Info().Str("file", filename).Msg("Export written")
	return nil
}
