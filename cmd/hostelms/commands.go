package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/emrekoc/hostelms/internal/app/models"
	"github.com/emrekoc/hostelms/internal/config"
	"github.com/emrekoc/hostelms/internal/pkg/logger"
	"github.com/emrekoc/hostelms/internal/pkg/validation"
	"github.com/emrekoc/hostelms/internal/storage"
)

// openStore loads configuration, configures logging and opens the storage
// facade. Every command calls this and closes the returned store itself.
func openStore(c *cli.Context) (*storage.Store, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	store, err := storage.Open(cfg, logger.Get())
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("backend", store.Backend()).Msg("Storage ready")
	return store, nil
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Verify credentials and print the user's role",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true},
		},
		Action: func(c *cli.Context) error {
			store, err := openStore(c)
			if err != nil {
				return err
			}
			defer store.Close()

			role, err := store.Authenticate(c.Context, c.String("username"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Printf("Welcome, %s (%s)\n", c.String("username"), role)
			return nil
		},
	}
}

func studentCommand() *cli.Command {
	return &cli.Command{
		Name:  "student",
		Usage: "Manage student records",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all students",
				Action: studentListAction,
			},
			{
				Name:  "add",
				Usage: "Register a new student",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "room", Usage: "Room number to assign"},
				},
				Action: studentAddAction,
			},
			{
				Name:  "update",
				Usage: "Update an existing student",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "room"},
					&cli.StringFlag{Name: "status", Value: "active", Usage: "active or inactive"},
				},
				Action: studentUpdateAction,
			},
			{
				Name:  "delete",
				Usage: "Delete a student",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "id", Required: true},
				},
				Action: studentDeleteAction,
			},
		},
	}
}

func studentListAction(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	students, err := store.ListStudents(c.Context)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tROOM\tCHECK-IN\tSTATUS")
	for i := range students {
		s := &students[i]
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.Email, s.Phone, s.RoomNumber, s.CheckInDate, s.Status)
	}
	return w.Flush()
}

func studentAddAction(c *cli.Context) error {
	name := c.String("name")
	email := c.String("email")
	phone := c.String("phone")
	room := c.String("room")

	if err := validation.ValidateStudentInput(name, email, phone, room); err != nil {
		return err
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	// Cap check over current active students happens here, outside the store.
	students, err := store.ListStudents(c.Context)
	if err != nil {
		return err
	}
	if err := validation.CheckRoomCap(students, room, 0); err != nil {
		return err
	}

	student := &models.Student{Name: name, Email: email, Phone: phone, RoomNumber: room}
	if err := store.AddStudent(c.Context, student); err != nil {
		return err
	}
	fmt.Printf("Student added with id %d\n", student.ID)
	return nil
}

func studentUpdateAction(c *cli.Context) error {
	name := c.String("name")
	email := c.String("email")
	phone := c.String("phone")
	room := c.String("room")
	status := models.StudentStatus(c.String("status"))

	if status != models.StatusActive && status != models.StatusInactive {
		return fmt.Errorf("invalid status %q: must be active or inactive", status)
	}
	if err := validation.ValidateStudentInput(name, email, phone, room); err != nil {
		return err
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	students, err := store.ListStudents(c.Context)
	if err != nil {
		return err
	}
	if err := validation.CheckRoomCap(students, room, c.Int64("id")); err != nil {
		return err
	}

	student := &models.Student{
		ID:         c.Int64("id"),
		Name:       name,
		Email:      email,
		Phone:      phone,
		RoomNumber: room,
		Status:     status,
	}
	if err := store.UpdateStudent(c.Context, student); err != nil {
		return err
	}
	fmt.Println("Student updated")
	return nil
}

func studentDeleteAction(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteStudent(c.Context, c.Int64("id")); err != nil {
		return err
	}
	fmt.Println("Student deleted")
	return nil
}

func roomCommand() *cli.Command {
	return &cli.Command{
		Name:  "room",
		Usage: "Manage rooms",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all rooms",
				Action: func(c *cli.Context) error {
					store, err := openStore(c)
					if err != nil {
						return err
					}
					defer store.Close()

					rooms, err := store.ListRooms(c.Context)
					if err != nil {
						return err
					}

					w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
					fmt.Fprintln(w, "ID\tROOM\tCAPACITY\tTYPE\tOCCUPIED")
					for i := range rooms {
						r := &rooms[i]
						fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\n",
							r.ID, r.RoomNumber, r.Capacity, r.RoomType, r.Occupied)
					}
					return w.Flush()
				},
			},
			{
				Name:  "add",
				Usage: "Add a new room",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Required: true},
					&cli.Int64Flag{Name: "capacity", Required: true},
					&cli.StringFlag{Name: "type", Usage: "Room type, e.g. single or double"},
				},
				Action: func(c *cli.Context) error {
					number := c.String("number")
					capacity := c.Int64("capacity")

					if err := validation.ValidateRoomInput(number, capacity); err != nil {
						return err
					}

					store, err := openStore(c)
					if err != nil {
						return err
					}
					defer store.Close()

					room := &models.Room{
						RoomNumber: number,
						Capacity:   capacity,
						RoomType:   c.String("type"),
					}
					if err := store.AddRoom(c.Context, room); err != nil {
						return err
					}
					fmt.Printf("Room %s added with id %d\n", room.RoomNumber, room.ID)
					return nil
				},
			},
		},
	}
}

func dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Show aggregate counters",
		Action: func(c *cli.Context) error {
			store, err := openStore(c)
			if err != nil {
				return err
			}
			defer store.Close()

			data, err := store.DashboardData(c.Context)
			if err != nil {
				return err
			}

			fmt.Printf("Active students:  %d\n", data.TotalStudents)
			fmt.Printf("Total rooms:      %d\n", data.TotalRooms)
			fmt.Printf("Occupied rooms:   %d\n", data.OccupiedRooms)
			fmt.Printf("Available beds:   %d\n", data.AvailableBeds)
			return nil
		},
	}
}

func exportCommand() *cli.Command {
	formatFlag := &cli.StringFlag{
		Name:  "format",
		Value: "csv",
		Usage: "Export format: csv or pdf",
	}

	run := func(c *cli.Context, csvFn, pdfFn func(*storage.Store) (string, error)) error {
		store, err := openStore(c)
		if err != nil {
			return err
		}
		defer store.Close()

		var filename string
		switch c.String("format") {
		case "csv":
			filename, err = csvFn(store)
		case "pdf":
			filename, err = pdfFn(store)
		default:
			return fmt.Errorf("unknown format %q: must be csv or pdf", c.String("format"))
		}
		if err != nil {
			return err
		}
		if filename == "" {
			fmt.Println("PDF export unavailable; no file produced")
			return nil
		}
		fmt.Printf("Exported to %s\n", filename)
		return nil
	}

	return &cli.Command{
		Name:  "export",
		Usage: "Export records to CSV or PDF",
		Subcommands: []*cli.Command{
			{
				Name:  "students",
				Usage: "Export all students",
				Flags: []cli.Flag{formatFlag},
				Action: func(c *cli.Context) error {
					return run(c,
						func(s *storage.Store) (string, error) { return s.ExportStudentsCSV(c.Context) },
						func(s *storage.Store) (string, error) { return s.ExportStudentsPDF(c.Context) },
					)
				},
			},
			{
				Name:  "rooms",
				Usage: "Export all rooms",
				Flags: []cli.Flag{formatFlag},
				Action: func(c *cli.Context) error {
					return run(c,
						func(s *storage.Store) (string, error) { return s.ExportRoomsCSV(c.Context) },
						func(s *storage.Store) (string, error) { return s.ExportRoomsPDF(c.Context) },
					)
				},
			},
		},
	}
}
