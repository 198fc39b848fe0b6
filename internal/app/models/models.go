package models

// Role defines the user role stored in the users collection.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// StudentStatus defines the lifecycle state of a student record.
type StudentStatus string

const (
	StatusActive   StudentStatus = "active"
	StatusInactive StudentStatus = "inactive"
)

// DashboardData holds the aggregate counters shown on the dashboard.
// All four values are recomputed by full scan on every request.
type DashboardData struct {
	TotalStudents int64 `json:"totalStudents"` // students with status = active
	TotalRooms    int64 `json:"totalRooms"`
	OccupiedRooms int64 `json:"occupiedRooms"` // rooms with occupied > 0
	AvailableBeds int64 `json:"availableBeds"` // sum of capacity - occupied
}
