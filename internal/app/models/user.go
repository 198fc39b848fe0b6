package models

// User defines the user model based on the 'users' table. Users are seeded
// once at first initialization and are read-only afterwards; the password is
// stored and compared as plain text (single-user desktop deployment).
type User struct {
	ID       int64  `json:"id" db:"id" csv:"id"`
	Username string `json:"username" db:"username" csv:"username"`
	Password string `json:"-" db:"password" csv:"password"`
	Role     Role   `json:"role" db:"role" csv:"role"`
}
