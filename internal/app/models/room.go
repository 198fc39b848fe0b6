package models

// Room defines the room model based on the 'rooms' table. Occupied is a
// denormalized counter maintained by the store on student add/update/delete;
// the store never checks it against Capacity (caller-side rule).
type Room struct {
	ID         int64  `json:"id" db:"id" csv:"id"`
	RoomNumber string `json:"roomNumber" db:"room_number" csv:"room_number"`
	Capacity   int64  `json:"capacity" db:"capacity" csv:"capacity"`
	RoomType   string `json:"roomType,omitempty" db:"room_type" csv:"room_type"`
	Occupied   int64  `json:"occupied" db:"occupied" csv:"occupied"`
}

// AvailableBeds returns capacity minus occupied; may be negative if the
// counter has drifted, callers decide how to render that.
func (r *Room) AvailableBeds() int64 {
	return r.Capacity - r.Occupied
}
