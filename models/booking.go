package models

import (
	"time"
)

// Booking records one stay. RoomID and UserID never change after creation;
// RoomNumber is a denormalized copy of the room's number at booking time.
// TimeOut is the checkout deadline: DateBooked plus Duration days at
// creation, recomputed from the update time when the duration changes.
type Booking struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RoomID     string    `gorm:"column:room_id;type:varchar(36);index" json:"roomId"`
	UserID     string    `gorm:"column:user_id;type:varchar(36);index" json:"userId"`
	RoomNumber uint8     `gorm:"column:room_number;index" json:"roomNumber"`
	Duration   int       `gorm:"column:duration" json:"duration"`
	DateBooked time.Time `gorm:"column:date_booked" json:"dateBooked"`
	TimeOut    time.Time `gorm:"column:time_out" json:"timeOut"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
