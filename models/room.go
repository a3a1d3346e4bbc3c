package models

import (
	"time"
)

// Room availability: true = bookable now, false = occupied.
type Room struct {
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	RoomNumber   uint8  `gorm:"column:room_number;uniqueIndex" json:"roomNumber"`
	Availability bool   `gorm:"column:availability" json:"availability"`
	PhotoURL     string `gorm:"column:photo_url;type:varchar(255)" json:"photoUrl,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Bookings []Booking `gorm:"foreignKey:RoomID;references:ID" json:"bookings,omitempty"`
}
