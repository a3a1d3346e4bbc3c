package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/models"

	"gorm.io/gorm"
)

// RoomService is the read side of the room inventory. All booking-state
// mutations go through BookingService; the only write here is the photo URL.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Find(&rooms).Error
	return rooms, err
}

// GetByID returns the room with its booking history, oldest first.
func (s *RoomService) GetByID(id string) (models.Room, error) {
	var room models.Room
	err := s.DB.Preload("Bookings", func(db *gorm.DB) *gorm.DB {
		return db.Order("date_booked ASC")
	}).Where("id = ?", id).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, ErrRoomNotFound
	}
	return room, err
}

func (s *RoomService) GetByNumber(roomNumber uint8) (models.Room, error) {
	var room models.Room
	err := s.DB.Where("room_number = ?", roomNumber).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Room{}, ErrRoomNotFound
	}
	return room, err
}

func (s *RoomService) GetAvailable() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("availability = ?", true).Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetBooked() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Where("availability = ?", false).Find(&rooms).Error
	return rooms, err
}

// GetOverdue returns the occupied rooms whose latest booking's checkout time
// has already passed. Occupied rooms with no booking history are excluded:
// there is no checkout time to compare.
func (s *RoomService) GetOverdue() ([]models.Room, error) {
	return overdueRooms(s.DB, time.Now())
}

// IsAvailable reports whether the numbered room can be booked right now.
func (s *RoomService) IsAvailable(roomNumber uint8) (bool, error) {
	room, err := s.GetByNumber(roomNumber)
	if err != nil {
		return false, err
	}
	return room.Availability, nil
}

// UpdatePhoto stores the photo URL for a room.
func (s *RoomService) UpdatePhoto(id, photoURL string) error {
	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Update("photo_url", photoURL)
	if res.Error != nil {
		return fmt.Errorf("update room photo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNothingUpdated
	}
	return nil
}

func overdueRooms(db *gorm.DB, now time.Time) ([]models.Room, error) {
	var occupied []models.Room
	err := db.Preload("Bookings", func(db *gorm.DB) *gorm.DB {
		return db.Order("date_booked ASC")
	}).Where("availability = ?", false).Find(&occupied).Error
	if err != nil {
		return nil, err
	}

	var overdue []models.Room
	for _, room := range occupied {
		if len(room.Bookings) == 0 {
			continue
		}
		latest := room.Bookings[len(room.Bookings)-1]
		if latest.TimeOut.Before(now) {
			overdue = append(overdue, room)
		}
	}
	return overdue, nil
}
