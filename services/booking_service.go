package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-booking-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns every transition of the room/booking state machine.
// Each operation runs in a single transaction: either all row mutations
// commit or none do. Nobody else writes Room.Availability or Booking rows.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// lockForUpdate adds a row lock where the backend supports one. SQLite (used
// in tests) has no SELECT ... FOR UPDATE; its writes serialize on the file
// lock instead.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// Book flips an available room to occupied and records the stay. The
// availability check runs against a fresh read under the row lock, so two
// actors cannot book the same room number concurrently.
func (s *BookingService) Book(actorID string, roomNumber uint8, duration int) (models.Room, error) {
	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("load room: %w", err)
		}
		if !room.Availability {
			return ErrRoomNotAvailable
		}

		now := time.Now()
		booking := models.Booking{
			ID:         uuid.New().String(),
			RoomID:     room.ID,
			UserID:     actorID,
			RoomNumber: room.RoomNumber,
			Duration:   duration,
			DateBooked: now,
			TimeOut:    now.AddDate(0, 0, duration),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		res := tx.Model(&models.Room{}).Where("id = ?", room.ID).Update("availability", false)
		if res.Error != nil {
			return fmt.Errorf("occupy room: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNothingUpdated
		}

		room.Availability = false
		room.Bookings = append(room.Bookings, booking)
		return nil
	})
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// UpdateBooking changes the duration of the room's most recent booking and
// recomputes its checkout time from now. The room must currently be occupied
// and the latest booking must belong to the actor. Nothing else on the
// booking changes.
func (s *BookingService) UpdateBooking(actorID, roomID string, newDuration int) (models.Room, error) {
	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("id = ?", roomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("load room: %w", err)
		}
		if room.Availability {
			return ErrRoomNotBooked
		}

		var booking models.Booking
		err := tx.Where("room_id = ?", room.ID).Order("date_booked DESC").First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoActiveBooking
		}
		if err != nil {
			return fmt.Errorf("load latest booking: %w", err)
		}
		if booking.UserID != actorID {
			return ErrNotBookingOwner
		}

		timeOut := time.Now().AddDate(0, 0, newDuration)
		res := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(map[string]interface{}{
			"duration": newDuration,
			"time_out": timeOut,
		})
		if res.Error != nil {
			return fmt.Errorf("update booking: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNothingUpdated
		}

		booking.Duration = newDuration
		booking.TimeOut = timeOut
		room.Bookings = []models.Booking{booking}
		return nil
	})
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}

// CancelBooking deletes the most recent booking for the room number and
// makes the room bookable again. Unlike reclaim, cancellation removes the
// booking record.
func (s *BookingService) CancelBooking(actorID string, roomNumber uint8) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		err := tx.Where("room_number = ?", roomNumber).Order("date_booked DESC").First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return fmt.Errorf("load booking: %w", err)
		}
		if booking.UserID != actorID {
			return ErrNotBookingOwner
		}

		res := tx.Where("id = ?", booking.ID).Delete(&models.Booking{})
		if res.Error != nil {
			return fmt.Errorf("delete booking: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNothingUpdated
		}

		res = tx.Model(&models.Room{}).Where("id = ?", booking.RoomID).Update("availability", true)
		if res.Error != nil {
			return fmt.Errorf("release room: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNothingUpdated
		}
		return nil
	})
}

// ReclaimOverdue makes every overdue room bookable again in one commit.
// Booking records stay: a reclaimed room keeps its history.
func (s *BookingService) ReclaimOverdue() ([]models.Room, error) {
	var reclaimed []models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		overdue, err := overdueRooms(tx, time.Now())
		if err != nil {
			return fmt.Errorf("load overdue rooms: %w", err)
		}
		if len(overdue) == 0 {
			return ErrNoOverdueRooms
		}

		ids := make([]string, len(overdue))
		for i, room := range overdue {
			ids[i] = room.ID
		}
		res := tx.Model(&models.Room{}).Where("id IN ?", ids).Update("availability", true)
		if res.Error != nil {
			return fmt.Errorf("release rooms: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNothingUpdated
		}

		for i := range overdue {
			overdue[i].Availability = true
		}
		reclaimed = overdue
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reclaimed, nil
}

// ReclaimOverdueByID reclaims a single room, which must be a member of the
// current overdue set.
func (s *BookingService) ReclaimOverdueByID(roomID string) (models.Room, error) {
	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		overdue, err := overdueRooms(tx, time.Now())
		if err != nil {
			return fmt.Errorf("load overdue rooms: %w", err)
		}
		if len(overdue) == 0 {
			return ErrNoOverdueRooms
		}

		if err := tx.Where("id = ?", roomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("load room: %w", err)
		}

		isOverdue := false
		for _, candidate := range overdue {
			if candidate.ID == room.ID {
				isOverdue = true
				break
			}
		}
		if !isOverdue {
			return ErrRoomNotOverdue
		}

		res := tx.Model(&models.Room{}).Where("id = ?", room.ID).Update("availability", true)
		if res.Error != nil {
			return fmt.Errorf("release room: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNothingUpdated
		}

		room.Availability = true
		return nil
	})
	if err != nil {
		return models.Room{}, err
	}
	return room, nil
}
