package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type bookRoomPayload struct {
	RoomNumber uint8 `json:"roomNumber"`
	Duration   int   `json:"duration"`
}

type updateBookingPayload struct {
	Duration int `json:"duration"`
}

// POST /api/bookings
func (b *BookingController) CreateBooking(c *gin.Context) {
	var payload bookRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Duration < 1 {
		utils.JSONError(c, http.StatusBadRequest, "duration must be at least one day")
		return
	}

	actorID := c.GetString(middleware.ContextUserID)
	room, err := b.Bookings.Book(actorID, payload.RoomNumber, payload.Duration)
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "requested room does not exist")
		return
	case errors.Is(err, services.ErrRoomNotAvailable):
		utils.JSONError(c, http.StatusConflict, "requested room is not available for booking, please try booking other rooms")
		return
	case err != nil:
		log.Printf("book room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "booking could not be saved")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"room":    room,
		"message": fmt.Sprintf("you have successfully booked room %d", room.RoomNumber),
	})
}

// PUT /api/bookings/room/:roomId
func (b *BookingController) UpdateBooking(c *gin.Context) {
	var payload updateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.Duration < 1 {
		utils.JSONError(c, http.StatusBadRequest, "duration must be at least one day")
		return
	}

	actorID := c.GetString(middleware.ContextUserID)
	room, err := b.Bookings.UpdateBooking(actorID, c.Param("roomId"), payload.Duration)
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "requested room does not exist")
		return
	case errors.Is(err, services.ErrRoomNotBooked):
		utils.JSONError(c, http.StatusConflict, "requested room is not currently booked")
		return
	case errors.Is(err, services.ErrNoActiveBooking):
		utils.JSONError(c, http.StatusNotFound, "room has no booking to update")
		return
	case errors.Is(err, services.ErrNotBookingOwner):
		utils.JSONError(c, http.StatusForbidden, "you can only update your own booking")
		return
	case err != nil:
		log.Printf("update booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "booking could not be updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":    room,
		"message": fmt.Sprintf("you have successfully updated the booking of room %d", room.RoomNumber),
	})
}

// DELETE /api/bookings/room-number/:roomNumber
func (b *BookingController) CancelBooking(c *gin.Context) {
	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}

	actorID := c.GetString(middleware.ContextUserID)
	err := b.Bookings.CancelBooking(actorID, roomNumber)
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("room %d has not been booked", roomNumber))
		return
	case errors.Is(err, services.ErrNotBookingOwner):
		utils.JSONError(c, http.StatusForbidden, "you can only cancel your own booking")
		return
	case err != nil:
		log.Printf("cancel booking failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "booking could not be cancelled")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("you have successfully unbooked room %d", roomNumber),
	})
}
