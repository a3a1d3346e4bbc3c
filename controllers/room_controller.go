package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
}

func NewRoomController(rooms *services.RoomService, bookings *services.BookingService) *RoomController {
	return &RoomController{Rooms: rooms, Bookings: bookings}
}

func parseRoomNumber(c *gin.Context) (uint8, bool) {
	n, err := strconv.ParseUint(c.Param("roomNumber"), 10, 8)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number")
		return 0, false
	}
	return uint8(n), true
}

// GET /api/rooms
func (r *RoomController) GetRooms(c *gin.Context) {
	rooms, err := r.Rooms.GetAll()
	if err != nil {
		log.Printf("list rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	if len(rooms) == 0 {
		utils.JSONError(c, http.StatusNotFound, "no room in this hotel")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (r *RoomController) GetRoomByID(c *gin.Context) {
	room, err := r.Rooms.GetByID(c.Param("id"))
	if errors.Is(err, services.ErrRoomNotFound) {
		utils.JSONError(c, http.StatusNotFound, "requested room not found")
		return
	}
	if err != nil {
		log.Printf("get room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to get room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// GET /api/rooms/number/:roomNumber
func (r *RoomController) GetRoomByNumber(c *gin.Context) {
	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	room, err := r.Rooms.GetByNumber(roomNumber)
	if errors.Is(err, services.ErrRoomNotFound) {
		utils.JSONError(c, http.StatusNotFound, "requested room not found")
		return
	}
	if err != nil {
		log.Printf("get room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to get room")
		return
	}
	c.JSON(http.StatusOK, room)
}

// GET /api/rooms/available
func (r *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := r.Rooms.GetAvailable()
	if err != nil {
		log.Printf("list available rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	if len(rooms) == 0 {
		utils.JSONError(c, http.StatusNotFound, "there is no room available")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/booked
func (r *RoomController) GetBookedRooms(c *gin.Context) {
	rooms, err := r.Rooms.GetBooked()
	if err != nil {
		log.Printf("list booked rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	if len(rooms) == 0 {
		utils.JSONError(c, http.StatusNotFound, "no room has been booked")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/overdue
func (r *RoomController) GetOverdueRooms(c *gin.Context) {
	rooms, err := r.Rooms.GetOverdue()
	if err != nil {
		log.Printf("list overdue rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	if len(rooms) == 0 {
		utils.JSONError(c, http.StatusNotFound, "no room is overdue")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GET /api/rooms/availability/:roomNumber
func (r *RoomController) CheckAvailability(c *gin.Context) {
	roomNumber, ok := parseRoomNumber(c)
	if !ok {
		return
	}

	available, err := r.Rooms.IsAvailable(roomNumber)
	if errors.Is(err, services.ErrRoomNotFound) {
		utils.JSONError(c, http.StatusNotFound, "the requested room does not exist")
		return
	}
	if err != nil {
		log.Printf("check availability failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to check availability")
		return
	}
	if !available {
		utils.JSONError(c, http.StatusConflict, "sorry, the requested room is not available")
		return
	}

	room, err := r.Rooms.GetByNumber(roomNumber)
	if err != nil {
		log.Printf("get room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to get room")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room":    room,
		"message": "requested room is available for booking",
	})
}

// PATCH /api/rooms/:id/photo
func (r *RoomController) UpdateRoomPhoto(c *gin.Context) {
	room, err := r.Rooms.GetByID(c.Param("id"))
	if errors.Is(err, services.ErrRoomNotFound) {
		utils.JSONError(c, http.StatusNotFound, "requested room not found")
		return
	}
	if err != nil {
		log.Printf("get room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to get room")
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	path, err := services.SaveRoomPhoto(file, header)
	if err != nil {
		log.Printf("save room photo failed: %v", err)
		utils.JSONError(c, http.StatusBadRequest, "photo not updated")
		return
	}

	photoURL := "/uploads/" + path
	if err := r.Rooms.UpdatePhoto(room.ID, photoURL); err != nil {
		log.Printf("update room photo failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "photo not updated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"photoUrl": photoURL})
}

// PATCH /api/rooms/reclaim
func (r *RoomController) ReclaimOverdueRooms(c *gin.Context) {
	rooms, err := r.Bookings.ReclaimOverdue()
	if errors.Is(err, services.ErrNoOverdueRooms) {
		utils.JSONError(c, http.StatusConflict, "no room is overdue")
		return
	}
	if err != nil {
		log.Printf("reclaim overdue rooms failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"rooms":   rooms,
		"message": "all overdue rooms are now available",
	})
}

// PATCH /api/rooms/:id/reclaim
func (r *RoomController) ReclaimOverdueRoomByID(c *gin.Context) {
	room, err := r.Bookings.ReclaimOverdueByID(c.Param("id"))
	switch {
	case errors.Is(err, services.ErrNoOverdueRooms):
		utils.JSONError(c, http.StatusConflict, "no room is overdue")
		return
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "required room does not exist")
		return
	case errors.Is(err, services.ErrRoomNotOverdue):
		utils.JSONError(c, http.StatusConflict, "requested room is not yet overdue")
		return
	case err != nil:
		log.Printf("reclaim room failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room":    room,
		"message": fmt.Sprintf("room %d is now available for booking", room.RoomNumber),
	})
}
