package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func seedBooking(t *testing.T, db *gorm.DB, room models.Room, userID string, dateBooked time.Time, duration int) models.Booking {
	t.Helper()
	booking := models.Booking{
		ID:         uuid.New().String(),
		RoomID:     room.ID,
		UserID:     userID,
		RoomNumber: room.RoomNumber,
		Duration:   duration,
		DateBooked: dateBooked,
		TimeOut:    dateBooked.AddDate(0, 0, duration),
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return booking
}

func newRoomController(db *gorm.DB) *RoomController {
	return NewRoomController(services.NewRoomService(db), services.NewBookingService(db))
}

func TestGetRooms(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	seedRoom(t, db, 1, true)
	seedRoom(t, db, 2, false)
	rc := newRoomController(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/rooms", nil)

	rc.GetRooms(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var rooms []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)
}

func TestGetRoomsEmptyHotel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	rc := newRoomController(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/rooms", nil)

	rc.GetRooms(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckAvailability(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	seedRoom(t, db, 5, true)
	seedRoom(t, db, 6, false)
	rc := newRoomController(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "roomNumber", Value: "5"}}
	c.Request = httptest.NewRequest("GET", "/api/rooms/availability/5", nil)
	rc.CheckAvailability(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "roomNumber", Value: "6"}}
	c.Request = httptest.NewRequest("GET", "/api/rooms/availability/6", nil)
	rc.CheckAvailability(c)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "roomNumber", Value: "99"}}
	c.Request = httptest.NewRequest("GET", "/api/rooms/availability/99", nil)
	rc.CheckAvailability(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "roomNumber", Value: "not-a-number"}}
	c.Request = httptest.NewRequest("GET", "/api/rooms/availability/not-a-number", nil)
	rc.CheckAvailability(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOverdueRoomsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	overdue := seedRoom(t, db, 1, false)
	seedBooking(t, db, overdue, "u1", time.Now().AddDate(0, 0, -5), 2)
	current := seedRoom(t, db, 2, false)
	seedBooking(t, db, current, "u2", time.Now(), 4)
	rc := newRoomController(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/rooms/overdue", nil)

	rc.GetOverdueRooms(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var rooms []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 1)
	assert.Equal(t, overdue.ID, rooms[0]["id"])
}

func TestReclaimOverdueRoomsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	overdue := seedRoom(t, db, 1, false)
	seedBooking(t, db, overdue, "u1", time.Now().AddDate(0, 0, -5), 2)
	rc := newRoomController(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PATCH", "/api/rooms/reclaim", nil)

	rc.ReclaimOverdueRooms(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.Room
	assert.NoError(t, db.Where("id = ?", overdue.ID).First(&fresh).Error)
	assert.True(t, fresh.Availability)

	// nothing left to reclaim
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("PATCH", "/api/rooms/reclaim", nil)
	rc.ReclaimOverdueRooms(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReclaimOverdueRoomByIDHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	overdue := seedRoom(t, db, 1, false)
	seedBooking(t, db, overdue, "u1", time.Now().AddDate(0, 0, -5), 2)
	current := seedRoom(t, db, 2, false)
	seedBooking(t, db, current, "u2", time.Now(), 4)
	rc := newRoomController(db)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: current.ID}}
	c.Request = httptest.NewRequest("PATCH", "/api/rooms/"+current.ID+"/reclaim", nil)
	rc.ReclaimOverdueRoomByID(c)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: overdue.ID}}
	c.Request = httptest.NewRequest("PATCH", "/api/rooms/"+overdue.ID+"/reclaim", nil)
	rc.ReclaimOverdueRoomByID(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.Room
	assert.NoError(t, db.Where("id = ?", overdue.ID).First(&fresh).Error)
	assert.True(t, fresh.Availability)
}
