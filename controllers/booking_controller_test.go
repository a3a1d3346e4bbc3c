package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number uint8, available bool) models.Room {
	t.Helper()
	room := models.Room{ID: uuid.New().String(), RoomNumber: number, Availability: available}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room %d: %v", number, err)
	}
	return room
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	seedRoom(t, db, 5, true)
	bc := NewBookingController(services.NewBookingService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, "u1")
	c.Request = jsonRequest("POST", "/api/bookings", map[string]interface{}{
		"roomNumber": 5,
		"duration":   3,
	})

	bc.CreateBooking(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response["message"], "booked room 5")

	var booking models.Booking
	assert.NoError(t, db.Where("room_number = ?", 5).First(&booking).Error)
	assert.Equal(t, "u1", booking.UserID)
}

func TestCreateBookingRoomOccupied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	seedRoom(t, db, 5, false)
	bc := NewBookingController(services.NewBookingService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, "u2")
	c.Request = jsonRequest("POST", "/api/bookings", map[string]interface{}{
		"roomNumber": 5,
		"duration":   1,
	})

	bc.CreateBooking(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	bc := NewBookingController(services.NewBookingService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, "u1")
	c.Request = jsonRequest("POST", "/api/bookings", map[string]interface{}{
		"roomNumber": 42,
		"duration":   1,
	})

	bc.CreateBooking(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBookingInvalidDuration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	seedRoom(t, db, 5, true)
	bc := NewBookingController(services.NewBookingService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, "u1")
	c.Request = jsonRequest("POST", "/api/bookings", map[string]interface{}{
		"roomNumber": 5,
		"duration":   0,
	})

	bc.CreateBooking(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateBookingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	room := seedRoom(t, db, 7, false)
	booking := models.Booking{
		ID:         uuid.New().String(),
		RoomID:     room.ID,
		UserID:     "u1",
		RoomNumber: 7,
		Duration:   2,
		DateBooked: time.Now().AddDate(0, 0, -1),
		TimeOut:    time.Now().AddDate(0, 0, 1),
	}
	assert.NoError(t, db.Create(&booking).Error)
	bc := NewBookingController(services.NewBookingService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, "u1")
	c.Params = gin.Params{{Key: "roomId", Value: room.ID}}
	c.Request = jsonRequest("PUT", "/api/bookings/room/"+room.ID, map[string]interface{}{
		"duration": 6,
	})

	bc.UpdateBooking(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Booking
	assert.NoError(t, db.Where("id = ?", booking.ID).First(&stored).Error)
	assert.Equal(t, 6, stored.Duration)
}

func TestUpdateBookingHandlerWrongOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	room := seedRoom(t, db, 7, false)
	booking := models.Booking{
		ID:         uuid.New().String(),
		RoomID:     room.ID,
		UserID:     "u1",
		RoomNumber: 7,
		Duration:   2,
		DateBooked: time.Now(),
		TimeOut:    time.Now().AddDate(0, 0, 2),
	}
	assert.NoError(t, db.Create(&booking).Error)
	bc := NewBookingController(services.NewBookingService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, "u2")
	c.Params = gin.Params{{Key: "roomId", Value: room.ID}}
	c.Request = jsonRequest("PUT", "/api/bookings/room/"+room.ID, map[string]interface{}{
		"duration": 6,
	})

	bc.UpdateBooking(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCancelBookingHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	room := seedRoom(t, db, 9, false)
	booking := models.Booking{
		ID:         uuid.New().String(),
		RoomID:     room.ID,
		UserID:     "u1",
		RoomNumber: 9,
		Duration:   2,
		DateBooked: time.Now(),
		TimeOut:    time.Now().AddDate(0, 0, 2),
	}
	assert.NoError(t, db.Create(&booking).Error)
	bc := NewBookingController(services.NewBookingService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, "u1")
	c.Params = gin.Params{{Key: "roomNumber", Value: "9"}}
	c.Request = httptest.NewRequest("DELETE", "/api/bookings/room-number/9", nil)

	bc.CancelBooking(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var fresh models.Room
	assert.NoError(t, db.Where("id = ?", room.ID).First(&fresh).Error)
	assert.True(t, fresh.Availability)
}

func TestCancelBookingHandlerNotBooked(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)
	seedRoom(t, db, 9, true)
	bc := NewBookingController(services.NewBookingService(db))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.ContextUserID, "u1")
	c.Params = gin.Params{{Key: "roomNumber", Value: "9"}}
	c.Request = httptest.NewRequest("DELETE", "/api/bookings/room-number/9", nil)

	bc.CancelBooking(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
