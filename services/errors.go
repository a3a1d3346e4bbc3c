package services

import "errors"

// Precondition failures are sentinel errors so handlers can map each one to
// its own status code with errors.Is. ErrNothingUpdated is different in kind:
// the preconditions held but the commit touched zero rows.
var (
	ErrRoomNotFound     = errors.New("room_not_found")
	ErrRoomNotAvailable = errors.New("room_not_available")
	ErrRoomNotBooked    = errors.New("room_not_booked")
	ErrNoActiveBooking  = errors.New("no_active_booking")
	ErrBookingNotFound  = errors.New("booking_not_found")
	ErrNotBookingOwner  = errors.New("not_booking_owner")
	ErrNoOverdueRooms   = errors.New("no_overdue_rooms")
	ErrRoomNotOverdue   = errors.New("room_not_overdue")
	ErrNothingUpdated   = errors.New("nothing_updated")
)
