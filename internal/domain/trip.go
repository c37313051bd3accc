package domain

// TripStatus represents the operational status of a trip.
type TripStatus string

const (
	TripStatusScheduled TripStatus = "SCHEDULED"
	TripStatusStarted   TripStatus = "STARTED"
	TripStatusEnded     TripStatus = "ENDED"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// TripBookingStatus represents whether a trip currently accepts bookings.
type TripBookingStatus string

const (
	TripBookingEnabled  TripBookingStatus = "ENABLED"
	TripBookingDisabled TripBookingStatus = "DISABLED"
)

// SeatCount reports how many seats on a trip are already confirmed.
type SeatCount struct {
	Count int `json:"count"`
}

// Trip is an offered journey instance. Read-only to the reservation
// workflow; fetched once at workflow entry and used as context for
// seat validation and display.
type Trip struct {
	TripID         int               `json:"tripId"`
	TripNumber     string            `json:"tripNumber,omitempty"`
	TripDate       string            `json:"tripDate"`
	StartLocation  Station           `json:"startLocation"`
	EndLocation    Station           `json:"endLocation"`
	Route          Route             `json:"route"`
	Schedule       Schedule          `json:"schedule"`
	Vehicle        Vehicle           `json:"vehicle"`
	ConfirmedSeats SeatCount         `json:"confirmedSeats"`
	BookingCloseAt string            `json:"bookingCloseAt,omitempty"`
	TripStatus     TripStatus        `json:"tripStatus,omitempty"`
	BookingStatus  TripBookingStatus `json:"bookingStatus,omitempty"`
}

// Capacity returns the seat capacity of the vehicle serving the trip.
func (t *Trip) Capacity() int {
	return t.Vehicle.Capacity
}
