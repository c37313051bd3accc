package domain

// BookingStatus represents the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusCreating  BookingStatus = "CREATING"
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusPaid      BookingStatus = "PAID"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusExpired   BookingStatus = "EXPIRED"
)

// TicketStatus represents whether a ticket has been used for travel.
type TicketStatus string

const (
	TicketStatusNotUsed TicketStatus = "NOT_USED"
	TicketStatusUsed    TicketStatus = "USED"
)

// Booking links a commuter to a trip with a chosen seat. Its lifecycle
// continues server-side after payment initiation.
type Booking struct {
	BookingID     int           `json:"bookingId"`
	ETicket       string        `json:"eTicket,omitempty"`
	Commuter      Commuter      `json:"commuter"`
	Trip          Trip          `json:"trip"`
	SeatNumber    int           `json:"seatNumber"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	TicketStatus  TicketStatus  `json:"ticketStatus,omitempty"`
}

// ETicketRecord is the booking service's response to an eTicket lookup.
// A non-zero VerificationID means the commuter still has to pass an OTP
// check before the booking details are released; when it is zero the
// embedded booking details are present and trustworthy.
type ETicketRecord struct {
	VerificationID int           `json:"verificationId,omitempty"`
	BookingID      int           `json:"bookingId,omitempty"`
	Commuter       Commuter      `json:"commuter,omitempty"`
	Trip           Trip          `json:"trip,omitempty"`
	SeatNumber     int           `json:"seatNumber,omitempty"`
	BookingStatus  BookingStatus `json:"bookingStatus,omitempty"`
	TicketStatus   TicketStatus  `json:"ticketStatus,omitempty"`
}

// Verified reports whether the lookup response already carries the
// booking details, i.e. no OTP challenge is pending.
func (r *ETicketRecord) Verified() bool {
	return r.VerificationID == 0
}
