package backend

import (
	"context"

	"busriya/internal/domain"
)

// BookingGateway is the client for the booking service. The reservation
// workflow's server-assigned identifiers (commuterId, verificationId,
// bookingId) all originate here.
type BookingGateway interface {
	// CreateCommuter registers a commuter and returns the commuterId.
	CreateCommuter(ctx context.Context, commuter *domain.Commuter) (int, error)

	// CreateBooking reserves a seat on a trip for a commuter. The
	// booking is held unconfirmed; the returned verificationId
	// identifies the OTP challenge sent to the commuter's email.
	CreateBooking(ctx context.Context, commuterID, tripID, seatNumber int) (int, error)

	// SubmitOTP satisfies an OTP challenge and returns the bookingId
	// the verification was protecting.
	SubmitOTP(ctx context.Context, verificationID, otp int) (int, error)

	// InitiatePayment starts payment for a booking and returns the
	// redirect URL of the payment provider.
	InitiatePayment(ctx context.Context, bookingID int) (string, error)

	// LookupETicket resolves a booking by its eTicket code. The record
	// either carries a pending verificationId or the booking details.
	LookupETicket(ctx context.Context, eTicket string) (*domain.ETicketRecord, error)

	// UpdateBookingStatus patches a booking's lifecycle status.
	UpdateBookingStatus(ctx context.Context, bookingID int, status domain.BookingStatus) error

	// UpdateTicketStatus marks a ticket used at boarding, keyed by
	// eTicket code.
	UpdateTicketStatus(ctx context.Context, eTicket string, status domain.TicketStatus) error

	// ListBookings retrieves all bookings. Requires a bearer token.
	ListBookings(ctx context.Context) ([]domain.Booking, error)

	// CreateLostParcel files a lost parcel report and returns its
	// reference ID.
	CreateLostParcel(ctx context.Context, parcel *domain.LostParcel) (string, error)

	// UpdateLostParcel patches a lost parcel report's status.
	UpdateLostParcel(ctx context.Context, parcelID int, status domain.ParcelStatus) error

	// ListLostParcels retrieves all lost parcel reports. Requires a
	// bearer token.
	ListLostParcels(ctx context.Context) ([]domain.LostParcel, error)
}
