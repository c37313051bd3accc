package service

import (
	"context"
	"strings"

	"busriya/internal/backend"
	"busriya/internal/domain"
)

// BookingService builds the verification flows for existing bookings
// and handles the booking operations that need no multi-step state:
// ticket scanning and lost parcel reporting.
type BookingService struct {
	bookings backend.BookingGateway
}

// NewBookingService creates a new BookingService.
func NewBookingService(bookings backend.BookingGateway) *BookingService {
	return &BookingService{bookings: bookings}
}

// NewViewFlow instantiates the verification sub-protocol for viewing a
// reservation. Terminal action: re-fetch the booking details once the
// challenge is consumed, or reuse the payload the lookup already
// delivered on the short-circuit path.
func (s *BookingService) NewViewFlow() *VerificationFlow {
	return NewVerificationFlow(
		s.bookings.LookupETicket,
		s.bookings.SubmitOTP,
		func(ctx context.Context, f *VerificationFlow) (*domain.ETicketRecord, error) {
			if record := f.Record(); record != nil {
				return record, nil
			}
			record, err := s.bookings.LookupETicket(ctx, f.Key())
			if err != nil {
				return nil, err
			}
			if !record.Verified() {
				return nil, ErrNotVerified
			}
			return record, nil
		},
	)
}

// NewCancelFlow instantiates the verification sub-protocol for booking
// cancellation. Terminal action: patch the booking to CANCELLED. The
// terminal action runs only on the commuter's explicit confirmation.
func (s *BookingService) NewCancelFlow() *VerificationFlow {
	return NewVerificationFlow(
		s.bookings.LookupETicket,
		s.bookings.SubmitOTP,
		func(ctx context.Context, f *VerificationFlow) (*domain.ETicketRecord, error) {
			if err := s.bookings.UpdateBookingStatus(ctx, f.BookingID(), domain.BookingStatusCancelled); err != nil {
				return nil, err
			}
			return nil, nil
		},
	)
}

// ScanTicket marks a ticket used at boarding, keyed by eTicket code.
func (s *BookingService) ScanTicket(ctx context.Context, eTicket string) error {
	if strings.TrimSpace(eTicket) == "" {
		return ErrETicketRequired
	}
	return s.bookings.UpdateTicketStatus(ctx, strings.TrimSpace(eTicket), domain.TicketStatusUsed)
}

// ReportLostParcel files a lost parcel report and returns the
// reference ID issued for it.
func (s *BookingService) ReportLostParcel(ctx context.Context, parcel *domain.LostParcel) (string, error) {
	if strings.TrimSpace(parcel.ETicket) == "" {
		return "", ErrETicketRequired
	}
	return s.bookings.CreateLostParcel(ctx, parcel)
}
