package rest

import (
	"context"
	"fmt"
	"net/http"

	"busriya/internal/backend"
	"busriya/internal/domain"
)

// BookingService is the REST implementation of backend.BookingGateway.
type BookingService struct {
	client *Client
}

// NewBookingService creates a booking-service client rooted at baseURL,
// e.g. "https://api.busriya.com/booking-service/v1.7".
func NewBookingService(baseURL string, httpClient *http.Client) *BookingService {
	return &BookingService{client: NewClient(baseURL, httpClient)}
}

var _ backend.BookingGateway = (*BookingService)(nil)

// CreateCommuter registers a commuter and returns the commuterId.
func (s *BookingService) CreateCommuter(ctx context.Context, commuter *domain.Commuter) (int, error) {
	var response struct {
		CommuterID int `json:"commuterId"`
	}
	if err := s.client.post(ctx, "/commuters", commuter, &response); err != nil {
		return 0, err
	}
	return response.CommuterID, nil
}

// CreateBooking reserves a seat and returns the verificationId of the
// OTP challenge the booking service issued.
func (s *BookingService) CreateBooking(ctx context.Context, commuterID, tripID, seatNumber int) (int, error) {
	request := struct {
		Commuter   int `json:"commuter"`
		Trip       int `json:"trip"`
		SeatNumber int `json:"seatNumber"`
	}{Commuter: commuterID, Trip: tripID, SeatNumber: seatNumber}

	var response struct {
		VerificationID int `json:"verificationId"`
	}
	if err := s.client.post(ctx, "/bookings", request, &response); err != nil {
		return 0, err
	}
	return response.VerificationID, nil
}

// SubmitOTP satisfies an OTP challenge and returns the bookingId.
func (s *BookingService) SubmitOTP(ctx context.Context, verificationID, otp int) (int, error) {
	request := struct {
		OTP int `json:"otp"`
	}{OTP: otp}

	var response struct {
		BookingID int `json:"bookingId"`
	}
	path := fmt.Sprintf("/otp-verifications/%d", verificationID)
	if err := s.client.patch(ctx, path, request, &response); err != nil {
		return 0, err
	}
	return response.BookingID, nil
}

// InitiatePayment starts payment for a booking and returns the payment
// provider's redirect URL.
func (s *BookingService) InitiatePayment(ctx context.Context, bookingID int) (string, error) {
	request := struct {
		Booking int `json:"booking"`
	}{Booking: bookingID}

	var response struct {
		RedirectURL string `json:"redirectUrl"`
	}
	if err := s.client.post(ctx, "/booking-payments", request, &response); err != nil {
		return "", err
	}
	return response.RedirectURL, nil
}

// LookupETicket resolves a booking by its eTicket code.
func (s *BookingService) LookupETicket(ctx context.Context, eTicket string) (*domain.ETicketRecord, error) {
	var record domain.ETicketRecord
	if err := s.client.get(ctx, "/bookings/eTicket/"+eTicket, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateBookingStatus patches a booking's lifecycle status.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, bookingID int, status domain.BookingStatus) error {
	request := struct {
		BookingStatus domain.BookingStatus `json:"bookingStatus"`
	}{BookingStatus: status}
	return s.client.patch(ctx, fmt.Sprintf("/bookings/%d/booking-status", bookingID), request, nil)
}

// UpdateTicketStatus marks a ticket used at boarding.
func (s *BookingService) UpdateTicketStatus(ctx context.Context, eTicket string, status domain.TicketStatus) error {
	request := struct {
		TicketStatus domain.TicketStatus `json:"ticketStatus"`
	}{TicketStatus: status}
	return s.client.patch(ctx, "/bookings/eTicket/"+eTicket, request, nil)
}

// ListBookings retrieves all bookings.
func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := s.client.get(ctx, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateLostParcel files a lost parcel report.
func (s *BookingService) CreateLostParcel(ctx context.Context, parcel *domain.LostParcel) (string, error) {
	var response struct {
		ReferenceID string `json:"referenceId"`
	}
	if err := s.client.post(ctx, "/lost-parcels", parcel, &response); err != nil {
		return "", err
	}
	return response.ReferenceID, nil
}

// UpdateLostParcel patches a lost parcel report's status.
func (s *BookingService) UpdateLostParcel(ctx context.Context, parcelID int, status domain.ParcelStatus) error {
	request := struct {
		Status domain.ParcelStatus `json:"status"`
	}{Status: status}
	return s.client.patch(ctx, fmt.Sprintf("/lost-parcels/%d", parcelID), request, nil)
}

// ListLostParcels retrieves all lost parcel reports.
func (s *BookingService) ListLostParcels(ctx context.Context) ([]domain.LostParcel, error) {
	var parcels []domain.LostParcel
	if err := s.client.get(ctx, "/lost-parcels", nil, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}
