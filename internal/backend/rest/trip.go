package rest

import (
	"context"
	"fmt"
	"net/http"

	"busriya/internal/backend"
	"busriya/internal/domain"
)

// TripService is the REST implementation of backend.TripGateway.
type TripService struct {
	client *Client
}

// NewTripService creates a trip-service client rooted at baseURL,
// e.g. "https://api.busriya.com/trip-service/v1.3".
func NewTripService(baseURL string, httpClient *http.Client) *TripService {
	return &TripService{client: NewClient(baseURL, httpClient)}
}

var _ backend.TripGateway = (*TripService)(nil)

// Search finds trips between two stations on a date.
func (s *TripService) Search(ctx context.Context, fromStationID, toStationID int, date string) ([]domain.Trip, error) {
	var trips []domain.Trip
	path := fmt.Sprintf("/trips/%d/%d/%s", fromStationID, toStationID, date)
	if err := s.client.get(ctx, path, nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Get retrieves a trip by ID.
func (s *TripService) Get(ctx context.Context, tripID int) (*domain.Trip, error) {
	var trip domain.Trip
	if err := s.client.get(ctx, fmt.Sprintf("/trips/%d", tripID), nil, &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// List retrieves all trips.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	var trips []domain.Trip
	if err := s.client.get(ctx, "/trips", nil, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// Create schedules a new trip.
func (s *TripService) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	var created domain.Trip
	if err := s.client.post(ctx, "/trips", trip, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTripStatus patches the operational status of a trip.
func (s *TripService) UpdateTripStatus(ctx context.Context, tripID int, status domain.TripStatus) error {
	request := struct {
		TripStatus domain.TripStatus `json:"tripStatus"`
	}{TripStatus: status}
	return s.client.patch(ctx, fmt.Sprintf("/trips/%d/trip-status", tripID), request, nil)
}

// UpdateBookingStatus opens or closes a trip for bookings.
func (s *TripService) UpdateBookingStatus(ctx context.Context, tripID int, status domain.TripBookingStatus) error {
	request := struct {
		BookingStatus domain.TripBookingStatus `json:"bookingStatus"`
	}{BookingStatus: status}
	return s.client.patch(ctx, fmt.Sprintf("/trips/%d/booking-status", tripID), request, nil)
}
