package backend

import (
	"context"

	"busriya/internal/domain"
)

// TripGateway is the client for the trip service.
type TripGateway interface {
	// Search finds trips between two stations on a date (YYYY-MM-DD).
	Search(ctx context.Context, fromStationID, toStationID int, date string) ([]domain.Trip, error)

	// Get retrieves a trip by ID.
	Get(ctx context.Context, tripID int) (*domain.Trip, error)

	// List retrieves all trips. Requires a bearer token on the context.
	List(ctx context.Context) ([]domain.Trip, error)

	// Create schedules a new trip. Requires a bearer token on the context.
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)

	// UpdateTripStatus patches the operational status of a trip.
	UpdateTripStatus(ctx context.Context, tripID int, status domain.TripStatus) error

	// UpdateBookingStatus opens or closes a trip for bookings.
	UpdateBookingStatus(ctx context.Context, tripID int, status domain.TripBookingStatus) error
}
