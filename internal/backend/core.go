package backend

import (
	"context"

	"busriya/internal/domain"
)

// Resource defines the uniform list/get/create/update/delete operations
// every core-service master-data collection exposes.
type Resource[T any] interface {
	// List retrieves one page of the collection.
	List(ctx context.Context, q ListQuery) (*Page[T], error)

	// ListAll retrieves the whole collection unpaged.
	ListAll(ctx context.Context) ([]T, error)

	// Get retrieves a single entity by ID.
	Get(ctx context.Context, id int) (*T, error)

	// Create stores a new entity and returns the server's copy.
	Create(ctx context.Context, item *T) (*T, error)

	// Update replaces an existing entity and returns the server's copy.
	Update(ctx context.Context, id int, item *T) (*T, error)

	// Delete removes an entity by ID.
	Delete(ctx context.Context, id int) error
}

// CoreGateway is the client for the core/master-data service. The
// master-data collections are uniform CRUD wrappers; each accessor
// returns the typed resource client for one collection.
type CoreGateway interface {
	// Authenticate exchanges credentials for an access token.
	Authenticate(ctx context.Context, username, password string) (string, error)

	Stations() Resource[domain.Station]
	Routes() Resource[domain.Route]
	Vehicles() Resource[domain.Vehicle]
	BusOperators() Resource[domain.BusOperator]
	BusWorkers() Resource[domain.BusWorker]
	Policies() Resource[domain.Policy]
	Permits() Resource[domain.Permit]
	Schedules() Resource[domain.Schedule]
}
