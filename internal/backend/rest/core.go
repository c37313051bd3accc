package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"busriya/internal/backend"
	"busriya/internal/domain"
)

// CoreService is the REST implementation of backend.CoreGateway.
type CoreService struct {
	client *Client
}

// NewCoreService creates a core-service client rooted at baseURL,
// e.g. "https://api.busriya.com/core-service/v2.0".
func NewCoreService(baseURL string, httpClient *http.Client) *CoreService {
	return &CoreService{client: NewClient(baseURL, httpClient)}
}

var _ backend.CoreGateway = (*CoreService)(nil)

// Authenticate exchanges credentials for an access token.
func (s *CoreService) Authenticate(ctx context.Context, username, password string) (string, error) {
	request := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var response struct {
		AccessToken string `json:"accessToken"`
	}
	if err := s.client.post(ctx, "/authentications", request, &response); err != nil {
		return "", err
	}
	return response.AccessToken, nil
}

func (s *CoreService) Stations() backend.Resource[domain.Station] {
	return resource[domain.Station]{client: s.client, path: "/stations"}
}

func (s *CoreService) Routes() backend.Resource[domain.Route] {
	return resource[domain.Route]{client: s.client, path: "/routes"}
}

func (s *CoreService) Vehicles() backend.Resource[domain.Vehicle] {
	return resource[domain.Vehicle]{client: s.client, path: "/vehicles"}
}

func (s *CoreService) BusOperators() backend.Resource[domain.BusOperator] {
	return resource[domain.BusOperator]{client: s.client, path: "/bus-operators"}
}

func (s *CoreService) BusWorkers() backend.Resource[domain.BusWorker] {
	return resource[domain.BusWorker]{client: s.client, path: "/bus-workers"}
}

func (s *CoreService) Policies() backend.Resource[domain.Policy] {
	return resource[domain.Policy]{client: s.client, path: "/policies"}
}

func (s *CoreService) Permits() backend.Resource[domain.Permit] {
	return resource[domain.Permit]{client: s.client, path: "/permits"}
}

func (s *CoreService) Schedules() backend.Resource[domain.Schedule] {
	return resource[domain.Schedule]{client: s.client, path: "/schedules"}
}

// resource implements the uniform CRUD operations for one master-data
// collection. Every collection shares the same envelope and verbs, so
// one parametrized implementation serves them all.
type resource[T any] struct {
	client *Client
	path   string
}

func (r resource[T]) List(ctx context.Context, q backend.ListQuery) (*backend.Page[T], error) {
	query := url.Values{}
	if q.All {
		query.Set("all", "true")
	} else {
		if q.Page > 0 {
			query.Set("page", strconv.Itoa(q.Page))
		}
		if q.Limit > 0 {
			query.Set("limit", strconv.Itoa(q.Limit))
		}
	}

	var page backend.Page[T]
	if err := r.client.get(ctx, r.path, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (r resource[T]) ListAll(ctx context.Context) ([]T, error) {
	// Unpaged responses are a bare array, not the page envelope.
	var items []T
	query := url.Values{}
	query.Set("all", "true")
	if err := r.client.get(ctx, r.path, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r resource[T]) Get(ctx context.Context, id int) (*T, error) {
	var item T
	if err := r.client.get(ctx, fmt.Sprintf("%s/%d", r.path, id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r resource[T]) Create(ctx context.Context, item *T) (*T, error) {
	var created T
	if err := r.client.post(ctx, r.path, item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r resource[T]) Update(ctx context.Context, id int, item *T) (*T, error) {
	var updated T
	if err := r.client.put(ctx, fmt.Sprintf("%s/%d", r.path, id), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r resource[T]) Delete(ctx context.Context, id int) error {
	return r.client.delete(ctx, fmt.Sprintf("%s/%d", r.path, id))
}
