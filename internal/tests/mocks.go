package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"busriya/internal/backend"
	"busriya/internal/domain"
)

// ──────────────────────────────────────────────
// MOCK BOOKING GATEWAY
// ──────────────────────────────────────────────

// MockBookingGateway is a mock implementation of backend.BookingGateway.
type MockBookingGateway struct {
	mu sync.Mutex

	// Canned responses
	CommuterID     int
	VerificationID int
	BookingID      int
	RedirectURL    string
	Record         *domain.ETicketRecord
	Records        []*domain.ETicketRecord // consumed in order when set
	ReferenceID    string

	// Error injection
	CreateCommuterError      error
	CreateBookingError       error
	SubmitOTPError           error
	InitiatePaymentError     error
	LookupError              error
	UpdateBookingStatusError error
	UpdateTicketStatusError  error

	// Counters for verification
	CreateCommuterCalls      int32
	CreateBookingCalls       int32
	SubmitOTPCalls           int32
	InitiatePaymentCalls     int32
	LookupCalls              int32
	UpdateBookingStatusCalls int32
	UpdateTicketStatusCalls  int32
	CreateLostParcelCalls    int32

	// Captured arguments
	LastCommuter      *domain.Commuter
	LastBookingSeat   int
	LastOTP           int
	LastBookingStatus domain.BookingStatus
	LastTicketStatus  domain.TicketStatus
	LastStatusID      int
	LastParcel        *domain.LostParcel

	// Barrier, when non-nil, blocks every call until released. Used
	// to hold a request in flight.
	Barrier chan struct{}
}

// NewMockBookingGateway creates a new mock booking gateway.
func NewMockBookingGateway() *MockBookingGateway {
	return &MockBookingGateway{}
}

func (m *MockBookingGateway) wait() {
	m.mu.Lock()
	barrier := m.Barrier
	m.mu.Unlock()
	if barrier != nil {
		<-barrier
	}
}

func (m *MockBookingGateway) CreateCommuter(ctx context.Context, commuter *domain.Commuter) (int, error) {
	atomic.AddInt32(&m.CreateCommuterCalls, 1)
	m.wait()
	if m.CreateCommuterError != nil {
		return 0, m.CreateCommuterError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastCommuter = commuter
	return m.CommuterID, nil
}

func (m *MockBookingGateway) CreateBooking(ctx context.Context, commuterID, tripID, seatNumber int) (int, error) {
	atomic.AddInt32(&m.CreateBookingCalls, 1)
	m.wait()
	if m.CreateBookingError != nil {
		return 0, m.CreateBookingError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastBookingSeat = seatNumber
	return m.VerificationID, nil
}

func (m *MockBookingGateway) SubmitOTP(ctx context.Context, verificationID, otp int) (int, error) {
	atomic.AddInt32(&m.SubmitOTPCalls, 1)
	m.wait()
	if m.SubmitOTPError != nil {
		return 0, m.SubmitOTPError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastOTP = otp
	return m.BookingID, nil
}

func (m *MockBookingGateway) InitiatePayment(ctx context.Context, bookingID int) (string, error) {
	atomic.AddInt32(&m.InitiatePaymentCalls, 1)
	m.wait()
	if m.InitiatePaymentError != nil {
		return "", m.InitiatePaymentError
	}
	return m.RedirectURL, nil
}

func (m *MockBookingGateway) LookupETicket(ctx context.Context, eTicket string) (*domain.ETicketRecord, error) {
	atomic.AddInt32(&m.LookupCalls, 1)
	m.wait()
	if m.LookupError != nil {
		return nil, m.LookupError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Records) > 0 {
		record := m.Records[0]
		m.Records = m.Records[1:]
		return record, nil
	}
	return m.Record, nil
}

func (m *MockBookingGateway) UpdateBookingStatus(ctx context.Context, bookingID int, status domain.BookingStatus) error {
	atomic.AddInt32(&m.UpdateBookingStatusCalls, 1)
	if m.UpdateBookingStatusError != nil {
		return m.UpdateBookingStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastStatusID = bookingID
	m.LastBookingStatus = status
	return nil
}

func (m *MockBookingGateway) UpdateTicketStatus(ctx context.Context, eTicket string, status domain.TicketStatus) error {
	atomic.AddInt32(&m.UpdateTicketStatusCalls, 1)
	if m.UpdateTicketStatusError != nil {
		return m.UpdateTicketStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastTicketStatus = status
	return nil
}

func (m *MockBookingGateway) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return nil, nil
}

func (m *MockBookingGateway) CreateLostParcel(ctx context.Context, parcel *domain.LostParcel) (string, error) {
	atomic.AddInt32(&m.CreateLostParcelCalls, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastParcel = parcel
	return m.ReferenceID, nil
}

func (m *MockBookingGateway) UpdateLostParcel(ctx context.Context, parcelID int, status domain.ParcelStatus) error {
	return nil
}

func (m *MockBookingGateway) ListLostParcels(ctx context.Context) ([]domain.LostParcel, error) {
	return nil, nil
}

// ──────────────────────────────────────────────
// MOCK TRIP GATEWAY
// ──────────────────────────────────────────────

// MockTripGateway is a mock implementation of backend.TripGateway.
type MockTripGateway struct {
	Trip     *domain.Trip
	GetError error

	GetCalls int32
}

// NewMockTripGateway creates a mock trip gateway serving one trip.
func NewMockTripGateway(trip *domain.Trip) *MockTripGateway {
	return &MockTripGateway{Trip: trip}
}

func (m *MockTripGateway) Search(ctx context.Context, fromStationID, toStationID int, date string) ([]domain.Trip, error) {
	if m.Trip == nil {
		return nil, nil
	}
	return []domain.Trip{*m.Trip}, nil
}

func (m *MockTripGateway) Get(ctx context.Context, tripID int) (*domain.Trip, error) {
	atomic.AddInt32(&m.GetCalls, 1)
	if m.GetError != nil {
		return nil, m.GetError
	}
	if m.Trip == nil {
		return nil, backend.ErrNotFound
	}
	trip := *m.Trip
	return &trip, nil
}

func (m *MockTripGateway) List(ctx context.Context) ([]domain.Trip, error) {
	if m.Trip == nil {
		return nil, nil
	}
	return []domain.Trip{*m.Trip}, nil
}

func (m *MockTripGateway) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	return trip, nil
}

func (m *MockTripGateway) UpdateTripStatus(ctx context.Context, tripID int, status domain.TripStatus) error {
	return nil
}

func (m *MockTripGateway) UpdateBookingStatus(ctx context.Context, tripID int, status domain.TripBookingStatus) error {
	return nil
}

// ──────────────────────────────────────────────
// MOCK CORE GATEWAY
// ──────────────────────────────────────────────

// MockCoreGateway is a mock implementation of backend.CoreGateway. Only
// authentication is exercised by the tests; the master-data resources
// answer empty.
type MockCoreGateway struct {
	AccessToken string
	AuthError   error

	AuthenticateCalls int32
	LastUsername      string
}

// NewMockCoreGateway creates a mock core gateway issuing accessToken.
func NewMockCoreGateway(accessToken string) *MockCoreGateway {
	return &MockCoreGateway{AccessToken: accessToken}
}

func (m *MockCoreGateway) Authenticate(ctx context.Context, username, password string) (string, error) {
	atomic.AddInt32(&m.AuthenticateCalls, 1)
	if m.AuthError != nil {
		return "", m.AuthError
	}
	m.LastUsername = username
	return m.AccessToken, nil
}

func (m *MockCoreGateway) Stations() backend.Resource[domain.Station] {
	return emptyResource[domain.Station]{}
}

func (m *MockCoreGateway) Routes() backend.Resource[domain.Route] {
	return emptyResource[domain.Route]{}
}

func (m *MockCoreGateway) Vehicles() backend.Resource[domain.Vehicle] {
	return emptyResource[domain.Vehicle]{}
}

func (m *MockCoreGateway) BusOperators() backend.Resource[domain.BusOperator] {
	return emptyResource[domain.BusOperator]{}
}

func (m *MockCoreGateway) BusWorkers() backend.Resource[domain.BusWorker] {
	return emptyResource[domain.BusWorker]{}
}

func (m *MockCoreGateway) Policies() backend.Resource[domain.Policy] {
	return emptyResource[domain.Policy]{}
}

func (m *MockCoreGateway) Permits() backend.Resource[domain.Permit] {
	return emptyResource[domain.Permit]{}
}

func (m *MockCoreGateway) Schedules() backend.Resource[domain.Schedule] {
	return emptyResource[domain.Schedule]{}
}

type emptyResource[T any] struct{}

func (emptyResource[T]) List(ctx context.Context, q backend.ListQuery) (*backend.Page[T], error) {
	return &backend.Page[T]{CurrentPage: 1, TotalPages: 1}, nil
}

func (emptyResource[T]) ListAll(ctx context.Context) ([]T, error) { return nil, nil }

func (emptyResource[T]) Get(ctx context.Context, id int) (*T, error) {
	return nil, backend.ErrNotFound
}

func (emptyResource[T]) Create(ctx context.Context, item *T) (*T, error) { return item, nil }

func (emptyResource[T]) Update(ctx context.Context, id int, item *T) (*T, error) {
	return item, nil
}

func (emptyResource[T]) Delete(ctx context.Context, id int) error { return nil }

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is an in-memory session store.
type MockSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session

	SetError error
}

// NewMockSessionStore creates a new in-memory session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	copy := *session
	return &copy, nil
}

func (m *MockSessionStore) Set(ctx context.Context, session *domain.Session) error {
	if m.SetError != nil {
		return m.SetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Count returns the number of stored sessions.
func (m *MockSessionStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
