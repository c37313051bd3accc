package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"busriya/internal/domain"
)

// VerificationStage is the state of the two-phase identity check.
type VerificationStage int

const (
	StageUnverified VerificationStage = iota
	StagePendingOTP
	StageVerified
)

// String returns the stage name for responses and logs.
func (s VerificationStage) String() string {
	switch s {
	case StageUnverified:
		return "UNVERIFIED"
	case StagePendingOTP:
		return "PENDING_OTP"
	case StageVerified:
		return "VERIFIED"
	default:
		return "UNKNOWN"
	}
}

// LookupFunc resolves a natural key (an eTicket code) to an eTicket
// record. A non-zero verificationId on the record means an OTP
// challenge is pending.
type LookupFunc func(ctx context.Context, key string) (*domain.ETicketRecord, error)

// SubmitFunc satisfies an OTP challenge and returns the bookingId it
// protected.
type SubmitFunc func(ctx context.Context, verificationID, otp int) (int, error)

// TerminalFunc is the action a verified flow performs: display details
// for the view flow, a booking status change for the cancellation
// flow. It may return a fresh confirmation record, or nil when the
// action produces none.
type TerminalFunc func(ctx context.Context, flow *VerificationFlow) (*domain.ETicketRecord, error)

// VerificationFlow is the reusable two-phase identity check keyed by
// an eTicket code.
//
// Phase A (Lookup) asks the booking service for the record behind the
// key. The sole discriminator is the verificationId in the response: a
// non-zero value moves the flow to PENDING_OTP, an absent or zero
// value means verification was already satisfied and the flow
// short-circuits straight to VERIFIED. Phase B (SubmitOTP) satisfies
// the pending challenge. Failures report and keep the current stage;
// no failure state persists.
type VerificationFlow struct {
	id       string
	lookup   LookupFunc
	submit   SubmitFunc
	terminal TerminalFunc

	mu        sync.Mutex
	busy      bool
	stage     VerificationStage
	key       string
	verifyID  int
	bookingID int
	record    *domain.ETicketRecord
	completed bool
}

// NewVerificationFlow creates a flow over the given lookup and OTP
// endpoints with the given terminal action.
func NewVerificationFlow(lookup LookupFunc, submit SubmitFunc, terminal TerminalFunc) *VerificationFlow {
	return &VerificationFlow{
		id:       uuid.New().String(),
		lookup:   lookup,
		submit:   submit,
		terminal: terminal,
	}
}

// begin gates a submission: the flow must be in want and not already
// carrying an outstanding request.
func (f *VerificationFlow) begin(want VerificationStage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stage != want {
		if want == StagePendingOTP {
			return ErrOTPNotPending
		}
		return ErrInvalidStep
	}
	if f.busy {
		return ErrSubmissionInFlight
	}
	f.busy = true
	return nil
}

func (f *VerificationFlow) finish() {
	f.mu.Lock()
	f.busy = false
	f.mu.Unlock()
}

// Lookup runs phase A. It transitions UNVERIFIED to PENDING_OTP when
// the record carries a challenge, or directly to VERIFIED when the
// response shows verification already satisfied.
func (f *VerificationFlow) Lookup(ctx context.Context, key string) (VerificationStage, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return f.Stage(), ErrETicketRequired
	}
	if err := f.begin(StageUnverified); err != nil {
		return f.Stage(), err
	}
	defer f.finish()

	record, err := f.lookup(ctx, key)
	if err != nil {
		return f.Stage(), err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.key = key
	if record.Verified() {
		f.stage = StageVerified
		f.record = record
		f.bookingID = record.BookingID
	} else {
		f.stage = StagePendingOTP
		f.verifyID = record.VerificationID
	}
	return f.stage, nil
}

// SubmitOTP runs phase B against the challenge from phase A. Codes
// shorter than four digits are rejected before any request is issued.
func (f *VerificationFlow) SubmitOTP(ctx context.Context, otp string) (VerificationStage, error) {
	code, err := ValidateOTP(otp)
	if err != nil {
		return f.Stage(), err
	}
	if err := f.begin(StagePendingOTP); err != nil {
		return f.Stage(), err
	}
	defer f.finish()

	bookingID, err := f.submit(ctx, f.verifyID, code)
	if err != nil {
		return f.Stage(), err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.stage = StageVerified
	if bookingID != 0 {
		f.bookingID = bookingID
	}
	return f.stage, nil
}

// Complete performs the flow's terminal action. It requires VERIFIED
// and runs the action at most once; a failed action may be retried.
func (f *VerificationFlow) Complete(ctx context.Context) (*domain.ETicketRecord, error) {
	f.mu.Lock()
	if f.stage != StageVerified {
		f.mu.Unlock()
		return nil, ErrNotVerified
	}
	if f.completed {
		record := f.record
		f.mu.Unlock()
		return record, nil
	}
	if f.busy {
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	f.busy = true
	f.mu.Unlock()
	defer f.finish()

	if f.terminal == nil {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.completed = true
		return f.record, nil
	}

	record, err := f.terminal(ctx, f)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = true
	if record != nil {
		f.record = record
		if record.BookingID != 0 {
			f.bookingID = record.BookingID
		}
	}
	return f.record, nil
}

// ID returns the flow instance identifier.
func (f *VerificationFlow) ID() string { return f.id }

// Stage returns the current stage.
func (f *VerificationFlow) Stage() VerificationStage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage
}

// Key returns the eTicket code from phase A.
func (f *VerificationFlow) Key() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.key
}

// BookingID returns the business identifier the verification exposed,
// zero until known.
func (f *VerificationFlow) BookingID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bookingID
}

// Record returns the confirmation payload, nil until the flow has one.
func (f *VerificationFlow) Record() *domain.ETicketRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record
}
