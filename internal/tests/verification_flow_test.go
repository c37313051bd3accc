package tests

import (
	"context"
	"errors"
	"testing"

	"busriya/internal/domain"
	"busriya/internal/service"
)

// ──────────────────────────────────────────────
// 5. ETICKET VERIFICATION FLOWS
// ──────────────────────────────────────────────

func verifiedRecord() *domain.ETicketRecord {
	return &domain.ETicketRecord{
		BookingID:     501,
		SeatNumber:    5,
		BookingStatus: domain.BookingStatusPaid,
	}
}

func pendingRecord() *domain.ETicketRecord {
	return &domain.ETicketRecord{VerificationID: 77}
}

func TestViewFlow_ShortCircuitsWhenAlreadyVerified(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.Record = verifiedRecord()
	flow := service.NewBookingService(bookings).NewViewFlow()

	stage, err := flow.Lookup(context.Background(), "ET-1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != service.StageVerified {
		t.Fatalf("expected VERIFIED without an otp round, got %s", stage)
	}

	record, err := flow.Complete(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.BookingID != 501 {
		t.Errorf("expected bookingId 501 in the released record, got %d", record.BookingID)
	}

	// The short-circuit path reuses the lookup payload.
	if bookings.LookupCalls != 1 {
		t.Errorf("expected a single lookup, got %d", bookings.LookupCalls)
	}
	if bookings.SubmitOTPCalls != 0 {
		t.Errorf("expected no otp request, got %d", bookings.SubmitOTPCalls)
	}
}

func TestViewFlow_PendingChallengeRequiresOTP(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.Records = []*domain.ETicketRecord{pendingRecord(), verifiedRecord()}
	bookings.BookingID = 501
	flow := service.NewBookingService(bookings).NewViewFlow()

	stage, err := flow.Lookup(context.Background(), "ET-1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != service.StagePendingOTP {
		t.Fatalf("expected PENDING_OTP, got %s", stage)
	}

	// Details are withheld until the challenge is satisfied.
	if _, err := flow.Complete(context.Background()); !errors.Is(err, service.ErrNotVerified) {
		t.Fatalf("expected ErrNotVerified before otp, got %v", err)
	}

	stage, err = flow.SubmitOTP(context.Background(), "4321")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != service.StageVerified {
		t.Fatalf("expected VERIFIED after otp, got %s", stage)
	}
	if bookings.LastOTP != 4321 {
		t.Errorf("expected otp 4321 sent as number, got %d", bookings.LastOTP)
	}

	record, err := flow.Complete(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record == nil || record.BookingID != 501 {
		t.Fatalf("expected refetched record with bookingId 501, got %+v", record)
	}
	if bookings.LookupCalls != 2 {
		t.Errorf("expected a second lookup for the released details, got %d", bookings.LookupCalls)
	}
}

func TestVerificationFlow_EmptyKeyRejectedLocally(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	flow := service.NewBookingService(bookings).NewViewFlow()

	if _, err := flow.Lookup(context.Background(), "   "); !errors.Is(err, service.ErrETicketRequired) {
		t.Fatalf("expected ErrETicketRequired, got %v", err)
	}
	if bookings.LookupCalls != 0 {
		t.Errorf("expected no lookup request, got %d", bookings.LookupCalls)
	}
}

func TestVerificationFlow_LookupFailureKeepsStage(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.LookupError = errors.New("booking service unavailable")
	flow := service.NewBookingService(bookings).NewViewFlow()

	if _, err := flow.Lookup(context.Background(), "ET-1234"); err == nil {
		t.Fatal("expected lookup to fail")
	}
	if flow.Stage() != service.StageUnverified {
		t.Errorf("expected stage to stay UNVERIFIED, got %s", flow.Stage())
	}

	// The commuter may retry the lookup.
	bookings.LookupError = nil
	bookings.Record = verifiedRecord()
	if _, err := flow.Lookup(context.Background(), "ET-1234"); err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
}

func TestVerificationFlow_OTPWithoutChallengeRejected(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	flow := service.NewBookingService(bookings).NewViewFlow()

	if _, err := flow.SubmitOTP(context.Background(), "1234"); !errors.Is(err, service.ErrOTPNotPending) {
		t.Fatalf("expected ErrOTPNotPending, got %v", err)
	}
	if bookings.SubmitOTPCalls != 0 {
		t.Errorf("expected no otp request, got %d", bookings.SubmitOTPCalls)
	}
}

func TestVerificationFlow_ShortOTPRejectedLocally(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.Record = pendingRecord()
	flow := service.NewBookingService(bookings).NewViewFlow()

	if _, err := flow.Lookup(context.Background(), "ET-1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := flow.SubmitOTP(context.Background(), "99"); !errors.Is(err, service.ErrInvalidOTP) {
		t.Fatalf("expected ErrInvalidOTP, got %v", err)
	}
	if bookings.SubmitOTPCalls != 0 {
		t.Errorf("expected no otp request, got %d", bookings.SubmitOTPCalls)
	}
}

// ──────────────────────────────────────────────
// 6. CANCELLATION FLOW
// ──────────────────────────────────────────────

func TestCancelFlow_ConfirmPatchesBookingCancelled(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.Record = verifiedRecord()
	flow := service.NewBookingService(bookings).NewCancelFlow()

	stage, err := flow.Lookup(context.Background(), "ET-1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != service.StageVerified {
		t.Fatalf("expected VERIFIED, got %s", stage)
	}

	// Verification alone must not cancel anything.
	if bookings.UpdateBookingStatusCalls != 0 {
		t.Fatalf("expected no status patch before confirmation, got %d", bookings.UpdateBookingStatusCalls)
	}

	if _, err := flow.Complete(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookings.UpdateBookingStatusCalls != 1 {
		t.Fatalf("expected one status patch, got %d", bookings.UpdateBookingStatusCalls)
	}
	if bookings.LastStatusID != 501 {
		t.Errorf("expected patch on bookingId 501, got %d", bookings.LastStatusID)
	}
	if bookings.LastBookingStatus != domain.BookingStatusCancelled {
		t.Errorf("expected CANCELLED, got %s", bookings.LastBookingStatus)
	}
}

func TestCancelFlow_ConfirmIsIdempotent(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.Record = verifiedRecord()
	flow := service.NewBookingService(bookings).NewCancelFlow()

	if _, err := flow.Lookup(context.Background(), "ET-1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := flow.Complete(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := flow.Complete(context.Background()); err != nil {
		t.Fatalf("unexpected error on repeat confirm: %v", err)
	}
	if bookings.UpdateBookingStatusCalls != 1 {
		t.Errorf("expected a single status patch, got %d", bookings.UpdateBookingStatusCalls)
	}
}

func TestCancelFlow_FailedConfirmMayBeRetried(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.Record = verifiedRecord()
	bookings.UpdateBookingStatusError = errors.New("booking service unavailable")
	flow := service.NewBookingService(bookings).NewCancelFlow()

	if _, err := flow.Lookup(context.Background(), "ET-1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := flow.Complete(context.Background()); err == nil {
		t.Fatal("expected confirm to fail")
	}

	bookings.UpdateBookingStatusError = nil
	if _, err := flow.Complete(context.Background()); err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if bookings.LastBookingStatus != domain.BookingStatusCancelled {
		t.Errorf("expected CANCELLED after retry, got %s", bookings.LastBookingStatus)
	}
}

// ──────────────────────────────────────────────
// 7. TICKET SCAN AND LOST PARCELS
// ──────────────────────────────────────────────

func TestScanTicket_MarksTicketUsed(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	svc := service.NewBookingService(bookings)

	if err := svc.ScanTicket(context.Background(), "ET-1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bookings.UpdateTicketStatusCalls != 1 {
		t.Errorf("expected one ticket patch, got %d", bookings.UpdateTicketStatusCalls)
	}
	if bookings.LastTicketStatus != domain.TicketStatusUsed {
		t.Errorf("expected USED, got %s", bookings.LastTicketStatus)
	}
}

func TestScanTicket_EmptyCodeRejected(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	svc := service.NewBookingService(bookings)

	if err := svc.ScanTicket(context.Background(), " "); !errors.Is(err, service.ErrETicketRequired) {
		t.Fatalf("expected ErrETicketRequired, got %v", err)
	}
	if bookings.UpdateTicketStatusCalls != 0 {
		t.Errorf("expected no ticket patch, got %d", bookings.UpdateTicketStatusCalls)
	}
}

func TestReportLostParcel_ReturnsReference(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.ReferenceID = "LP-2026-0017"
	svc := service.NewBookingService(bookings)

	referenceID, err := svc.ReportLostParcel(context.Background(), &domain.LostParcel{
		ETicket:     "ET-1234",
		Description: "Blue backpack under seat 5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if referenceID != "LP-2026-0017" {
		t.Errorf("unexpected reference %q", referenceID)
	}
	if bookings.LastParcel == nil || bookings.LastParcel.ETicket != "ET-1234" {
		t.Errorf("expected parcel forwarded to the booking service, got %+v", bookings.LastParcel)
	}
}

func TestReportLostParcel_RequiresETicket(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	svc := service.NewBookingService(bookings)

	if _, err := svc.ReportLostParcel(context.Background(), &domain.LostParcel{}); !errors.Is(err, service.ErrETicketRequired) {
		t.Fatalf("expected ErrETicketRequired, got %v", err)
	}
	if bookings.CreateLostParcelCalls != 0 {
		t.Errorf("expected no parcel request, got %d", bookings.CreateLostParcelCalls)
	}
}
