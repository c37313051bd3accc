package service

import "errors"

var (
	// ErrFirstNameRequired is returned when the first name is empty.
	ErrFirstNameRequired = errors.New("first name is required")

	// ErrLastNameRequired is returned when the last name is empty.
	ErrLastNameRequired = errors.New("last name is required")

	// ErrNICRequired is returned when the NIC is empty.
	ErrNICRequired = errors.New("nic is required")

	// ErrInvalidNIC is returned when the NIC matches neither the
	// 9-digit+letter nor the 12-digit form.
	ErrInvalidNIC = errors.New("invalid nic format")

	// ErrMobileRequired is returned when the mobile number is empty.
	ErrMobileRequired = errors.New("mobile number is required")

	// ErrInvalidMobile is returned when the mobile number is not +94
	// followed by exactly nine digits.
	ErrInvalidMobile = errors.New("mobile number must start with +94 and contain 12 digits")

	// ErrEmailRequired is returned when the email address is empty.
	ErrEmailRequired = errors.New("email is required")

	// ErrInvalidEmail is returned when the email address is malformed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidSeat is returned when the seat number is outside the
	// trip's capacity.
	ErrInvalidSeat = errors.New("select a valid seat")

	// ErrInvalidOTP is returned when the OTP is shorter than four
	// digits or not numeric.
	ErrInvalidOTP = errors.New("please enter a valid otp")

	// ErrETicketRequired is returned when an eTicket code is empty.
	ErrETicketRequired = errors.New("eticket is required")

	// ErrInvalidStep is returned when a submission does not match the
	// workflow's current step.
	ErrInvalidStep = errors.New("submission does not match current workflow step")

	// ErrSubmissionInFlight is returned when a step is resubmitted
	// while its request is still pending.
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// ErrWorkflowClosed is returned when a submission addresses a
	// workflow that was abandoned.
	ErrWorkflowClosed = errors.New("workflow closed")

	// ErrWorkflowNotFound is returned when a workflow instance ID is
	// unknown or expired.
	ErrWorkflowNotFound = errors.New("workflow not found")

	// ErrFlowNotFound is returned when a verification flow ID is
	// unknown or expired.
	ErrFlowNotFound = errors.New("verification flow not found")

	// ErrNotVerified is returned when a terminal action is requested
	// before the verification flow reached VERIFIED.
	ErrNotVerified = errors.New("verification not completed")

	// ErrOTPNotPending is returned when an OTP is submitted but no
	// challenge is pending.
	ErrOTPNotPending = errors.New("no otp challenge pending")

	// ErrMissingCredentials is returned when username or password is
	// empty at login.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrSessionNotFound is returned when a session ID does not
	// resolve to a stored session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrRedirectUnavailable is returned when payment initiation
	// succeeds but carries no redirect URL.
	ErrRedirectUnavailable = errors.New("redirect url is not available")
)
