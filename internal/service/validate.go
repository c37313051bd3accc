package service

import (
	"regexp"
	"strconv"
	"strings"

	"busriya/internal/domain"
)

var (
	// nicPattern accepts the old 9-digit+letter NIC form and the new
	// 12-digit form, nothing else.
	nicPattern = regexp.MustCompile(`^[0-9]{9}[vVxX]$|^[0-9]{12}$`)

	// mobilePattern accepts +94 followed by exactly nine digits.
	mobilePattern = regexp.MustCompile(`^\+94[0-9]{9}$`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidateCommuter checks the commuter fields required before a
// commuter record may be created. The first failing field decides the
// error so the message can name it.
func ValidateCommuter(c *domain.Commuter) error {
	if strings.TrimSpace(c.Name.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(c.Name.LastName) == "" {
		return ErrLastNameRequired
	}

	nic := strings.TrimSpace(c.NIC)
	if nic == "" {
		return ErrNICRequired
	}
	if !nicPattern.MatchString(nic) {
		return ErrInvalidNIC
	}

	mobile := strings.TrimSpace(c.Contact.Mobile)
	if mobile == "" {
		return ErrMobileRequired
	}
	if !mobilePattern.MatchString(mobile) {
		return ErrInvalidMobile
	}

	email := strings.TrimSpace(c.Contact.Email)
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidateSeat checks that the seat number lies within the trip's
// capacity: accepted iff 1 <= seat <= capacity.
func ValidateSeat(seat, capacity int) error {
	if seat <= 0 || seat > capacity {
		return ErrInvalidSeat
	}
	return nil
}

// ValidateOTP checks the one-time password before any network call is
// issued: at least four digits, numeric. Returns the numeric code.
func ValidateOTP(otp string) (int, error) {
	if len(otp) < 4 {
		return 0, ErrInvalidOTP
	}
	code, err := strconv.Atoi(otp)
	if err != nil || code < 0 {
		return 0, ErrInvalidOTP
	}
	return code, nil
}
