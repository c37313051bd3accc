package domain

// ParcelStatus represents the handling status of a lost parcel report.
type ParcelStatus string

const (
	ParcelStatusReported ParcelStatus = "REPORTED"
	ParcelStatusFound    ParcelStatus = "FOUND"
	ParcelStatusReturned ParcelStatus = "RETURNED"
	ParcelStatusClosed   ParcelStatus = "CLOSED"
)

// LostParcel is a commuter's report of an item left on a bus, keyed to
// the journey by the booking's eTicket.
type LostParcel struct {
	ParcelID    int          `json:"parcelId,omitempty"`
	ReferenceID string       `json:"referenceId,omitempty"`
	ETicket     string       `json:"eTicket,omitempty"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Description string       `json:"description,omitempty"`
	Status      ParcelStatus `json:"status,omitempty"`
	Commuter    *Commuter    `json:"commuter,omitempty"`
}
