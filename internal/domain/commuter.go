package domain

// Name is a person's name as the backend services model it.
type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Address is a postal address used by operator and worker records.
type Address struct {
	No       string `json:"no"`
	Street   string `json:"street"`
	City     string `json:"city"`
	District string `json:"district"`
	Province string `json:"province"`
}

// Contact holds the contact channels for a person.
type Contact struct {
	Mobile  string  `json:"mobile"`
	Email   string  `json:"email"`
	Address Address `json:"address,omitempty"`
}

// Commuter is the identity record created once per reservation attempt.
// Immutable within a workflow run once the booking service has issued its ID.
type Commuter struct {
	CommuterID int     `json:"commuterId,omitempty"`
	Name       Name    `json:"name"`
	NIC        string  `json:"nic"`
	Contact    Contact `json:"contact"`
}
