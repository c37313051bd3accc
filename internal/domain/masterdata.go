package domain

// Coordinates is a station's position. The backend spells longitude "log".
type Coordinates struct {
	Lat float64 `json:"lat"`
	Log float64 `json:"log"`
}

// Station is a boarding or alighting point on the network.
type Station struct {
	StationID   int         `json:"stationId"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

// Route is a named connection between two stations.
type Route struct {
	RouteID        int     `json:"routeId"`
	RouteNumber    string  `json:"routeNumber"`
	RouteName      string  `json:"routeName"`
	StartLocation  Station `json:"startLocation,omitempty"`
	EndLocation    Station `json:"endLocation,omitempty"`
	TravelDistance string  `json:"travelDistance,omitempty"`
	TravelDuration string  `json:"travelDuration,omitempty"`
}

// VehicleStatus represents whether a vehicle is cleared for service.
type VehicleStatus string

const (
	VehicleStatusActive   VehicleStatus = "ACTIVE"
	VehicleStatusInactive VehicleStatus = "INACTIVE"
)

// Vehicle is a bus registered by an operator.
type Vehicle struct {
	VehicleID          int           `json:"vehicleId"`
	RegistrationNumber string        `json:"registrationNumber"`
	Model              string        `json:"model"`
	Type               string        `json:"type"`
	Capacity           int           `json:"capacity"`
	PricePerSeat       float64       `json:"pricePerSeat"`
	Status             VehicleStatus `json:"status,omitempty"`
	BusOperator        *BusOperator  `json:"busOperator,omitempty"`
	CancellationPolicy *Policy       `json:"cancellationPolicy,omitempty"`
	BookingClose       int           `json:"bookingClose,omitempty"`
	AirCondition       bool          `json:"airCondition"`
	AdjustableSeats    bool          `json:"adjustableSeats"`
	ChargingCapability bool          `json:"chargingCapability"`
	RestStops          bool          `json:"restStops"`
	Movie              bool          `json:"movie"`
	Music              bool          `json:"music"`
	CupHolder          bool          `json:"cupHolder"`
	EmergencyExit      bool          `json:"emergencyExit"`
}

// BusOperator is a company that runs vehicles on permits.
type BusOperator struct {
	OperatorID int     `json:"operatorId"`
	Name       Name    `json:"name"`
	Company    string  `json:"company"`
	Contact    Contact `json:"contact"`
}

// BusWorker is a driver or conductor employed by an operator.
type BusWorker struct {
	WorkerID int     `json:"workerId"`
	Name     Name    `json:"name"`
	NIC      string  `json:"nic"`
	Type     string  `json:"type"`
	Contact  Contact `json:"contact"`
}

// Policy is a cancellation or service policy attached to vehicles.
type Policy struct {
	PolicyID    int    `json:"policyId"`
	PolicyName  string `json:"policyName"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Permit authorizes a vehicle to serve a route.
type Permit struct {
	PermitID     int          `json:"permitId"`
	PermitNumber string       `json:"permitNumber"`
	IssueDate    string       `json:"issueDate"`
	ExpiryDate   string       `json:"expiryDate"`
	Route        *Route       `json:"route,omitempty"`
	Vehicle      *Vehicle     `json:"vehicle,omitempty"`
	BusOperator  *BusOperator `json:"busOperator,omitempty"`
}

// Schedule is a recurring departure/arrival slot on a permit.
type Schedule struct {
	ScheduleID    int     `json:"scheduleId"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	StartLocation Station `json:"startLocation,omitempty"`
	EndLocation   Station `json:"endLocation,omitempty"`
	Route         *Route  `json:"route,omitempty"`
	Permit        *Permit `json:"permit,omitempty"`
}
