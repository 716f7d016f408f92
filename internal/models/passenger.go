package models

type PassengerType string

const (
	PassengerAdult  PassengerType = "adult"
	PassengerChild  PassengerType = "child"
	PassengerInfant PassengerType = "infant"
)

const (
	RequestWheelchair     = "wheelchair"
	RequestVegetarian     = "vegetarian"
	RequestExtraLegroom   = "extra_legroom"
	RequestInfantBassinet = "infant"
	RequestMedical        = "medical"
)

// KnownSpecialRequests lists the special-request tags a passenger may carry.
var KnownSpecialRequests = []string{
	RequestWheelchair,
	RequestVegetarian,
	RequestExtraLegroom,
	RequestInfantBassinet,
	RequestMedical,
}

type Passenger struct {
	ID              string        `json:"id"`
	Type            PassengerType `json:"type"`
	Title           string        `json:"title"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	DateOfBirth     string        `json:"date_of_birth"`
	Nationality     string        `json:"nationality"`
	PassportNumber  string        `json:"passport_number"`
	PassportExpiry  string        `json:"passport_expiry"`
	Seat            string        `json:"seat,omitempty"`
	SpecialRequests []string      `json:"special_requests,omitempty"`
}

func (p Passenger) FullName() string {
	if p.Title != "" {
		return p.Title + " " + p.FirstName + " " + p.LastName
	}
	return p.FirstName + " " + p.LastName
}

type ContactInfo struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}
