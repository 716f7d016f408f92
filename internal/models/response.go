package models

type SearchMetadata struct {
	TotalResults int      `json:"total_results"`
	TotalOffers  int      `json:"total_offers"`
	Carriers     []string `json:"carriers,omitempty"`
	SearchTimeMs int64    `json:"search_time_ms"`
	CacheHit     bool     `json:"cache_hit"`
}

type SearchResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Filters        ResultFilters  `json:"filters"`
	Metadata       SearchMetadata `json:"metadata"`
	Flights        []FlightOffer  `json:"flights"`
}

type RoundTripResponse struct {
	SearchCriteria  SearchCriteria `json:"search_criteria"`
	Filters         ResultFilters  `json:"filters"`
	Metadata        SearchMetadata `json:"metadata"`
	OutboundFlights []FlightOffer  `json:"outbound_flights"`
	ReturnFlights   []FlightOffer  `json:"return_flights"`
}

type SelectFlightResponse struct {
	Outbound   *FlightOffer `json:"outbound"`
	Return     *FlightOffer `json:"return,omitempty"`
	Passengers []Passenger  `json:"passengers"`
	Next       string       `json:"next"`
}

type StepResponse struct {
	Next string `json:"next"`
}

type QuoteResponse struct {
	Price          PriceBreakdown `json:"price"`
	PassengerCount int            `json:"passenger_count"`
	Formatted      FormattedPrice `json:"formatted"`
}

type FormattedPrice struct {
	Subtotal string `json:"subtotal"`
	Taxes    string `json:"taxes"`
	Total    string `json:"total"`
}

type ConfirmationResponse struct {
	Booking       BookingRecord  `json:"booking"`
	Formatted     FormattedPrice `json:"formatted"`
	DepartureDate string         `json:"departure_date"`
	DepartureTime string         `json:"departure_time"`
	ArrivalTime   string         `json:"arrival_time"`
	Duration      string         `json:"duration"`
}

type BookingLookupResponse struct {
	Bookings []BookingRecord `json:"bookings"`
	Total    int             `json:"total"`
}

type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
