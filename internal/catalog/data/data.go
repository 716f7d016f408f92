// Package data embeds the static flight and booking fixtures.
package data

import _ "embed"

//go:embed flights.json
var Flights []byte

//go:embed bookings.json
var Bookings []byte
