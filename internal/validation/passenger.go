package validation

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dharmasatrya/flightbooking/internal/models"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// NormalizePassengers returns a trimmed copy of ps with an empty passenger
// type defaulted to adult.
func NormalizePassengers(ps []models.Passenger) []models.Passenger {
	out := make([]models.Passenger, len(ps))
	for i, p := range ps {
		p.Title = strings.TrimSpace(p.Title)
		p.FirstName = strings.TrimSpace(p.FirstName)
		p.LastName = strings.TrimSpace(p.LastName)
		p.DateOfBirth = strings.TrimSpace(p.DateOfBirth)
		p.Nationality = strings.TrimSpace(p.Nationality)
		p.PassportNumber = strings.TrimSpace(p.PassportNumber)
		p.PassportExpiry = strings.TrimSpace(p.PassportExpiry)
		if p.Type == "" {
			p.Type = models.PassengerAdult
		}
		p.SpecialRequests = slices.Clone(p.SpecialRequests)
		out[i] = p
	}
	return out
}

// Passengers validates the contact details and every passenger. Field names
// are "contact.email", "contact.phone" and "passengers[i].<field>".
func Passengers(contact models.ContactInfo, passengers []models.Passenger) *Result {
	r := &Result{}

	r.check("contact.email", strings.TrimSpace(contact.Email),
		validation.Required.Error("Email is required"),
		validation.Match(emailPattern).Error("Please enter a valid email address"),
	)
	r.check("contact.phone", strings.TrimSpace(contact.Phone),
		validation.Required.Error("Phone number is required"),
	)

	if len(passengers) == 0 {
		r.fail("passengers", "At least one passenger is required")
		return r
	}

	for i, p := range passengers {
		prefix := PassengerPrefix(i)
		r.check(prefix+"type", p.Type,
			validation.In(models.PassengerAdult, models.PassengerChild, models.PassengerInfant).
				Error("Passenger type must be adult, child or infant"),
		)
		r.check(prefix+"title", strings.TrimSpace(p.Title), validation.Required.Error("Title is required"))
		r.check(prefix+"first_name", strings.TrimSpace(p.FirstName), validation.Required.Error("First name is required"))
		r.check(prefix+"last_name", strings.TrimSpace(p.LastName), validation.Required.Error("Last name is required"))
		r.check(prefix+"date_of_birth", strings.TrimSpace(p.DateOfBirth), validation.Required.Error("Date of birth is required"))
		r.check(prefix+"nationality", strings.TrimSpace(p.Nationality), validation.Required.Error("Nationality is required"))
		r.check(prefix+"passport_number", strings.TrimSpace(p.PassportNumber), validation.Required.Error("Passport number is required"))
		r.check(prefix+"passport_expiry", strings.TrimSpace(p.PassportExpiry), validation.Required.Error("Passport expiry date is required"))
		r.check(prefix+"special_requests", p.SpecialRequests, validation.By(knownRequests))
	}

	return r
}

// PassengersFor validates like Passengers and also requires the list to
// match the passenger count of the search, when one is known.
func PassengersFor(criteria *models.SearchCriteria, contact models.ContactInfo, passengers []models.Passenger) *Result {
	r := Passengers(contact, passengers)
	if criteria == nil || criteria.Passengers <= 0 || len(passengers) == 0 {
		return r
	}
	if len(passengers) != criteria.Passengers {
		r.fail("passengers", fmt.Sprintf("Expected %d passengers, got %d", criteria.Passengers, len(passengers)))
	}
	return r
}

func PassengerPrefix(i int) string {
	return fmt.Sprintf("passengers[%d].", i)
}

func knownRequests(value any) error {
	requests, _ := value.([]string)
	for _, req := range requests {
		if !slices.Contains(models.KnownSpecialRequests, req) {
			return errors.New("Unknown special request: " + req)
		}
	}
	return nil
}
