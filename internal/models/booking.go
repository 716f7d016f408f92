package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPayPal     PaymentMethod = "paypal"
	PaymentApplePay   PaymentMethod = "apple_pay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentPayPal, PaymentApplePay:
		return true
	}
	return false
}

// PaymentDetails is the payment-step submission. Card fields are only
// meaningful for PaymentCreditCard.
type PaymentDetails struct {
	Method         PaymentMethod `json:"method"`
	CardNumber     string        `json:"card_number,omitempty"`
	CardholderName string        `json:"cardholder_name,omitempty"`
	Expiry         string        `json:"expiry,omitempty"`
	CVV            string        `json:"cvv,omitempty"`
}

type PriceBreakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Taxes    decimal.Decimal `json:"taxes"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

type BookingRecord struct {
	Reference     string         `json:"reference"`
	CreatedAt     time.Time      `json:"created_at"`
	Outbound      FlightOffer    `json:"outbound"`
	Return        *FlightOffer   `json:"return,omitempty"`
	Passengers    []Passenger    `json:"passengers"`
	Contact       ContactInfo    `json:"contact"`
	Price         PriceBreakdown `json:"price"`
	PaymentMethod string         `json:"payment_method"`
	Status        BookingStatus  `json:"status"`
}
