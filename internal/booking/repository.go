package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dharmasatrya/flightbooking/internal/catalog/data"
	"github.com/dharmasatrya/flightbooking/internal/models"
)

// Query filters stored bookings. Both fields are case-insensitive substring
// matches; an empty field matches everything.
type Query struct {
	Reference string
	LastName  string
}

func (q Query) matches(rec models.BookingRecord) bool {
	if q.Reference != "" && !containsFold(rec.Reference, q.Reference) {
		return false
	}
	if q.LastName == "" {
		return true
	}
	for _, p := range rec.Passengers {
		if containsFold(p.LastName, q.LastName) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

type Repository interface {
	Save(ctx context.Context, rec models.BookingRecord) error
	Find(ctx context.Context, q Query) ([]models.BookingRecord, error)
}

// OfferLookup resolves offer IDs referenced by seed bookings.
type OfferLookup interface {
	Lookup(id string) (models.FlightOffer, bool)
}

type MemoryRepository struct {
	mu      sync.RWMutex
	records []models.BookingRecord
}

func NewMemoryRepository(seed ...models.BookingRecord) *MemoryRepository {
	return &MemoryRepository{records: append([]models.BookingRecord(nil), seed...)}
}

// NewSeededRepository starts from the embedded sample bookings.
func NewSeededRepository(offers OfferLookup) (*MemoryRepository, error) {
	seed, err := LoadRecords(data.Bookings, offers)
	if err != nil {
		return nil, err
	}
	return NewMemoryRepository(seed...), nil
}

func (r *MemoryRepository) Save(ctx context.Context, rec models.BookingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	return nil
}

// Find returns matching bookings in insertion order.
func (r *MemoryRepository) Find(ctx context.Context, q Query) ([]models.BookingRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q.Reference = strings.TrimSpace(q.Reference)
	q.LastName = strings.TrimSpace(q.LastName)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.BookingRecord, 0)
	for _, rec := range r.records {
		if q.matches(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type seedFile struct {
	Bookings []seedBooking `json:"bookings"`
}

type seedBooking struct {
	Reference       string                `json:"reference"`
	CreatedAt       time.Time             `json:"created_at"`
	OutboundOfferID string                `json:"outbound_offer_id"`
	ReturnOfferID   string                `json:"return_offer_id"`
	Passengers      []models.Passenger    `json:"passengers"`
	Contact         models.ContactInfo    `json:"contact"`
	Price           models.PriceBreakdown `json:"price"`
	PaymentMethod   string                `json:"payment_method"`
	Status          models.BookingStatus  `json:"status"`
}

// LoadRecords decodes stored bookings and attaches their flight offers.
func LoadRecords(raw []byte, offers OfferLookup) ([]models.BookingRecord, error) {
	var file seedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	records := make([]models.BookingRecord, 0, len(file.Bookings))
	for _, sb := range file.Bookings {
		outbound, ok := offers.Lookup(sb.OutboundOfferID)
		if !ok {
			return nil, fmt.Errorf("booking %s: unknown outbound offer %q", sb.Reference, sb.OutboundOfferID)
		}
		rec := models.BookingRecord{
			Reference:     sb.Reference,
			CreatedAt:     sb.CreatedAt,
			Outbound:      outbound,
			Passengers:    sb.Passengers,
			Contact:       sb.Contact,
			Price:         sb.Price,
			PaymentMethod: sb.PaymentMethod,
			Status:        sb.Status,
		}
		if sb.ReturnOfferID != "" {
			ret, ok := offers.Lookup(sb.ReturnOfferID)
			if !ok {
				return nil, fmt.Errorf("booking %s: unknown return offer %q", sb.Reference, sb.ReturnOfferID)
			}
			rec.Return = &ret
		}
		records = append(records, rec)
	}
	return records, nil
}
