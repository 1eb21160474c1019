package hafas

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Event is a normalized departure. Apart from Duplicate and Follow it is not modified
// after construction.
type Event struct {
	ID        string
	Cancelled bool

	Category     string
	CategoryIcon string
	Symbol       string
	Operator     *string
	OperatorName *string
	Icon         *Icon

	Scheduled time.Time
	Realtime  time.Time
	// Delay in minutes, nil when the record has no realtime data
	Delay *int

	// Duplicate and Follow are owned by the caller's de-duplication pass
	Duplicate bool
	Follow    *Event

	record     *Departure
	normalizer *Normalizer
}

// NewEvent normalizes a decoded departure record. A record without a journey
// reference, date or time, or with an unparseable timestamp is rejected.
func (n *Normalizer) NewEvent(record *Departure) (*Event, error) {
	if record == nil {
		return nil, InvalidRecordError
	}
	if err := n.validate.Struct(record); err != nil {
		return nil, fmt.Errorf("%w: %w", InvalidRecordError, err)
	}

	event := &Event{
		ID:        record.JourneyDetailRef.Ref,
		Cancelled: record.Cancelled,
		Category:  NoCategory,

		record:     record,
		normalizer: n,
	}

	event.selectProduct()
	event.CategoryIcon = n.tables.CategoryIcon(n.provider, event.Category)

	var err error
	event.Scheduled, err = n.timestamp(record.Date, record.Time, record.Tz)
	if err != nil {
		return nil, err
	}

	if record.RtDate != nil && record.RtTime != nil {
		event.Realtime, err = n.timestamp(*record.RtDate, *record.RtTime, record.RtTz)
		if err != nil {
			return nil, err
		}

		delay := int(math.RoundToEven(event.Realtime.Sub(event.Scheduled).Seconds() / 60))
		event.Delay = &delay
	} else {
		event.Realtime = event.Scheduled
	}

	return event, nil
}

// selectProduct takes the line details from the first product with both a name and a category
func (e *Event) selectProduct() {
	for _, product := range e.record.Products {
		if product.Name == "" || product.CatCode == "" {
			continue
		}

		e.Category = string(product.CatCode)
		e.Operator = product.OperatorCode
		e.Icon = product.Icon
		if product.OperatorInfo != nil {
			e.OperatorName = product.OperatorInfo.Name
		}

		symbol := product.Name
		for _, rule := range e.normalizer.labelRules {
			symbol = rule.Apply(symbol)
		}
		e.Symbol = symbol

		return
	}

	log.Debug().Str("id", e.ID).Msg("Departure has no product with a name and category")
}

// Compare orders events by realtime departure
func (e *Event) Compare(other *Event) int {
	if other == nil {
		panic("hafas: comparing Event against nil")
	}

	return e.Realtime.Compare(other.Realtime)
}

func (e *Event) Less(other *Event) bool {
	return e.Compare(other) < 0
}

// SortByRealtime sorts events by ascending realtime departure, keeping the input order of ties
func SortByRealtime(events []*Event) {
	slices.SortStableFunc(events, func(a *Event, b *Event) int {
		return a.Compare(b)
	})
}
