package ctdf

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/liip/sheriff"
	"github.com/travigo/hafasboard/pkg/hafas"
)

type DepartureBoard struct {
	ID           string  `groups:"basic,detailed"`
	Symbol       string  `groups:"basic,detailed"`
	Category     string  `groups:"detailed"`
	CategoryIcon string  `groups:"basic,detailed"`
	Operator     *string `groups:"detailed"`
	OperatorName *string `groups:"detailed"`

	DestinationDisplay string                   `groups:"basic,detailed"`
	Origin             *string                  `groups:"detailed"`
	Stop               *string                  `groups:"detailed"`
	Type               DepartureBoardRecordType `groups:"basic,detailed"`
	TransportType      TransportType            `groups:"basic,detailed"`

	Platform     string `groups:"basic,detailed"`
	PlatformType string `groups:"basic,detailed"`

	ScheduledTime time.Time `groups:"basic,detailed"`
	Time          time.Time `groups:"basic,detailed"`
	Delay         *int      `groups:"basic,detailed"`
	Cancelled     bool      `groups:"basic,detailed"`

	Colours DepartureBoardColours `groups:"basic,detailed"`
	Notes   []DepartureBoardNote  `groups:"basic,detailed"`

	IgnoreDestination bool `groups:"detailed"`
	Duplicate         bool `groups:"detailed"`
}

type DepartureBoardRecordType string

const (
	DepartureBoardRecordTypeScheduled       DepartureBoardRecordType = "Scheduled"
	DepartureBoardRecordTypeRealtimeTracked DepartureBoardRecordType = "RealtimeTracked"
	DepartureBoardRecordTypeCancelled       DepartureBoardRecordType = "Cancelled"
)

type DepartureBoardColours struct {
	Background DepartureBoardColour `json:"background_colour" groups:"basic,detailed"`
	Font       DepartureBoardColour `json:"font_colour" groups:"basic,detailed"`
}

type DepartureBoardColour struct {
	R int `json:"r" groups:"basic,detailed"`
	G int `json:"g" groups:"basic,detailed"`
	B int `json:"b" groups:"basic,detailed"`
}

type DepartureBoardNote struct {
	Type string `json:"type" groups:"basic,detailed"`
	Text string `json:"text" groups:"basic,detailed"`
}

// NewDepartureBoard builds the display record of a normalized departure
func NewDepartureBoard(event *hafas.Event) (*DepartureBoard, error) {
	departure := &DepartureBoard{}

	if err := copier.Copy(departure, event); err != nil {
		return nil, fmt.Errorf("copy event %s: %w", event.ID, err)
	}

	departure.Origin = event.Origin()
	departure.Stop = event.Stop()
	departure.IgnoreDestination = event.IgnoreDestination()
	departure.TransportType = TransportTypeForIcon(event.CategoryIcon)
	departure.ScheduledTime = event.Scheduled
	departure.Time = event.Realtime

	if destination := event.Destination(); destination != nil {
		departure.DestinationDisplay = *destination
	}

	departure.Platform = ""
	departure.PlatformType = ""
	if platform := event.Platform(); platform != nil {
		departure.Platform = platform.Value
		departure.PlatformType = platform.Type
	}

	departure.Colours = DepartureBoardColours{}
	if err := copier.Copy(&departure.Colours, event.LineColour()); err != nil {
		return nil, fmt.Errorf("copy colours %s: %w", event.ID, err)
	}

	departure.Notes = []DepartureBoardNote{}
	if err := copier.Copy(&departure.Notes, event.Notes()); err != nil {
		return nil, fmt.Errorf("copy notes %s: %w", event.ID, err)
	}

	switch {
	case event.Cancelled:
		departure.Type = DepartureBoardRecordTypeCancelled
	case event.Delay != nil:
		departure.Type = DepartureBoardRecordTypeRealtimeTracked
	default:
		departure.Type = DepartureBoardRecordTypeScheduled
	}

	return departure, nil
}

// Reduce applies the sheriff groups (basic, detailed) to the records for output
func Reduce(departures []*DepartureBoard, groups ...string) (interface{}, error) {
	return reduce(departures, groups)
}

// ReduceDeparture is Reduce for a single record
func ReduceDeparture(departure *DepartureBoard, groups ...string) (interface{}, error) {
	return reduce(departure, groups)
}

func reduce(data interface{}, groups []string) (interface{}, error) {
	if len(groups) == 0 {
		groups = []string{"basic"}
	}

	return sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, data)
}
