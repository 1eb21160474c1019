package hafas

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/travigo/hafasboard/pkg/config"
	"github.com/travigo/hafasboard/pkg/transforms"
)

var (
	InvalidRecordError    = errors.New("Departure record is invalid")
	InvalidTimestampError = errors.New("Departure timestamp is invalid")
)

const timestampLayout = "2006-01-02 15:04:05"

// NoCategory is the category of a departure without a usable product
const NoCategory = "-1"

type Normalizer struct {
	provider string
	tables   *transforms.Tables
	location *time.Location

	labelRules        []transforms.LabelRule
	removePatterns    []*regexp.Regexp
	ignoreDestination *regexp.Regexp

	validate *validator.Validate
}

func NewNormalizer(settings config.Settings, tables *transforms.Tables) (*Normalizer, error) {
	if tables == nil {
		tables = transforms.NewTables()
	}

	location, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", settings.Timezone, err)
	}

	n := &Normalizer{
		provider:   settings.APIProvider,
		tables:     tables,
		location:   location,
		labelRules: tables.Rules(settings.APIProvider),
		validate:   validator.New(),
	}

	if remove := strings.TrimSpace(settings.RemoveString); remove != "" {
		quoted := regexp.QuoteMeta(remove)

		// Tried in order, only the first matching form is stripped
		for _, pattern := range []string{
			`(?i)^(` + quoted + `[, -]+)`,
			`(?i)( *\(` + quoted + `\))`,
			`(?i)(` + quoted + ` +)`,
		} {
			n.removePatterns = append(n.removePatterns, regexp.MustCompile(pattern))
		}
	}

	if settings.IgnoreDestination != "" {
		n.ignoreDestination, err = regexp.Compile("(?i)" + settings.IgnoreDestination)
		if err != nil {
			return nil, fmt.Errorf("ignore_destination: %w", err)
		}
	}

	log.Debug().
		Str("provider", n.provider).
		Str("timezone", location.String()).
		Int("labelrules", len(n.labelRules)).
		Msg("Created departure normalizer")

	return n, nil
}

// ParseEvent decodes one JSON departure record and normalizes it
func (n *Normalizer) ParseEvent(data []byte) (*Event, error) {
	var record Departure
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", InvalidRecordError, err)
	}

	return n.NewEvent(&record)
}

// timestamp attaches a fixed offset (minutes east of UTC) when the record carries one,
// the configured zone otherwise
func (n *Normalizer) timestamp(date string, clock string, offset *int) (time.Time, error) {
	wall, err := time.Parse(timestampLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", InvalidTimestampError, date+" "+clock, err)
	}

	if offset != nil {
		return time.Date(
			wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, time.FixedZone("", *offset*60),
		), nil
	}

	return localize(wall, n.location), nil
}

// localize places a wall clock time in loc. A wall time that occurs twice when the clocks
// go back resolves to the instant with the smaller UTC offset, the standard time.
func localize(wall time.Time, loc *time.Location) time.Time {
	local := time.Date(
		wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, loc,
	)

	// IsDST is unreliable here, tzdata marks Irish winter time as daylight saving
	best := local
	_, bestOffset := local.Zone()

	for _, probe := range []time.Time{local.Add(-24 * time.Hour), local.Add(24 * time.Hour)} {
		_, offset := probe.Zone()
		if offset >= bestOffset {
			continue
		}

		candidate := local.Add(time.Duration(bestOffset-offset) * time.Second)
		if _, candidateOffset := candidate.Zone(); candidateOffset == offset && sameWallClock(candidate, local) {
			best, bestOffset = candidate, offset
		}
	}

	return best
}

func sameWallClock(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd &&
		a.Hour() == b.Hour() && a.Minute() == b.Minute() && a.Second() == b.Second()
}

// clean trims a place name and strips the configured remove string from it
func (n *Normalizer) clean(value *string) *string {
	if value == nil {
		return nil
	}

	cleaned := strings.TrimSpace(*value)

	for _, pattern := range n.removePatterns {
		if pattern.MatchString(cleaned) {
			cleaned = strings.TrimSpace(pattern.ReplaceAllString(cleaned, ""))
			break
		}
	}

	return &cleaned
}
