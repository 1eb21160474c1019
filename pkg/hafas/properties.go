package hafas

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Only disruption (R), cancellation reason (P) and delay reason (D) notes reach riders.
// Accessibility (A) and internal (I) notes are dropped.
var riderNoteTypes = []string{"R", "P", "D"}

type Note struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Platform struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (e *Event) Destination() *string {
	return e.normalizer.clean(e.record.Direction)
}

func (e *Event) Origin() *string {
	return e.normalizer.clean(e.record.Origin)
}

func (e *Event) Stop() *string {
	return e.normalizer.clean(e.record.Stop)
}

// IgnoreDestination reports whether the board should hide this departure
func (e *Event) IgnoreDestination() bool {
	if e.normalizer.ignoreDestination == nil {
		return false
	}

	destination := e.Destination()
	if destination == nil || *destination == "" {
		return false
	}

	return e.normalizer.ignoreDestination.MatchString(*destination)
}

func (e *Event) Notes() []Note {
	notes := []Note{}

	if e.record.Notes == nil {
		return notes
	}

	for _, note := range e.record.Notes.Note {
		noteType := strings.ToUpper(note.Type)

		if slices.Contains(riderNoteTypes, noteType) {
			notes = append(notes, Note{
				Type: noteType,
				Text: note.Value,
			})
		}
	}

	return notes
}

// Platform prefers the realtime platform over the planned one and falls back to the track.
// A hidden platform yields nil.
func (e *Event) Platform() *Platform {
	platform := e.record.RtPlatform
	if platform == nil {
		platform = e.record.Platform
	}

	if platform != nil {
		if platform.Hidden {
			return nil
		}

		result := &Platform{Type: "X"}
		if platform.Type != nil {
			result.Type = *platform.Type
		}
		if platform.Text != nil {
			result.Value = *platform.Text
		}

		return result
	}

	if e.record.Track != nil {
		return &Platform{
			Type:  "PL",
			Value: *e.record.Track,
		}
	}

	return nil
}
