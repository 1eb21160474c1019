package hafas

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/travigo/hafasboard/pkg/transforms"
	"github.com/travigo/hafasboard/pkg/util"
)

// LineColour resolves the line colours from the mapping tables, then from the icon
// colours of the record and finally from a hash of the raw line name.
func (e *Event) LineColour() transforms.LineColour {
	if colour, ok := e.normalizer.tables.Colour(e.normalizer.provider, stringValue(e.Operator), e.Symbol); ok {
		return colour
	}

	if colour, ok := e.iconColour(); ok {
		return colour
	}

	return hashedLineColour(stringValue(e.record.Name))
}

func (e *Event) iconColour() (transforms.LineColour, bool) {
	if e.Icon == nil || e.Icon.BackgroundColor == nil || e.Icon.ForegroundColor == nil {
		return transforms.LineColour{}, false
	}

	background, err := util.Hex2RGB(e.Icon.BackgroundColor.Hex)
	if err != nil {
		return transforms.LineColour{}, false
	}
	font, err := util.Hex2RGB(e.Icon.ForegroundColor.Hex)
	if err != nil {
		return transforms.LineColour{}, false
	}

	return transforms.LineColour{Background: background, Font: font}, true
}

// hashedLineColour derives a stable colour from the line name. The font colour keeps the
// historic 0 or 1 per component instead of 0-255.
func hashedLineColour(name string) transforms.LineColour {
	sum := md5.Sum([]byte(name))
	digest := hex.EncodeToString(sum[:])

	// a hex encoded digest always parses
	background, _ := util.Hex2RGB(digest[:6])

	_, _, value := util.RGB2HSV(background.R, background.G, background.B)

	font := util.RGB{R: 1, G: 1, B: 1}
	if value > 0.75 {
		font = util.RGB{R: 0, G: 0, B: 0}
	}

	return transforms.LineColour{
		Background: background,
		Font:       font,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
