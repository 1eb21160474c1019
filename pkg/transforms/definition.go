package transforms

import (
	"fmt"
	"regexp"

	"github.com/travigo/hafasboard/pkg/util"
)

type DefinitionType string

const (
	DefinitionTypeCategoryIcon DefinitionType = "category-icon"
	DefinitionTypeLabelRule    DefinitionType = "label-rule"
	DefinitionTypeColour       DefinitionType = "colour"
)

// TransformDefinition is a single entry of a mapping file.
// Match selects what the entry applies to and Data is what it provides, e.g.
//
//	Type: colour
//	Provider: vbb
//	Match:
//	  Symbol: U4
//	Data:
//	  Background: "#F0D722"
//	  Font: "#000000"
type TransformDefinition struct {
	Type     DefinitionType    `yaml:"Type"`
	Provider string            `yaml:"Provider"`
	Match    map[string]string `yaml:"Match"`
	Data     map[string]string `yaml:"Data"`
}

// LineColour is the background and font colour a line is drawn with
type LineColour struct {
	Background util.RGB `json:"background_colour"`
	Font       util.RGB `json:"font_colour"`
}

// LabelRule rewrites a product name into its display symbol.
// Replacement uses regexp expansion syntax (${1}).
type LabelRule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func (r LabelRule) Apply(symbol string) string {
	return r.Pattern.ReplaceAllString(symbol, r.Replacement)
}

type colourKey struct {
	Operator string
	Symbol   string
}

func (t *TransformDefinition) apply(tables *Tables) error {
	if t.Provider == "" {
		return fmt.Errorf("%s definition is missing a Provider", t.Type)
	}

	switch t.Type {
	case DefinitionTypeCategoryIcon:
		category, ok := t.Match["Category"]
		if !ok {
			return fmt.Errorf("category-icon definition for %s is missing Match.Category", t.Provider)
		}
		tables.addCategoryIcon(t.Provider, category, t.Data["Icon"])
	case DefinitionTypeLabelRule:
		pattern, err := regexp.Compile(t.Match["Pattern"])
		if err != nil {
			return fmt.Errorf("label-rule for %s: %w", t.Provider, err)
		}
		tables.LabelRules[t.Provider] = append(tables.LabelRules[t.Provider], LabelRule{
			Pattern:     pattern,
			Replacement: t.Data["Replacement"],
		})
	case DefinitionTypeColour:
		colour, err := parseLineColour(t.Data["Background"], t.Data["Font"])
		if err != nil {
			return fmt.Errorf("colour for %s: %w", t.Provider, err)
		}
		return tables.addColour(t.Provider, t.Match["Operator"], t.Match["Symbol"], colour)
	default:
		return fmt.Errorf("unknown definition type %q", t.Type)
	}

	return nil
}

func parseLineColour(background string, font string) (LineColour, error) {
	backgroundRGB, err := util.Hex2RGB(background)
	if err != nil {
		return LineColour{}, fmt.Errorf("background %q: %w", background, err)
	}
	fontRGB, err := util.Hex2RGB(font)
	if err != nil {
		return LineColour{}, fmt.Errorf("font %q: %w", font, err)
	}

	return LineColour{Background: backgroundRGB, Font: fontRGB}, nil
}
