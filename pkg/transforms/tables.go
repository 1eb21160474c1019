package transforms

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed data
var builtinData embed.FS

// Tables holds the provider keyed mapping data. It is read-only once loaded.
type Tables struct {
	CategoryIcons map[string]map[string]string
	LabelRules    map[string][]LabelRule
	Colours       map[string]map[colourKey]LineColour
}

type colourRecord struct {
	Provider   string `csv:"provider"`
	Operator   string `csv:"operator"`
	Symbol     string `csv:"symbol"`
	Background string `csv:"background"`
	Font       string `csv:"font"`
}

func NewTables() *Tables {
	return &Tables{
		CategoryIcons: map[string]map[string]string{},
		LabelRules:    map[string][]LabelRule{},
		Colours:       map[string]map[colourKey]LineColour{},
	}
}

// Default returns the tables shipped with the binary
func Default() (*Tables, error) {
	data, err := fs.Sub(builtinData, "data")
	if err != nil {
		return nil, err
	}

	return LoadFS(data)
}

// Load reads every .yaml/.yml definition file and .csv colour table below dir
func Load(dir string) (*Tables, error) {
	return LoadFS(os.DirFS(dir))
}

func LoadFS(fsys fs.FS) (*Tables, error) {
	tables := NewTables()

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			log.Debug().Str("path", path).Msg("Loading transforms file")
			return tables.loadDefinitions(fsys, path)
		case ".csv":
			log.Debug().Str("path", path).Msg("Loading colour table")
			return tables.loadColourTable(fsys, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load transforms: %w", err)
	}

	return tables, nil
}

func (t *Tables) loadDefinitions(fsys fs.FS, path string) error {
	transformYaml, err := fs.ReadFile(fsys, path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(transformYaml))

	for {
		var definition TransformDefinition
		err := decoder.Decode(&definition)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if definition.Type == "" && definition.Provider == "" {
			continue
		}

		if err := definition.apply(t); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
}

func (t *Tables) loadColourTable(fsys fs.FS, path string) error {
	file, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var records []*colourRecord
	if err := gocsv.Unmarshal(file, &records); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for _, record := range records {
		colour, err := parseLineColour(record.Background, record.Font)
		if err != nil {
			return fmt.Errorf("%s: %s/%s: %w", path, record.Provider, record.Symbol, err)
		}

		if err := t.addColour(record.Provider, record.Operator, record.Symbol, colour); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

func (t *Tables) addCategoryIcon(provider string, category string, icon string) {
	if t.CategoryIcons[provider] == nil {
		t.CategoryIcons[provider] = map[string]string{}
	}
	t.CategoryIcons[provider][category] = icon
}

func (t *Tables) addColour(provider string, operator string, symbol string, colour LineColour) error {
	if operator == "" && symbol == "" {
		return fmt.Errorf("colour for %s needs an Operator or a Symbol", provider)
	}

	if t.Colours[provider] == nil {
		t.Colours[provider] = map[colourKey]LineColour{}
	}
	t.Colours[provider][colourKey{Operator: operator, Symbol: symbol}] = colour

	return nil
}

// CategoryIcon returns the glyph for a category code, "" when the provider has none
func (t *Tables) CategoryIcon(provider string, category string) string {
	return t.CategoryIcons[provider][category]
}

// Rules returns the provider's symbol rewrite rules in definition order
func (t *Tables) Rules(provider string) []LabelRule {
	return t.LabelRules[provider]
}

// Colour looks up a line colour, most specific entry first:
// operator and symbol, then symbol alone, then operator alone.
func (t *Tables) Colour(provider string, operator string, symbol string) (LineColour, bool) {
	colours, ok := t.Colours[provider]
	if !ok {
		return LineColour{}, false
	}

	if operator != "" && symbol != "" {
		if colour, ok := colours[colourKey{Operator: operator, Symbol: symbol}]; ok {
			return colour, true
		}
	}
	if symbol != "" {
		if colour, ok := colours[colourKey{Symbol: symbol}]; ok {
			return colour, true
		}
	}
	if operator != "" {
		if colour, ok := colours[colourKey{Operator: operator}]; ok {
			return colour, true
		}
	}

	return LineColour{}, false
}
