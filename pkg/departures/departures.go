package departures

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/hafasboard/pkg/config"
	"github.com/travigo/hafasboard/pkg/ctdf"
	"github.com/travigo/hafasboard/pkg/hafas"
	"github.com/travigo/hafasboard/pkg/transforms"
	"github.com/travigo/hafasboard/pkg/util"
)

const StdinPath = "-"

// Setup loads the settings and mapping tables and builds the normalizer.
// A non-empty transformsPath takes precedence over transforms_path from the settings.
func Setup(configPath string, transformsPath string) (*hafas.Normalizer, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if transformsPath == "" {
		transformsPath = settings.TransformsPath
	}

	var tables *transforms.Tables
	if transformsPath == "" {
		tables, err = transforms.Default()
	} else {
		tables, err = transforms.Load(transformsPath)
	}
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("provider", settings.APIProvider).
		Str("timezone", settings.Timezone).
		Str("transforms", transformsPath).
		Msg("Loaded board settings")

	return hafas.NewNormalizer(settings, tables)
}

type Options struct {
	Workers        int
	IncludeIgnored bool
	Stdin          io.Reader
}

// NormalizeFiles parses one departure record per path and returns the events sorted by
// realtime. Records that cannot be read or parsed are logged and skipped.
func NormalizeFiles(normalizer *hafas.Normalizer, paths []string, options Options) []*hafas.Event {
	if options.Workers <= 0 {
		options.Workers = 1
	}
	if options.Stdin == nil {
		options.Stdin = os.Stdin
	}

	p := pool.NewWithResults[*hafas.Event]().WithMaxGoroutines(options.Workers)

	for _, path := range paths {
		path := path
		p.Go(func() *hafas.Event {
			data, err := readRecord(path, options.Stdin)
			if err != nil {
				log.Error().Err(err).Str("path", path).Msg("Failed to read departure record")
				return nil
			}

			event, err := normalizer.ParseEvent(data)
			if err != nil {
				log.Error().Err(err).Str("path", path).Msg("Failed to normalize departure record")
				return nil
			}

			if !options.IncludeIgnored && event.IgnoreDestination() {
				log.Debug().Str("id", event.ID).Str("path", path).Msg("Ignoring departure by destination")
				return nil
			}

			return event
		})
	}

	events := p.Wait()
	util.InPlaceFilter(&events, func(event *hafas.Event) bool {
		return event != nil
	})

	hafas.SortByRealtime(events)

	return events
}

func BuildDepartureBoard(events []*hafas.Event) ([]*ctdf.DepartureBoard, error) {
	departureBoard := make([]*ctdf.DepartureBoard, 0, len(events))

	var errs []error
	for _, event := range events {
		departure, err := ctdf.NewDepartureBoard(event)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		departureBoard = append(departureBoard, departure)
	}

	return departureBoard, errors.Join(errs...)
}

func readRecord(path string, stdin io.Reader) ([]byte, error) {
	if path == StdinPath {
		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
