package departures

import (
	"encoding/json"
	"errors"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/hafasboard/pkg/ctdf"
	"github.com/travigo/hafasboard/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "normalize",
		Usage:     "Normalize HAFAS departure records into departure board records",
		ArgsUsage: "<record.json>... (- reads stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "hafasboard.yml",
				Usage: "board settings file",
			},
			&cli.StringFlag{
				Name:  "transforms",
				Usage: "directory of mapping definitions, overrides transforms_path",
			},
			&cli.StringSliceFlag{
				Name:  "groups",
				Value: cli.NewStringSlice("basic"),
				Usage: "output groups (basic, detailed)",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 8,
				Usage: "records parsed in parallel",
			},
			&cli.BoolFlag{
				Name:  "include-ignored",
				Usage: "keep departures matching ignore_destination",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "dump the records instead of writing JSON",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("at least one departure record is required")
			}

			normalizer, err := Setup(c.String("config"), c.String("transforms"))
			if err != nil {
				return err
			}

			events := NormalizeFiles(normalizer, c.Args().Slice(), Options{
				Workers:        c.Int("workers"),
				IncludeIgnored: c.Bool("include-ignored"),
				Stdin:          c.App.Reader,
			})

			log.Info().Int("departures", len(events)).Int("records", c.NArg()).Msg("Normalized departure records")

			departureBoard, err := BuildDepartureBoard(events)
			if err != nil {
				log.Error().Err(err).Msg("Failed to build some departure board records")
			}

			if c.Bool("pretty") {
				_, err := pretty.Fprintf(c.App.Writer, "%# v\n", departureBoard)
				return err
			}

			reduced, err := ctdf.Reduce(departureBoard, util.RemoveDuplicateStrings(c.StringSlice("groups"), nil)...)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(c.App.Writer)
			encoder.SetIndent("", "  ")

			return encoder.Encode(reduced)
		},
	}
}
