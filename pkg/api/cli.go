package api

import (
	"github.com/travigo/hafasboard/pkg/departures"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the departure normalization web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "hafasboard.yml",
						Usage: "board settings file",
					},
					&cli.StringFlag{
						Name:  "transforms",
						Usage: "directory of mapping definitions, overrides transforms_path",
					},
				},
				Action: func(c *cli.Context) error {
					normalizer, err := departures.Setup(c.String("config"), c.String("transforms"))
					if err != nil {
						return err
					}

					return SetupServer(c.String("listen"), normalizer)
				},
			},
		},
	}
}
