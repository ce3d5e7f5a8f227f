// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Aliases:  []string{"f"},
			Usage:    "Source mode: 'url' or 'file'",
			Required: true,
		},
	}
}

func sourceArgs() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      "source",
			UsageText: "Playlist URL or path to a saved HTML page",
		},
	}
}

// tracksCommand dumps the extracted track listing without contacting the
// music service.
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "tracks",
		Aliases:   []string{"dump"},
		Usage:     "Extract a Spotify playlist and print its tracks",
		Arguments: sourceArgs(),
		Flags: append(sourceFlags(),
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: table, csv, or markdown",
				Value:   "table",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
			},
		),
		Action: r.Tracks,
	}
}

// publishCommand runs the full extract-search-create-add pipeline.
func publishCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "publish",
		Aliases:   []string{"port"},
		Usage:     "Recreate a Spotify playlist on the music service",
		Arguments: sourceArgs(),
		Flags: append(sourceFlags(),
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Music service username",
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Music service password",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Name for the new playlist",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Search for matches but do not create a playlist",
			},
		),
		Action: r.Publish,
	}
}

// configCommand handles configuration file management.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the config file",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
