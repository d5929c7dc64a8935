package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/ytget/playlist-downloader/internal/config"
	"github.com/ytget/playlist-downloader/internal/model"
)

// Command returns the root command. Without a subcommand it opens the GUI.
func (r *Runner) Command() *cli.Command {
	return &cli.Command{
		Name:    CLIName,
		Usage:   "Fetch a YouTube playlist and download the entries you pick",
		Version: r.version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Sources: cli.EnvVars(config.EnvConfigPath),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Before:   r.before,
		Action:   r.GUI,
		Commands: r.register(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		guiCommand, fetchCommand, downloadCommand, initConfigCommand,
	} {
		commands = append(commands, fn(r))
	}
	return commands
}

func guiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "gui",
		Usage:  "Open the desktop window (default)",
		Action: r.GUI,
	}
}

func fetchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "List the entries of a playlist without downloading",
		ArgsUsage: "<playlist-url>",
		Flags: []cli.Flag{
			backendFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output entries as JSON",
			},
		},
		Action: r.Fetch,
	}
}

func downloadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "download",
		Usage:     "Download a playlist headlessly",
		ArgsUsage: "<playlist-url>",
		Flags: []cli.Flag{
			backendFlag(),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Output folder (default: output_dir or the working directory)",
			},
			&cli.BoolFlag{
				Name:    "audio",
				Aliases: []string{"a"},
				Usage:   "Download audio only (same as --format audio)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Format mode: best or audio",
				Value:   string(model.FormatBest),
			},
			&cli.StringFlag{
				Name:  "skip",
				Usage: "Comma separated 1-based entry numbers to leave out, e.g. 2,5-7",
			},
			&cli.BoolFlag{
				Name:  "bar",
				Usage: "Show a progress bar instead of percentage lines",
			},
		},
		Action: r.Download,
	}
}

func initConfigCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init-config",
		Usage: "Write an example configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Destination path",
				Value: config.DefaultConfigPath,
			},
		},
		Action: r.InitConfig,
	}
}

func backendFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "Media backend: yt-dlp or native (default from config)",
	}
}
