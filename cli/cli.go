package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"al.essio.dev/pkg/shellescape"
	"github.com/perfgo/layoutbench/bench"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "layoutbench"

type App struct {
	logger zerolog.Logger
	cli    *cli.App
	out    io.Writer
	cfg    bench.Config
	args   []string
}

func New() *App {
	return newApp(os.Stdout, os.Stderr, bench.DefaultConfig())
}

func newApp(out, logOut io.Writer, cfg bench.Config) *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        logOut,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		out:    out,
		cfg:    cfg,
		cli: &cli.App{
			Name:      AppName,
			Usage:     "Measure transform-reduce throughput of AoS vs SoA point clouds",
			Writer:    out,
			ErrWriter: logOut,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
			},
		},
	}
	app.cli.Before = func(ctx *cli.Context) error {
		if ctx.Bool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		app.logger.Debug().Str("cmd", shellescape.QuoteCommand(app.args)).Msg("Invocation")
		return nil
	}
	// Running without a command performs the sweep
	app.cli.Action = app.sweep
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "sweep",
		Usage:  "Benchmark both layouts over problem sizes 10^1 to 10^7 (default)",
		Action: app.sweep,
		Flags:  profileFlags(),
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:    "deep-dive",
		Aliases: []string{"single"},
		Usage:   "Benchmark both layouts at one large problem size, printing every trial",
		Action:  app.deepDive,
		Flags:   profileFlags(),
	})
	return app
}

func profileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "profile",
			Usage: "Capture a CPU profile of the run and log the hottest functions",
		},
		&cli.IntFlag{
			Name:  "top",
			Usage: "Number of functions to log with --profile",
			Value: 10,
		},
	}
}

func (a *App) Run(args []string) error {
	a.args = args
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit[:min(8, len(commit))], date)
	}
}

func (a *App) newRunner() (*bench.Runner, error) {
	runner, err := bench.NewRunner(a.logger, a.cfg, bench.NewReporter(a.out))
	if err != nil {
		return nil, fmt.Errorf("failed to set up benchmark: %w", err)
	}
	return runner, nil
}

func (a *App) sweep(ctx *cli.Context) error {
	runner, err := a.newRunner()
	if err != nil {
		return err
	}
	return a.withProfile(ctx, func() error {
		_, err := runner.Sweep()
		return err
	})
}

func (a *App) deepDive(ctx *cli.Context) error {
	runner, err := a.newRunner()
	if err != nil {
		return err
	}
	return a.withProfile(ctx, func() error {
		_, err := runner.DeepDive()
		return err
	})
}
