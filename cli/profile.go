package cli

// This file contains the --profile handling shared by the benchmark commands.

import (
	"fmt"
	"time"

	"github.com/perfgo/layoutbench/profiling"
	"github.com/urfave/cli/v2"
)

func (a *App) withProfile(ctx *cli.Context, run func() error) error {
	if !ctx.Bool("profile") {
		return run()
	}

	var runErr error
	prof, err := profiling.Capture(func() {
		runErr = run()
	})
	if runErr != nil {
		return runErr
	}
	if err != nil {
		return fmt.Errorf("failed to profile benchmark: %w", err)
	}

	a.logger.Info().
		Int("samples", len(prof.Sample)).
		Dur("duration", time.Duration(prof.DurationNanos)).
		Msg("CPU profile captured")

	for i, fn := range profiling.TopFunctions(prof, ctx.Int("top")) {
		a.logger.Info().
			Int("rank", i+1).
			Str("function", fn.Name).
			Dur("flat", fn.Flat).
			Float64("percent", fn.Fraction*100).
			Msg("Hot function")
	}
	return nil
}
