package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"bitty/internal/backend"
	"bitty/internal/bytestore"
	"bitty/internal/frameloop"
	"bitty/internal/logging"
	"bitty/internal/tui"
)

var errProgram = errors.New("run program")

func newCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "bitty <file>",
		Short:         "View a file as a grayscale image, one pixel per byte",
		Long:          "bitty draws any file as a square grayscale canvas. Hold the left mouse button to light up every byte equal to the one under the pointer.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func main() {
	code, fatal := exitCode(newCommand().Execute(), os.Stdout, os.Stderr)
	if fatal != nil {
		log.Fatal().Err(fatal).Msg("bitty aborted")
	}
	os.Exit(code)
}

// exitCode maps the result of the command to a process exit code. Load and
// usage failures are reported on out and errOut. A non-nil fatal means the
// environment is unusable and the caller must abort with it.
func exitCode(err error, out, errOut io.Writer) (code int, fatal error) {
	var le *bytestore.LoadError
	var se *backend.SetupError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &le):
		fmt.Fprintf(out, "Error: Could not read '%s'\n", le.Path)
		return 1, nil
	case errors.As(err, &se), errors.Is(err, errProgram):
		return 1, err
	default:
		fmt.Fprintln(errOut, "Error:", err)
		fmt.Fprintln(errOut, "Usage: bitty <file>")
		return 1, nil
	}
}

func run(path string) error {
	logger := logging.Setup("info")
	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))
	defer undo()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to set GOMAXPROCS")
	}

	store, err := bytestore.Load(path)
	if err != nil {
		return err
	}
	loop, err := frameloop.New(backend.NewSoftware(0), store, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := loop.Quit(); err != nil {
			logger.Error().Err(err).Msg("teardown")
		}
	}()
	logger.Info().Str("path", path).Int("bytes", store.Len()).Int("size", loop.Size()).Msg("buffer loaded")

	m, err := tea.NewProgram(tui.New(loop), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		return fmt.Errorf("%w: %w", errProgram, err)
	}
	if fm, ok := m.(tui.Model); ok {
		logger.Info().Uint64("frames", fm.Loop().Frames()).Msg("bye")
	}
	return nil
}
