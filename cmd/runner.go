package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spotport/spotport/internal/extractor"
	"github.com/spotport/spotport/internal/models"
	"github.com/spotport/spotport/internal/services"
	"github.com/spotport/spotport/internal/shared"
	"github.com/spotport/spotport/internal/source"
	"github.com/spotport/spotport/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	service services.Service
	reader  *source.Reader
	logger  *log.Logger
	output  io.Writer
	styles  *ui.Palette
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Service    services.Service
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:  opts.Config,
		service: opts.Service,
		reader:  source.NewReader(opts.HTTPClient),
		logger:  opts.Logger,
		output:  opts.Output,
		styles:  ui.DefaultPalette(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		tracksCommand, publishCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// configureLogging raises the log level to debug when the global verbose flag
// is set.
func (r *Runner) configureLogging(cmd *cli.Command) {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
		r.logger.Debug("verbose logging enabled")
	}
}

// loadConfig replaces the runner's config with the file named by the config
// flag when it can be read, keeping the existing config otherwise.
func (r *Runner) loadConfig(cmd *cli.Command) {
	path := cmd.String("config")
	if path == "" {
		return
	}
	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Debug("config file not loaded, keeping current settings", "path", path, "err", err)
		return
	}
	r.config = config
}

// loadSource reads and validates the source mode flag and fetches the HTML
// document, then runs the extractor over it.
func (r *Runner) loadSource(ctx context.Context, cmd *cli.Command) ([]models.Track, models.Playlist, error) {
	mode, err := source.ParseMode(cmd.String("from"))
	if err != nil {
		return nil, models.Playlist{}, err
	}

	value := cmd.StringArg("source")
	if value == "" {
		return nil, models.Playlist{}, fmt.Errorf("%w: source value", shared.ErrMissingArgument)
	}

	r.logger.Info("reading source", "mode", string(mode), "source", value)
	html, err := r.reader.Read(ctx, mode, value)
	if err != nil {
		return nil, models.Playlist{}, err
	}

	r.logger.Debug("extracting playlist state", "bytes", len(html))
	tracks, meta, err := extractor.Extract(html)
	if err != nil {
		return nil, models.Playlist{}, err
	}

	r.logger.Info("extracted playlist", "tracks", len(tracks))
	return tracks, meta, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(append(output, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
