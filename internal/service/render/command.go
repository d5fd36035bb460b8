package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/alarm-naming/internal/config"
	"github.com/oshokin/alarm-naming/internal/logger"
	repository "github.com/oshokin/alarm-naming/internal/repository/template"
)

// StdoutPath selects standard output as the render destination.
const StdoutPath = "-"

// Options controls the render command.
type Options struct {
	// ConfigPath is the alarm configuration file, defaults to config.DefaultConfigFilename.
	ConfigPath string
	// OutputPath is the fragment file, or StdoutPath.
	OutputPath string
	// Format is json or yaml; when empty it is derived from OutputPath.
	Format string
	// Fs is the filesystem for configuration and output, defaults to the OS filesystem.
	Fs afero.Fs
	// Stdout receives the fragment when OutputPath is StdoutPath, defaults to os.Stdout.
	Stdout io.Writer
	// Verbose logs every rendered resource at debug level.
	Verbose bool
}

// errOptionsNotSet is returned when Run receives nil options.
var errOptionsNotSet = errors.New("render options are not set")

// Run loads the configuration, renders the fragment and saves it.
func Run(ctx context.Context, opts *Options) error {
	if opts == nil {
		return errOptionsNotSet
	}

	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "render")
	if opts.Verbose {
		ctx = logger.WithContextLevel(ctx, zapcore.DebugLevel)
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cfg, err := config.LoadFs(fs, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	repo, err := newRepository(fs, opts)
	if err != nil {
		return err
	}

	fragment, err := Render(ctx, cfg)
	if err != nil {
		return err
	}

	if err = repo.Save(ctx, fragment); err != nil {
		return fmt.Errorf("save fragment: %w", err)
	}

	logger.InfoKV(ctx, "Fragment rendered",
		"stack_name", cfg.StackName,
		"functions", len(cfg.Functions),
		"resources", len(fragment.Resources),
		"output", opts.OutputPath)

	return nil
}

// newRepository picks the destination and encoding of the fragment.
//
//nolint:ireturn // Destination type depends on the output path.
func newRepository(fs afero.Fs, opts *Options) (repository.Repository, error) {
	output := opts.OutputPath
	if output == "" {
		output = StdoutPath
	}

	format := repository.FormatFromPath(output)
	if opts.Format != "" {
		var err error

		if format, err = repository.ParseFormat(opts.Format); err != nil {
			return nil, err
		}
	}

	if output != StdoutPath {
		return repository.NewFileRepository(fs, output, format), nil
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return repository.NewStreamRepository(stdout, format), nil
}
