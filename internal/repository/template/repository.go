package template

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/alarm-naming/internal/config"
	"github.com/oshokin/alarm-naming/internal/domain/alarm"
)

// Repository defines persistence operations for rendered fragments.
type Repository interface {
	Save(ctx context.Context, fragment *alarm.Fragment) error
}

// Format selects the fragment encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const yamlIndent = 2

var (
	// ErrUnknownFormat is returned for formats other than json and yaml.
	ErrUnknownFormat = errors.New("unknown format")
	// errFragmentIsNotSet is returned when a nil fragment is saved.
	errFragmentIsNotSet = errors.New("fragment is not set")
)

// ParseFormat converts user input into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode renders the fragment in the requested format.
func Encode(fragment *alarm.Fragment, format Format) ([]byte, error) {
	if fragment == nil {
		return nil, errFragmentIsNotSet
	}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(fragment, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode fragment: %w", err)
		}

		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer

		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(yamlIndent)

		if err := encoder.Encode(fragment); err != nil {
			return nil, fmt.Errorf("encode fragment: %w", err)
		}

		if err := encoder.Close(); err != nil {
			return nil, fmt.Errorf("encode fragment: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileRepository writes fragments to a file.
type FileRepository struct {
	// fs is the filesystem holding the output file.
	fs afero.Fs
	// path is the location of the output file.
	path string
	// format is the encoding of the output file.
	format Format
	// mu serializes writes to the file.
	mu sync.Mutex
}

// NewFileRepository creates a repository that writes the fragment at path on fs.
func NewFileRepository(fs afero.Fs, path string, format Format) *FileRepository {
	return &FileRepository{
		fs:     fs,
		path:   filepath.Clean(path),
		format: format,
	}
}

// Save encodes the fragment and writes it to disk, replacing the previous file.
func (r *FileRepository) Save(_ context.Context, fragment *alarm.Fragment) error {
	data, err := Encode(fragment, r.format)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if dir := filepath.Dir(r.path); dir != "." {
		if err = r.fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if err = afero.WriteFile(r.fs, r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write fragment file: %w", err)
	}

	return nil
}

// StreamRepository writes fragments to a stream such as stdout.
type StreamRepository struct {
	// w receives the encoded fragment.
	w io.Writer
	// format is the encoding of the stream.
	format Format
	// mu serializes writes to the stream.
	mu sync.Mutex
}

// NewStreamRepository creates a repository writing to w.
func NewStreamRepository(w io.Writer, format Format) *StreamRepository {
	return &StreamRepository{
		w:      w,
		format: format,
	}
}

// Save encodes the fragment and writes it to the stream.
func (r *StreamRepository) Save(_ context.Context, fragment *alarm.Fragment) error {
	data, err := Encode(fragment, r.format)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err = r.w.Write(data); err != nil {
		return fmt.Errorf("write fragment: %w", err)
	}

	return nil
}
