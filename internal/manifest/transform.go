package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/hoverpad/chrome-manifest/internal/branding"
	"go.uber.org/zap"
)

const outputPerm os.FileMode = 0644

// Options tunes a Transformer. The zero value removes the default key,
// writes compact JSON, discards progress lines and does not log.
type Options struct {
	// Key is the top-level key to remove. Empty means branding.StripKey().
	Key string
	// Format controls serialization of the output document.
	Format EncodeOptions
	// Progress receives one line before the read and one before the write.
	Progress io.Writer
	Logger   *zap.Logger
}

// Transformer copies a manifest to its build location minus one key.
type Transformer struct {
	paths    Paths
	key      string
	format   EncodeOptions
	progress io.Writer
	logger   *zap.Logger
}

// NewTransformer returns a Transformer for the given paths.
func NewTransformer(paths Paths, opts Options) *Transformer {
	t := &Transformer{
		paths:    paths,
		key:      opts.Key,
		format:   opts.Format,
		progress: opts.Progress,
		logger:   opts.Logger,
	}
	if t.key == "" {
		t.key = branding.StripKey()
	}
	if t.progress == nil {
		t.progress = io.Discard
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	return t
}

// Paths returns the locations the transformer reads and writes.
func (t *Transformer) Paths() Paths { return t.paths }

// Key returns the key the transformer removes.
func (t *Transformer) Key() string { return t.key }

// Run reads the input manifest, removes the key and writes the result.
// Nothing is written unless the input was read, parsed and contained the
// key. The returned error is one of *NotFoundError, *ParseError,
// *MissingKeyError or *WriteError, or a wrapped error for invalid format
// options (reported before anything is read) and other read failures.
func (t *Transformer) Run() error {
	if err := t.format.Validate(); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	doc, err := t.read()
	if err != nil {
		return err
	}

	if !doc.Delete(t.key) {
		return &MissingKeyError{Path: t.paths.Input, Key: t.key}
	}
	t.logger.Debug("removed manifest key",
		zap.String("key", t.key),
		zap.Int("remaining", doc.Len()))

	out, err := Encode(ObjectValue(doc), t.format)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	return t.write(out)
}

func (t *Transformer) read() (*Object, error) {
	path := t.paths.Input
	fmt.Fprintf(t.progress, "Reading %s\n", path)

	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	t.logger.Debug("read manifest", zap.String("path", path), zap.Int("bytes", len(data)))

	doc, err := DecodeObject(data)
	if err != nil {
		return nil, newParseError(path, err)
	}
	return doc, nil
}

func (t *Transformer) write(data []byte) (err error) {
	path := t.paths.Output
	fmt.Fprintf(t.progress, "Writing %s\n", path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputPerm)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	t.logger.Debug("wrote manifest", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

// readFile reads the whole file, closing it on every path.
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func newParseError(path string, err error) *ParseError {
	pe := &ParseError{Path: path, Offset: -1, Err: err}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		pe.Offset = syn.Offset
	}
	return pe
}
