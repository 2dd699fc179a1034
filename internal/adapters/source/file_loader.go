package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/wardfinder/backend/internal/domain/providers"
	apperrors "github.com/wardfinder/backend/pkg/errors"
	"github.com/wardfinder/backend/pkg/rawjson"
)

// FileLoader reads hospital data from JSON files on local disk. Every call
// re-reads the file; nothing is cached.
type FileLoader struct {
	readTimeout time.Duration
}

// NewFileLoader creates a loader. A positive readTimeout bounds each read.
func NewFileLoader(readTimeout time.Duration) providers.SourceLoader {
	return &FileLoader{readTimeout: readTimeout}
}

type readResult struct {
	data []byte
	err  error
}

// Load reads and parses the file at path
func (l *FileLoader) Load(ctx context.Context, path string) (rawjson.Value, error) {
	name := filepath.Base(path)

	data, err := l.read(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rawjson.Value{}, apperrors.NewSourceNotFoundError(
				fmt.Sprintf("Data file not found: %s", name), err)
		}
		return rawjson.Value{}, apperrors.NewSourceUnavailableError(
			fmt.Sprintf("File read error for %s: %v", name, err), err)
	}

	value, err := rawjson.Decode(data)
	if err != nil {
		return rawjson.Value{}, apperrors.NewParseError(
			fmt.Sprintf("JSON parse error in %s: %v", name, err), err)
	}

	return value, nil
}

func (l *FileLoader) read(ctx context.Context, path string) ([]byte, error) {
	if l.readTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.readTimeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan readResult, 1)
	go func() {
		data, err := os.ReadFile(path)
		done <- readResult{data: data, err: err}
	}()

	select {
	case res := <-done:
		return res.data, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Exists reports whether a regular file is present at path
func (l *FileLoader) Exists(_ context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}
