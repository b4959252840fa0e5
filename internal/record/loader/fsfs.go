package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-factpage/pkg/record"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("record loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("record loader: fs is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", record.ErrNotFound, name, err)
		}
		return nil, err
	}
	return data, nil
}
