package legacycsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/AlbionStats_Go/internal/logger"
)

var legacyFiles = []struct {
	name   string
	header []string
}{
	{FileSoloHunts, HeaderSoloHunts},
	{FileGroupHunts, HeaderGroupHunts},
	{FileDeaths, HeaderDeaths},
}

// InitFiles creates the three legacy files with their headers. Existing files
// are left untouched. It returns the paths it created.
func InitFiles(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateDirFailed, err)
	}

	var created []string
	for _, lf := range legacyFiles {
		path := filepath.Join(dir, lf.name)
		ok, err := createWithHeader(path, lf.header)
		if err != nil {
			return created, err
		}
		if ok {
			logger.FromContext(ctx).Info(LogMsgFileCreated, "path", path)
			created = append(created, path)
		}
	}
	return created, nil
}

func createWithHeader(path string, header []string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %s: %w", ErrMsgCreateFileFailed, path, err)
	}

	w := csv.NewWriter(f)
	_ = w.Write(header)
	w.Flush()
	if err := errors.Join(w.Error(), f.Close()); err != nil {
		return false, fmt.Errorf("%s: %s: %w", ErrMsgWriteFileFailed, path, err)
	}
	return true, nil
}
