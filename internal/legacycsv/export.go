package legacycsv

import (
	"cmp"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
)

// HuntLister reads hunts for export. hunt.Service satisfies it.
type HuntLister interface {
	ListSoloHunts(ctx context.Context, filter domain.SoloHuntFilter) ([]domain.SoloHunt, error)
	ListGroupHunts(ctx context.Context, filter domain.GroupHuntFilter) ([]domain.GroupHunt, error)
}

// DeathLister reads deaths for export. death.Service satisfies it.
type DeathLister interface {
	ListDeaths(ctx context.Context, filter domain.DeathFilter) ([]domain.Death, error)
}

// WriteSoloHunts writes hunts under the legacy solo header
func WriteSoloHunts(w io.Writer, hunts []domain.SoloHunt) error {
	return writeAll(w, HeaderSoloHunts, len(hunts), func(i int) []string {
		h := hunts[i]
		return []string{h.Date.String(), h.Character, string(h.HuntType), h.ItemProfit.String(), h.Description}
	})
}

// WriteGroupHunts writes hunts under the legacy group header
func WriteGroupHunts(w io.Writer, hunts []domain.GroupHunt) error {
	return writeAll(w, HeaderGroupHunts, len(hunts), func(i int) []string {
		g := hunts[i]
		return []string{g.Date.String(), g.Characters, g.TotalValue.String(), g.Notes}
	})
}

// WriteDeaths writes deaths under the legacy deaths header
func WriteDeaths(w io.Writer, deaths []domain.Death) error {
	return writeAll(w, HeaderDeaths, len(deaths), func(i int) []string {
		d := deaths[i]
		return []string{d.Character, d.Date.String(), d.ValueLost.String(), d.Description}
	})
}

func writeAll(w io.Writer, header []string, n int, row func(i int) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Exporter writes the store back out as legacy CSV files
type Exporter struct {
	hunts  HuntLister
	deaths DeathLister
}

// NewExporter creates an Exporter
func NewExporter(hunts HuntLister, deaths DeathLister) *Exporter {
	return &Exporter{hunts: hunts, deaths: deaths}
}

// ExportDir replaces the three legacy files in dir with the current records,
// oldest first. Each file is written to a temp file and renamed into place.
func (ex *Exporter) ExportDir(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateDirFailed, err)
	}

	solo, err := ex.hunts.ListSoloHunts(ctx, domain.SoloHuntFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListRecordsFailed, err)
	}
	group, err := ex.hunts.ListGroupHunts(ctx, domain.GroupHuntFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListRecordsFailed, err)
	}
	deaths, err := ex.deaths.ListDeaths(ctx, domain.DeathFilter{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListRecordsFailed, err)
	}

	slices.SortStableFunc(solo, func(a, b domain.SoloHunt) int { return byDateThenID(a.Date, b.Date, a.ID, b.ID) })
	slices.SortStableFunc(group, func(a, b domain.GroupHunt) int { return byDateThenID(a.Date, b.Date, a.ID, b.ID) })
	slices.SortStableFunc(deaths, func(a, b domain.Death) int { return byDateThenID(a.Date, b.Date, a.ID, b.ID) })

	writes := []struct {
		name  string
		write func(io.Writer) error
	}{
		{FileSoloHunts, func(w io.Writer) error { return WriteSoloHunts(w, solo) }},
		{FileGroupHunts, func(w io.Writer) error { return WriteGroupHunts(w, group) }},
		{FileDeaths, func(w io.Writer) error { return WriteDeaths(w, deaths) }},
	}

	var written []string
	for _, wr := range writes {
		path := filepath.Join(dir, wr.name)
		if err := replaceFile(path, wr.write); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	logger.FromContext(ctx).Info(LogMsgExportSummary,
		"dir", dir,
		"solo_hunts", len(solo),
		"group_hunts", len(group),
		"deaths", len(deaths))
	return written, nil
}

func byDateThenID(da, db domain.Date, ia, ib int64) int {
	if n := da.Compare(db.Time); n != 0 {
		return n
	}
	return cmp.Compare(ia, ib)
}

func replaceFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %s: %w", ErrMsgCreateFileFailed, path, err)
	}
	defer os.Remove(tmp.Name())

	if err := errors.Join(write(tmp), tmp.Close()); err != nil {
		return fmt.Errorf("%s: %s: %w", ErrMsgWriteFileFailed, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%s: %s: %w", ErrMsgWriteFileFailed, path, err)
	}
	return nil
}
