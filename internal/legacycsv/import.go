package legacycsv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
)

// HuntRecorder stores imported hunts and lists the ones already stored.
// hunt.Service satisfies it.
type HuntRecorder interface {
	HuntLister
	RecordSoloHunt(ctx context.Context, hunt *domain.SoloHunt) error
	RecordGroupHunt(ctx context.Context, hunt *domain.GroupHunt) error
}

// DeathRecorder stores imported deaths and lists the ones already stored.
// death.Service satisfies it.
type DeathRecorder interface {
	DeathLister
	RecordDeath(ctx context.Context, death *domain.Death) error
}

// errDuplicate marks a row that matches a record already in the store
var errDuplicate = errors.New("record already stored")

// RowError is a legacy row that could not be imported
type RowError struct {
	File string
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// ImportResult counts what Import stored and lists the rows it skipped
type ImportResult struct {
	SoloHunts  int
	GroupHunts int
	Deaths     int
	Duplicates int
	Rejected   []RowError
}

// Importer reads the legacy CSV files into the store through the services,
// so every row passes the same validation as an API write
type Importer struct {
	hunts  HuntRecorder
	deaths DeathRecorder
	stored map[string]int
}

// NewImporter creates an Importer
func NewImporter(hunts HuntRecorder, deaths DeathRecorder) *Importer {
	return &Importer{hunts: hunts, deaths: deaths}
}

// Import reads every legacy file found in dir. Missing files are skipped.
// Each row matching a record already in the store is skipped once, so
// importing the same files again stores nothing new. Malformed or invalid
// rows are collected in the result; a store failure stops the import and is
// returned.
func (im *Importer) Import(ctx context.Context, dir string) (*ImportResult, error) {
	log := logger.FromContext(ctx)
	result := &ImportResult{}

	if err := im.loadStored(ctx); err != nil {
		return result, err
	}

	steps := []struct {
		name   string
		header []string
		row    func(ctx context.Context, rec []string) error
		count  *int
	}{
		{FileSoloHunts, HeaderSoloHunts, im.importSoloHunt, &result.SoloHunts},
		{FileGroupHunts, HeaderGroupHunts, im.importGroupHunt, &result.GroupHunts},
		{FileDeaths, HeaderDeaths, im.importDeath, &result.Deaths},
	}

	for _, step := range steps {
		path := filepath.Join(dir, step.name)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			log.Info(LogMsgFileSkipped, "path", path)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("%s: %s: %w", ErrMsgOpenFileFailed, path, err)
		}

		err = readRows(f, step.name, step.header, func(line int, rec []string) error {
			err := step.row(ctx, rec)
			switch {
			case err == nil:
				*step.count++
				return nil
			case errors.Is(err, errDuplicate):
				result.Duplicates++
				return nil
			case errors.Is(err, domain.ErrInvalidInput):
				rowErr := RowError{File: step.name, Line: line, Err: err}
				log.Warn(LogMsgRowRejected, "file", step.name, "line", line, "error", err)
				result.Rejected = append(result.Rejected, rowErr)
				return nil
			default:
				return err
			}
		})
		_ = f.Close()
		if err != nil {
			return result, err
		}
	}

	log.Info(LogMsgImportSummary,
		"solo_hunts", result.SoloHunts,
		"group_hunts", result.GroupHunts,
		"deaths", result.Deaths,
		"duplicates", result.Duplicates,
		"rejected", len(result.Rejected))
	return result, nil
}

// loadStored counts the stored records by identity key
func (im *Importer) loadStored(ctx context.Context) error {
	solo, err := im.hunts.ListSoloHunts(ctx, domain.SoloHuntFilter{})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgListRecordsFailed, err)
	}
	group, err := im.hunts.ListGroupHunts(ctx, domain.GroupHuntFilter{})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgListRecordsFailed, err)
	}
	deaths, err := im.deaths.ListDeaths(ctx, domain.DeathFilter{})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgListRecordsFailed, err)
	}

	im.stored = make(map[string]int, len(solo)+len(group)+len(deaths))
	for i := range solo {
		im.stored[soloKey(&solo[i])]++
	}
	for i := range group {
		im.stored[groupKey(&group[i])]++
	}
	for i := range deaths {
		im.stored[deathKey(&deaths[i])]++
	}
	return nil
}

// claim consumes one stored match for key. It reports false when the row is new.
func (im *Importer) claim(key string) bool {
	if im.stored[key] == 0 {
		return false
	}
	im.stored[key]--
	return true
}

func soloKey(h *domain.SoloHunt) string {
	return strings.Join([]string{FileSoloHunts, h.Date.String(), strings.TrimSpace(h.Character),
		string(h.HuntType), h.ItemProfit.String(), h.Description}, "\x1f")
}

func groupKey(g *domain.GroupHunt) string {
	return strings.Join([]string{FileGroupHunts, g.Date.String(), strings.Join(g.Participants(), domain.CharacterSeparator),
		g.TotalValue.String(), g.Notes}, "\x1f")
}

func deathKey(d *domain.Death) string {
	return strings.Join([]string{FileDeaths, d.Date.String(), strings.TrimSpace(d.Character),
		d.ValueLost.String(), d.Description}, "\x1f")
}

// readRows checks the header then calls fn for every data row with its
// 1-based line number
func readRows(r io.Reader, name string, header []string, fn func(line int, rec []string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	got, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %s: %w", ErrMsgReadFileFailed, name, err)
	}
	if len(got) > 0 {
		got[0] = strings.TrimPrefix(got[0], "\ufeff")
	}
	if !slices.Equal(got, header) {
		return fmt.Errorf("%s: %s: got %v, want %v", ErrMsgHeaderMismatch, name, got, header)
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %s: %w", ErrMsgReadFileFailed, name, err)
		}
		line, _ := cr.FieldPos(0)
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}

func (im *Importer) importSoloHunt(ctx context.Context, rec []string) error {
	if err := columns(rec, HeaderSoloHunts); err != nil {
		return err
	}
	date, err := domain.ParseDate(rec[0])
	if err != nil {
		return err
	}
	profit, err := parseAmount(rec[3])
	if err != nil {
		return err
	}
	hunt := &domain.SoloHunt{
		Date:        date,
		Character:   rec[1],
		HuntType:    domain.HuntType(strings.TrimSpace(rec[2])),
		ItemProfit:  profit,
		Description: rec[4],
	}
	if im.claim(soloKey(hunt)) {
		return errDuplicate
	}
	return im.hunts.RecordSoloHunt(ctx, hunt)
}

func (im *Importer) importGroupHunt(ctx context.Context, rec []string) error {
	if err := columns(rec, HeaderGroupHunts); err != nil {
		return err
	}
	date, err := domain.ParseDate(rec[0])
	if err != nil {
		return err
	}
	total, err := parseAmount(rec[2])
	if err != nil {
		return err
	}
	hunt := &domain.GroupHunt{
		Date:       date,
		Characters: rec[1],
		TotalValue: total,
		Notes:      rec[3],
	}
	if im.claim(groupKey(hunt)) {
		return errDuplicate
	}
	return im.hunts.RecordGroupHunt(ctx, hunt)
}

func (im *Importer) importDeath(ctx context.Context, rec []string) error {
	if err := columns(rec, HeaderDeaths); err != nil {
		return err
	}
	date, err := domain.ParseDate(rec[1])
	if err != nil {
		return err
	}
	lost, err := parseAmount(rec[2])
	if err != nil {
		return err
	}
	death := &domain.Death{
		Date:        date,
		Character:   rec[0],
		ValueLost:   lost,
		Description: rec[3],
	}
	if im.claim(deathKey(death)) {
		return errDuplicate
	}
	return im.deaths.RecordDeath(ctx, death)
}

func columns(rec, header []string) error {
	if len(rec) != len(header) {
		return fmt.Errorf("%w: %s: got %d, want %d", domain.ErrInvalidInput, ErrMsgColumnCount, len(rec), len(header))
	}
	return nil
}

// parseAmount reads a silver value. An empty cell is zero.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgInvalidAmount, s)
	}
	return v, nil
}
