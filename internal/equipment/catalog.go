package equipment

import (
	"cmp"
	"context"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/metrics"
	"github.com/osse101/AlbionStats_Go/internal/validation"
)

//go:embed equipment.schema.json
var catalogSchema []byte

//go:embed default_catalog.json
var defaultCatalog []byte

// ErrInvalidCatalog is returned when the catalog file is not valid JSON or
// does not match the schema
var ErrInvalidCatalog = errors.New("invalid equipment catalog")

// Document is a parsed catalog: entries per category in file order
type Document map[domain.EquipmentCategory][]domain.EquipmentEntry

// Catalog provides read-only access to the equipment catalog file. The file is
// read on every call, so edits are picked up without a restart.
type Catalog interface {
	Path() string
	Categories() []domain.EquipmentCategory
	Load(ctx context.Context) (Document, error)
	ListEquipment(ctx context.Context, category domain.EquipmentCategory) []domain.EquipmentEntry
	Names(ctx context.Context, category domain.EquipmentCategory) []string
	ResolveItemID(ctx context.Context, displayName string) (string, bool)
	ResolveBuild(ctx context.Context, build *domain.Build) []ResolvedSlot
	CheckBuild(ctx context.Context, build *domain.Build) ([]SlotMismatch, error)
}

type catalog struct {
	path      string
	validator validation.SchemaValidator
	memo      *lru.Cache[string, Document]
}

// NewCatalog creates a Catalog backed by the JSON file at path
func NewCatalog(path string) (Catalog, error) {
	v := validation.NewSchemaValidator()
	if err := v.RegisterSchema(SchemaName, catalogSchema); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRegisterSchemaFailed, err)
	}

	memo, err := lru.New[string, Document](MemoSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateMemoFailed, err)
	}

	return &catalog{path: path, validator: v, memo: memo}, nil
}

// Path returns the catalog file path
func (c *catalog) Path() string {
	return c.path
}

// Categories returns the fixed category order
func (c *catalog) Categories() []domain.EquipmentCategory {
	return slices.Clone(domain.EquipmentCategories)
}

// Load reads, validates and parses the catalog file. A missing file wraps
// domain.ErrResourceMissing; bad content wraps ErrInvalidCatalog.
func (c *catalog) Load(ctx context.Context) (Document, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrResourceMissing, c.path)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgReadCatalogFailed, err)
	}

	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])
	if doc, ok := c.memo.Get(key); ok {
		return doc, nil
	}

	doc, err := c.parse(data)
	if err != nil {
		return nil, err
	}

	c.memo.Add(key, doc)
	logger.FromContext(ctx).Debug(LogMsgCatalogParsed, "path", c.path, "sha256", key)
	return doc, nil
}

func (c *catalog) parse(data []byte) (Document, error) {
	if err := c.validator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, ErrMsgCatalogSchemaFailed, err)
	}

	var raw map[domain.EquipmentCategory][]domain.EquipmentEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, ErrMsgParseCatalogFailed, err)
	}

	doc := make(Document, len(domain.EquipmentCategories))
	for _, category := range domain.EquipmentCategories {
		doc[category] = raw[category]
	}
	return doc, nil
}

// ListEquipment returns the category's entries sorted by name. Any failure
// (missing or malformed file, unknown category) yields an empty list and a
// warning; it never errors.
func (c *catalog) ListEquipment(ctx context.Context, category domain.EquipmentCategory) []domain.EquipmentEntry {
	log := logger.FromContext(ctx)

	if !category.IsValid() {
		log.Warn(LogMsgUnknownCategory, "category", category)
		return []domain.EquipmentEntry{}
	}

	doc, err := c.Load(ctx)
	if err != nil {
		metrics.CatalogLoadErrors.Inc()
		log.Warn(LogMsgCatalogUnavailable, "path", c.path, "category", category, "error", err)
		return []domain.EquipmentEntry{}
	}

	entries := slices.Clone(doc[category])
	if entries == nil {
		return []domain.EquipmentEntry{}
	}
	slices.SortStableFunc(entries, func(a, b domain.EquipmentEntry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}

// Names returns the sorted display names of a category, for selection lists
func (c *catalog) Names(ctx context.Context, category domain.EquipmentCategory) []string {
	entries := c.ListEquipment(ctx, category)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// SeedFile writes the starter catalog to path when no file exists there.
// created reports whether a file was written.
func SeedFile(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%s: %w", ErrMsgWriteSeedFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgCreateCatalogDirFailed, err)
	}
	if err := os.WriteFile(path, defaultCatalog, 0o644); err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgWriteSeedFailed, err)
	}
	return true, nil
}
