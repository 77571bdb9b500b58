package equipment

import (
	"context"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/metrics"
)

// ResolvedSlot is one build slot with its catalog id, for icon rendering
type ResolvedSlot struct {
	Slot       domain.Slot `json:"slot"`
	Name       string      `json:"name"`
	ExternalID string      `json:"external_id,omitempty"`
	Found      bool        `json:"found"`
}

// ResolveItemID finds the catalog id for a display name. Matching is exact
// and case-sensitive; categories are scanned in domain.ResolveOrder and the
// first hit wins. An empty name, no match, or an unreadable catalog all
// report ok=false.
func (c *catalog) ResolveItemID(ctx context.Context, displayName string) (string, bool) {
	if displayName == "" {
		return "", false
	}

	doc, err := c.Load(ctx)
	if err != nil {
		metrics.CatalogLoadErrors.Inc()
		logger.FromContext(ctx).Warn(LogMsgCatalogUnavailable, "path", c.path, "error", err)
		return "", false
	}

	id, ok := doc.resolve(displayName)
	metrics.RecordLookup(ok)
	return id, ok
}

// ResolveBuild resolves every slot of build, in slot display order. Empty and
// unknown slots come back with Found=false.
func (c *catalog) ResolveBuild(ctx context.Context, build *domain.Build) []ResolvedSlot {
	resolved := make([]ResolvedSlot, 0, len(domain.Slots))

	doc, err := c.Load(ctx)
	if err != nil {
		metrics.CatalogLoadErrors.Inc()
		logger.FromContext(ctx).Warn(LogMsgCatalogUnavailable, "path", c.path, "error", err)
	}

	for _, slot := range domain.Slots {
		rs := ResolvedSlot{Slot: slot, Name: build.SlotValue(slot)}
		if doc != nil && rs.Name != "" {
			rs.ExternalID, rs.Found = doc.resolve(rs.Name)
			metrics.RecordLookup(rs.Found)
		}
		resolved = append(resolved, rs)
	}
	return resolved
}

func (d Document) resolve(displayName string) (string, bool) {
	if displayName == "" {
		return "", false
	}
	for _, category := range domain.ResolveOrder {
		for _, entry := range d[category] {
			if entry.Name == displayName {
				return entry.ExternalID, true
			}
		}
	}
	return "", false
}
