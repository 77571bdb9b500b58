package equipment

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// SlotMismatch is a build slot whose value is not in the slot's catalog category
type SlotMismatch struct {
	Slot        domain.Slot              `json:"slot"`
	Category    domain.EquipmentCategory `json:"category"`
	Name        string                   `json:"name"`
	Suggestions []string                 `json:"suggestions,omitempty"`
}

// String renders the mismatch for CLI and error output
func (m SlotMismatch) String() string {
	if len(m.Suggestions) == 0 {
		return fmt.Sprintf("%s: %q is not a known %s item", m.Slot, m.Name, m.Category)
	}
	return fmt.Sprintf("%s: %q is not a known %s item (did you mean %s?)",
		m.Slot, m.Name, m.Category, strings.Join(quoteAll(m.Suggestions), ", "))
}

// CheckBuild verifies every non-empty slot against its own category. The
// error is non-nil only when the catalog itself cannot be loaded.
func (c *catalog) CheckBuild(ctx context.Context, build *domain.Build) ([]SlotMismatch, error) {
	doc, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.check(build), nil
}

func (d Document) check(build *domain.Build) []SlotMismatch {
	var mismatches []SlotMismatch
	for _, slot := range domain.Slots {
		name := build.SlotValue(slot)
		if name == "" {
			continue
		}
		category := slot.Category()
		entries := d[category]
		if slices.ContainsFunc(entries, func(e domain.EquipmentEntry) bool { return e.Name == name }) {
			continue
		}
		mismatches = append(mismatches, SlotMismatch{
			Slot:        slot,
			Category:    category,
			Name:        name,
			Suggestions: suggest(name, entries),
		})
	}
	return mismatches
}

// suggest returns the closest catalog names by case-insensitive edit distance
func suggest(name string, entries []domain.EquipmentEntry) []string {
	type candidate struct {
		name     string
		distance int
	}

	target := strings.ToLower(name)
	limit := max(MinSuggestionDistance, utf8.RuneCountInString(target)/3)

	var candidates []candidate
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		if dist := levenshtein.ComputeDistance(target, strings.ToLower(e.Name)); dist <= limit {
			candidates = append(candidates, candidate{name: e.Name, distance: dist})
		}
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		if n := cmp.Compare(a.distance, b.distance); n != 0 {
			return n
		}
		return cmp.Compare(a.name, b.name)
	})

	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}
	out := make([]string, len(candidates))
	for i, cand := range candidates {
		out[i] = cand.name
	}
	return out
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return quoted
}

// UnknownEquipmentError carries the mismatches that rejected a build write.
// It unwraps to domain.ErrUnknownEquipment.
type UnknownEquipmentError struct {
	Mismatches []SlotMismatch
}

// Error joins the mismatches into one message
func (e *UnknownEquipmentError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = m.String()
	}
	return fmt.Sprintf("%s: %s", domain.ErrMsgUnknownEquipment, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match domain.ErrUnknownEquipment
func (e *UnknownEquipmentError) Unwrap() error {
	return domain.ErrUnknownEquipment
}
