package equipment

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

func TestCheckBuild_Clean(t *testing.T) {
	c := seededCatalog(t)
	build := &domain.Build{
		PrimaryWeapon: "Claymore",
		Offhand:       "",
		Head:          "Soldier Helmet",
		Chest:         "Soldier Armor",
		Boots:         "Soldier Boots",
		Cape:          "Martlock Cape",
		Potion:        "Healing Potion",
		Food:          "Beef Stew",
	}

	mismatches, err := c.CheckBuild(context.Background(), build)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestCheckBuild_Mismatches(t *testing.T) {
	c := seededCatalog(t)
	build := &domain.Build{
		PrimaryWeapon: "Claymore",
		Head:          "Soldier Helmett",
		Chest:         "Soldier Helmet",
		Food:          "Starter Helmet",
	}

	mismatches, err := c.CheckBuild(context.Background(), build)
	require.NoError(t, err)
	require.Len(t, mismatches, 3)

	assert.Equal(t, domain.SlotHead, mismatches[0].Slot)
	assert.Equal(t, domain.CategoryHelmets, mismatches[0].Category)
	assert.Equal(t, []string{"Soldier Helmet"}, mismatches[0].Suggestions)

	// A helmet in the chest slot is still a mismatch; matching is per category.
	assert.Equal(t, domain.SlotChest, mismatches[1].Slot)
	assert.NotContains(t, mismatches[1].Suggestions, "Soldier Helmet")

	assert.Equal(t, domain.SlotFood, mismatches[2].Slot)
	assert.Empty(t, mismatches[2].Suggestions)
}

func TestCheckBuild_MissingCatalog(t *testing.T) {
	c := newTestCatalog(t, filepath.Join(t.TempDir(), "absent.json"))

	_, err := c.CheckBuild(context.Background(), &domain.Build{PrimaryWeapon: "Claymore"})
	assert.ErrorIs(t, err, domain.ErrResourceMissing)
}

func TestSuggest(t *testing.T) {
	entries := []domain.EquipmentEntry{
		{Name: "Healing Potion"},
		{Name: "Energy Potion"},
		{Name: "Resistance Potion"},
		{Name: "Healing Potion"},
	}

	assert.Equal(t, []string{"Healing Potion"}, suggest("healing potion", entries))
	assert.Equal(t, []string{"Healing Potion"}, suggest("Healng Potion", entries))
	assert.Empty(t, suggest("Beef Stew", entries))
}

func TestUnknownEquipmentError(t *testing.T) {
	var err error = &UnknownEquipmentError{Mismatches: []SlotMismatch{
		{Slot: domain.SlotHead, Category: domain.CategoryHelmets, Name: "Soldier Helmett", Suggestions: []string{"Soldier Helmet"}},
		{Slot: domain.SlotFood, Category: domain.CategoryFoods, Name: "Cake"},
	}}

	assert.ErrorIs(t, err, domain.ErrUnknownEquipment)
	var typed *UnknownEquipmentError
	require.ErrorAs(t, err, &typed)
	assert.Len(t, typed.Mismatches, 2)
	assert.Contains(t, err.Error(), `head: "Soldier Helmett" is not a known helmets item (did you mean "Soldier Helmet"?)`)
	assert.Contains(t, err.Error(), `food: "Cake" is not a known foods item`)
}
