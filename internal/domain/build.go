package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContentType is the kind of content a build is meant for
type ContentType string

const (
	ContentPvESolo  ContentType = "PvE Solo"
	ContentPvEGroup ContentType = "PvE Grupo"
	ContentPvPSolo  ContentType = "PvP Solo"
	ContentPvPGroup ContentType = "PvP Grupo"
	ContentZvZ      ContentType = "ZvZ"
)

// ContentTypes lists the valid content types in display order
var ContentTypes = []ContentType{ContentPvESolo, ContentPvEGroup, ContentPvPSolo, ContentPvPGroup, ContentZvZ}

// IsValid reports whether c is one of ContentTypes
func (c ContentType) IsValid() bool {
	for _, valid := range ContentTypes {
		if c == valid {
			return true
		}
	}
	return false
}

// Slot names an equipment position on a build
type Slot string

const (
	SlotPrimaryWeapon Slot = "primary_weapon"
	SlotOffhand       Slot = "offhand"
	SlotHead          Slot = "head"
	SlotChest         Slot = "chest"
	SlotBoots         Slot = "boots"
	SlotCape          Slot = "cape"
	SlotPotion        Slot = "potion"
	SlotFood          Slot = "food"
)

// Slots lists every slot in display order
var Slots = []Slot{
	SlotPrimaryWeapon,
	SlotOffhand,
	SlotHead,
	SlotChest,
	SlotBoots,
	SlotCape,
	SlotPotion,
	SlotFood,
}

var slotCategories = map[Slot]EquipmentCategory{
	SlotPrimaryWeapon: CategoryWeapons,
	SlotOffhand:       CategoryOffhands,
	SlotHead:          CategoryHelmets,
	SlotChest:         CategoryArmors,
	SlotBoots:         CategoryBoots,
	SlotCape:          CategoryCapes,
	SlotPotion:        CategoryPotions,
	SlotFood:          CategoryFoods,
}

// Category returns the catalog category that supplies values for the slot
func (s Slot) Category() EquipmentCategory {
	return slotCategories[s]
}

// Build is a saved equipment loadout. Slots hold catalog display names, not
// catalog ids.
type Build struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	ContentType   ContentType `json:"content_type"`
	PrimaryWeapon string      `json:"primary_weapon"`
	Offhand       string      `json:"offhand"`
	Head          string      `json:"head"`
	Chest         string      `json:"chest"`
	Boots         string      `json:"boots"`
	Cape          string      `json:"cape"`
	Potion        string      `json:"potion"`
	Food          string      `json:"food"`
	Notes         string      `json:"notes"`
	Character     string      `json:"character"`
	CreatedAt     time.Time   `json:"created_at"`
}

// SlotValue returns the display name stored in slot
func (b *Build) SlotValue(slot Slot) string {
	switch slot {
	case SlotPrimaryWeapon:
		return b.PrimaryWeapon
	case SlotOffhand:
		return b.Offhand
	case SlotHead:
		return b.Head
	case SlotChest:
		return b.Chest
	case SlotBoots:
		return b.Boots
	case SlotCape:
		return b.Cape
	case SlotPotion:
		return b.Potion
	case SlotFood:
		return b.Food
	default:
		return ""
	}
}

// SetSlot stores a display name in slot
func (b *Build) SetSlot(slot Slot, name string) {
	switch slot {
	case SlotPrimaryWeapon:
		b.PrimaryWeapon = name
	case SlotOffhand:
		b.Offhand = name
	case SlotHead:
		b.Head = name
	case SlotChest:
		b.Chest = name
	case SlotBoots:
		b.Boots = name
	case SlotCape:
		b.Cape = name
	case SlotPotion:
		b.Potion = name
	case SlotFood:
		b.Food = name
	}
}

// Validate performs presence checks. A build needs a name and a primary weapon.
func (b *Build) Validate() error {
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: build name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(b.PrimaryWeapon) == "" {
		return fmt.Errorf("%w: primary weapon is required", ErrInvalidInput)
	}
	if !b.ContentType.IsValid() {
		return fmt.Errorf("%w: unknown content type %q", ErrInvalidInput, b.ContentType)
	}
	return nil
}
