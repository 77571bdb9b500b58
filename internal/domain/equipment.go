package domain

// EquipmentCategory groups catalog entries
type EquipmentCategory string

const (
	CategoryWeapons  EquipmentCategory = "weapons"
	CategoryOffhands EquipmentCategory = "offhands"
	CategoryHelmets  EquipmentCategory = "helmets"
	CategoryArmors   EquipmentCategory = "armors"
	CategoryBoots    EquipmentCategory = "boots"
	CategoryCapes    EquipmentCategory = "capes"
	CategoryPotions  EquipmentCategory = "potions"
	CategoryFoods    EquipmentCategory = "foods"
)

// EquipmentCategories lists every category in catalog file order
var EquipmentCategories = []EquipmentCategory{
	CategoryWeapons,
	CategoryOffhands,
	CategoryHelmets,
	CategoryArmors,
	CategoryBoots,
	CategoryCapes,
	CategoryPotions,
	CategoryFoods,
}

// ResolveOrder is the order categories are scanned when resolving a display
// name with no category attached. Offhands come last.
var ResolveOrder = []EquipmentCategory{
	CategoryWeapons,
	CategoryHelmets,
	CategoryArmors,
	CategoryBoots,
	CategoryCapes,
	CategoryPotions,
	CategoryFoods,
	CategoryOffhands,
}

// IsValid reports whether c is a known category
func (c EquipmentCategory) IsValid() bool {
	for _, valid := range EquipmentCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// EquipmentEntry is one catalog item. ExternalID is the game's item id, used
// to fetch its icon.
type EquipmentEntry struct {
	Name       string `json:"name"`
	ExternalID string `json:"id"`
}
