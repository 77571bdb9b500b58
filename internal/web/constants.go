package web

import "github.com/osse101/AlbionStats_Go/internal/domain"

// Page titles
const (
	TitleDashboard = "Dashboard Albion Stats ⚔️"
	TitleBuilds    = "Builds ⚔️"
)

// Form and query field names
const (
	FieldName        = "name"
	FieldContentType = "content_type"
	FieldCharacter   = "character"
	FieldNotes       = "notes"
	QueryEdit        = "edit"
	QueryPeriod      = "period"
)

// User-facing messages
const (
	MsgNoBuilds        = "Nenhuma build encontrada."
	MsgNoNotes         = "Nenhuma nota adicional."
	MsgNoActivity      = "Nenhuma atividade registrada no período."
	MsgBuildNotFound   = "Build não encontrada."
	MsgStatsFailed     = "Não foi possível carregar as estatísticas."
	MsgBuildsFailed    = "Não foi possível carregar as builds."
	MsgRequiredFields  = "Nome da build e arma principal são obrigatórios!"
	MsgUnknownItems    = "Equipamentos fora do catálogo:"
	MsgGenericFailure  = "Algo deu errado. Tente novamente."
	MsgCatalogNotFound = "Catálogo de equipamentos indisponível."
)

// Log messages
const (
	LogMsgRenderFailed     = "Failed to render page"
	LogMsgStatsFailed      = "Failed to load stats for dashboard"
	LogMsgBuildsFailed     = "Failed to load builds page"
	LogMsgBuildFormInvalid = "Build form rejected"
	LogMsgBuildFormSaved   = "Build form saved"
	LogMsgBuildFormDeleted = "Build deleted from page"
)

// slotLabels are the build card labels, in the order of domain.Slots
var slotLabels = map[domain.Slot]string{
	domain.SlotPrimaryWeapon: "🗡️ Arma",
	domain.SlotOffhand:       "🛡️ Secundária",
	domain.SlotHead:          "🎭 Cabeça",
	domain.SlotChest:         "👕 Armadura",
	domain.SlotBoots:         "👢 Botas",
	domain.SlotCape:          "🧥 Capa",
	domain.SlotPotion:        "🧪 Poção",
	domain.SlotFood:          "🍖 Comida",
}

// slotPlaceholders are the empty options of the build form selects
var slotPlaceholders = map[domain.Slot]string{
	domain.SlotPrimaryWeapon: "Selecione uma arma",
	domain.SlotOffhand:       "Selecione uma secundária",
	domain.SlotHead:          "Selecione um capacete",
	domain.SlotChest:         "Selecione uma armadura",
	domain.SlotBoots:         "Selecione uma bota",
	domain.SlotCape:          "Selecione uma capa",
	domain.SlotPotion:        "Selecione uma poção",
	domain.SlotFood:          "Selecione uma comida",
}

var periodLabels = []struct {
	Period string
	Label  string
}{
	{domain.PeriodDaily, "Hoje"},
	{domain.PeriodWeekly, "Semana"},
	{domain.PeriodMonthly, "Mês"},
	{domain.PeriodYearly, "Ano"},
	{domain.PeriodAll, "Tudo"},
}
