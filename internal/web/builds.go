package web

import (
	"context"
	"io"
	"slices"
	"strconv"

	"github.com/a-h/templ"

	"github.com/osse101/AlbionStats_Go/internal/build"
	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// BuildsPageData is everything the builds page renders
type BuildsPageData struct {
	Views      []build.View
	Filter     domain.BuildFilter
	Characters []string
	// Options holds the catalog names offered for each slot
	Options map[domain.Slot][]string
	// Form pre-fills the build form. A non-zero ID switches it to edit mode.
	Form         domain.Build
	Error        string
	ErrorDetails []string
}

// BuildsPage renders the filter bar, the add or edit form and the build cards
func BuildsPage(data BuildsPageData, f *Formatter) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := Flash(data.Error, data.ErrorDetails).Render(ctx, w); err != nil {
			return err
		}
		h := &htmlWriter{w: w}
		filterBar(h, data)
		buildForm(h, data)

		h.raw(`<h2>Builds Salvas</h2>`)
		if len(data.Views) == 0 {
			h.raw(`<p>`)
			h.text(MsgNoBuilds)
			h.raw(`</p>`)
		}
		for _, v := range data.Views {
			buildCard(h, v, f)
		}
		return h.err
	})
}

func filterBar(h *htmlWriter, data BuildsPageData) {
	h.raw(`<form method="get" action="/builds" class="filters"><label>Tipo de Conteúdo <select name="content_type">`)
	h.option("", domain.FilterAll, string(data.Filter.ContentType))
	for _, ct := range domain.ContentTypes {
		h.option(string(ct), string(ct), string(data.Filter.ContentType))
	}
	h.raw(`</select></label> <label>Personagem <select name="character">`)
	h.option("", domain.FilterAll, data.Filter.Character)
	for _, c := range data.Characters {
		h.option(c, c, data.Filter.Character)
	}
	h.raw(`</select></label> <button type="submit">Filtrar</button></form>`)
}

func buildForm(h *htmlWriter, data BuildsPageData) {
	form := data.Form
	if form.ID != 0 {
		h.raw(`<h2>Editando: `)
		h.text(form.Name)
		h.rawf(`</h2><form method="post" action="/builds/%d" class="build-form">`, form.ID)
	} else {
		h.raw(`<h2>Adicionar Nova Build</h2><form method="post" action="/builds" class="build-form">`)
	}

	h.raw(`<label>Nome da Build <input type="text" name="name" required maxlength="100" value="`)
	h.text(form.Name)
	h.raw(`"></label>`)

	h.raw(`<label>Tipo de Conteúdo <select name="content_type">`)
	for _, ct := range domain.ContentTypes {
		h.option(string(ct), string(ct), string(form.ContentType))
	}
	h.raw(`</select></label>`)

	h.raw(`<label>Personagem Principal <select name="character">`)
	h.option("", "", form.Character)
	for _, c := range withCurrent(data.Characters, form.Character) {
		h.option(c, c, form.Character)
	}
	h.raw(`</select></label>`)

	for _, slot := range domain.Slots {
		current := form.SlotValue(slot)
		h.raw(`<label>`)
		h.text(slotLabels[slot])
		h.raw(` <select name="`)
		h.text(string(slot))
		h.raw(`">`)
		h.option("", slotPlaceholders[slot], current)
		for _, name := range withCurrent(data.Options[slot], current) {
			h.option(name, name, current)
		}
		h.raw(`</select></label>`)
	}

	h.raw(`<textarea name="notes" placeholder="Notas/Observações">`)
	h.text(form.Notes)
	h.raw(`</textarea>`)

	if form.ID != 0 {
		h.raw(`<button type="submit">Salvar Alterações</button> <a href="/builds">Cancelar Edição</a>`)
	} else {
		h.raw(`<button type="submit">Salvar Build</button>`)
	}
	h.raw(`</form>`)
}

func buildCard(h *htmlWriter, v build.View, f *Formatter) {
	b := v.Build
	id := strconv.FormatInt(b.ID, 10)

	h.raw(`<div class="build-card" id="build-` + id + `"><div class="build-title">📋 `)
	h.text(b.Name)
	h.raw(` - `)
	h.text(string(b.ContentType))
	if b.Character != "" {
		h.raw(` (`)
		h.text(b.Character)
		h.raw(`)`)
	}
	h.raw(`</div><div class="equipment-section">`)
	for _, rs := range v.Slots {
		if rs.Name == "" {
			continue
		}
		h.raw(`<div class="equipment-item">`)
		if src := f.IconURL(rs.ExternalID); src != "" {
			h.raw(`<img loading="lazy" src="`)
			h.text(src)
			h.raw(`" alt="`)
			h.text(rs.Name)
			h.raw(`">`)
		}
		h.text(slotLabels[rs.Slot])
		h.raw(`: `)
		h.text(rs.Name)
		h.raw(`</div>`)
	}
	h.raw(`</div><div class="build-info"><strong>Notas:</strong><br>`)
	if b.Notes != "" {
		h.text(b.Notes)
	} else {
		h.text(MsgNoNotes)
	}
	h.raw(`</div><p><a href="/builds?edit=` + id + `">✏️ Editar</a> `)
	h.raw(`<form method="post" action="/builds/` + id + `/delete" style="display:inline"><button type="submit">🗑️ Deletar</button></form></p></div>`)
}

// withCurrent appends current to options when it is missing from the list
func withCurrent(options []string, current string) []string {
	if current == "" || slices.Contains(options, current) {
		return options
	}
	return append(slices.Clone(options), current)
}
