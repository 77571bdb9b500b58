package web

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// barUnit is the pixel width of one record in the activity chart
const barUnit = 14

// Dashboard renders the summary metrics, the per-character table and the
// recent activity chart
func Dashboard(summary *domain.StatsSummary, f *Formatter) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<p>`)
		for _, p := range periodLabels {
			h.rawf(`<a href="/?%s=%s"`, QueryPeriod, p.Period)
			if p.Period == summary.Period {
				h.raw(` aria-current="page"`)
			}
			h.raw(`>`)
			h.text(p.Label)
			h.raw(`</a> `)
		}
		h.raw(`</p><p>`)
		h.text(summary.StartDate.String() + " → " + summary.EndDate.String())
		h.raw(`</p>`)

		h.raw(`<section class="metrics">`)
		metric(h, "Total de Hunts Solo", f.Count(summary.SoloHuntCount), f.Silver(summary.SoloProfit))
		metric(h, "Total de Hunts em Grupo", f.Count(summary.GroupHuntCount), f.Silver(summary.GroupValue))
		metric(h, "Total de Mortes", f.Count(summary.DeathCount), f.Silver(summary.Losses.Neg()))
		metric(h, "Saldo Líquido", f.Silver(summary.Net), "prata")
		h.raw(`</section>`)

		h.raw(`<h2>Personagens</h2><table><thead><tr><th>Personagem</th><th>Hunts Solo</th><th>Hunts em Grupo</th><th>Mortes</th><th>Lucro Solo</th><th>Parte em Grupo</th><th>Perdas</th><th>Líquido</th></tr></thead><tbody>`)
		for _, c := range summary.Characters {
			h.raw(`<tr><td>`)
			h.text(c.Character)
			h.raw(`</td><td>`)
			h.text(f.Count(c.SoloHunts))
			h.raw(`</td><td>`)
			h.text(f.Count(c.GroupHunts))
			h.raw(`</td><td>`)
			h.text(f.Count(c.Deaths))
			h.raw(`</td><td>`)
			h.text(f.Silver(c.SoloProfit))
			h.raw(`</td><td>`)
			h.text(f.Silver(c.GroupShare))
			h.raw(`</td><td>`)
			h.text(f.Silver(c.Losses))
			h.raw(`</td><td>`)
			h.text(f.Silver(c.Net))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)

		h.raw(`<h2>Atividades Recentes</h2>`)
		if len(summary.Recent) == 0 {
			h.raw(`<p>`)
			h.text(MsgNoActivity)
			h.raw(`</p>`)
			return h.err
		}
		h.raw(`<table class="activity"><thead><tr><th>Data</th><th>Atividade</th></tr></thead><tbody>`)
		for _, day := range summary.Recent {
			h.raw(`<tr><td>`)
			h.text(day.Date.String())
			h.raw(`</td><td>`)
			bar(h, "", day.SoloHunts, "Solo")
			bar(h, " group", day.GroupHunts, "Grupo")
			bar(h, " death", day.Deaths, "Mortes")
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

func metric(h *htmlWriter, label, value, detail string) {
	h.raw(`<div class="metric"><div class="label">`)
	h.text(label)
	h.raw(`</div><div class="value">`)
	h.text(value)
	h.raw(`</div><div class="detail">`)
	h.text(detail)
	h.raw(`</div></div>`)
}

func bar(h *htmlWriter, class string, n int, title string) {
	if n == 0 {
		return
	}
	h.rawf(`<span class="bar%s" style="width:%dpx" title="%s: %d"></span>`, class, n*barUnit, templ.EscapeString(title), n)
}
