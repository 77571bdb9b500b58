package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const pageStyle = `
body { font-family: system-ui, sans-serif; background: #121212; color: #e0e0e0; margin: 0; }
nav { background: #1e1e1e; border-bottom: 1px solid #4e4e4e; padding: 12px 24px; }
nav a { color: #00ff88; margin-right: 16px; text-decoration: none; }
main { max-width: 1100px; margin: 0 auto; padding: 24px; }
.metrics { display: grid; grid-template-columns: repeat(4, 1fr); gap: 12px; }
.metric { background: #1e1e1e; border: 1px solid #4e4e4e; border-radius: 10px; padding: 16px; }
.metric .value { font-size: 1.6em; color: #00ff88; }
.bar { display: inline-block; height: 12px; background: #00ff88; }
.bar.group { background: #3fa7ff; }
.bar.death { background: #ff5555; }
table { width: 100%; border-collapse: collapse; margin-top: 12px; }
th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #333; }
.build-card { background: #1e1e1e; border: 1px solid #4e4e4e; border-radius: 10px; padding: 20px; margin: 10px 0; transition: all 0.3s ease; }
.build-card:hover { border-color: #00ff88; box-shadow: 0 0 15px rgba(0,255,136,0.1); }
.build-title { color: #00ff88; font-size: 1.4em; margin-bottom: 15px; border-bottom: 1px solid #4e4e4e; padding-bottom: 10px; }
.equipment-section { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px; margin: 15px 0; }
.equipment-item { background: #2d2d2d; padding: 10px; border-radius: 5px; border: 1px solid #4e4e4e; display: flex; align-items: center; gap: 8px; }
.equipment-item img { width: 48px; height: 48px; }
.build-info { color: #cccccc; margin-top: 10px; }
.flash { background: #3a1e1e; border: 1px solid #ff5555; border-radius: 5px; padding: 10px; margin-bottom: 12px; }
form.build-form { display: grid; grid-template-columns: 1fr 1fr; gap: 10px; background: #1e1e1e; padding: 16px; border-radius: 10px; }
form.build-form textarea { grid-column: 1 / span 2; min-height: 60px; }
button, input, select, textarea { background: #2d2d2d; color: #e0e0e0; border: 1px solid #4e4e4e; border-radius: 5px; padding: 6px; }
`

// Layout wraps body in the shared page chrome
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><style>`)
		h.raw(pageStyle)
		h.raw(`</style></head><body><nav><a href="/">Dashboard</a><a href="/builds">Builds</a></nav><main><h1>`)
		h.text(title)
		h.raw(`</h1>`)
		if h.err != nil {
			return h.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main></body></html>`)
		return h.err
	})
}

// Flash renders an error banner, or nothing when msg is empty
func Flash(msg string, details []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if msg == "" {
			return nil
		}
		h := &htmlWriter{w: w}
		h.raw(`<div class="flash" role="alert">`)
		h.text(msg)
		if len(details) > 0 {
			h.raw(`<ul>`)
			for _, d := range details {
				h.raw(`<li>`)
				h.text(d)
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
		h.raw(`</div>`)
		return h.err
	})
}
