package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/osse101/AlbionStats_Go/internal/build"
	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/equipment"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/stats"
)

// Pages serves the HTML dashboard and builds pages
type Pages struct {
	stats   stats.Service
	builds  build.Service
	catalog equipment.Catalog
	format  *Formatter
}

// NewPages creates the HTML page handlers
func NewPages(statsSvc stats.Service, buildSvc build.Service, catalog equipment.Catalog, format *Formatter) *Pages {
	return &Pages{
		stats:   statsSvc,
		builds:  buildSvc,
		catalog: catalog,
		format:  format,
	}
}

// Routes mounts the page handlers on r
func (p *Pages) Routes(r chi.Router) {
	r.Get("/", p.HandleDashboard)
	r.Get("/builds", p.HandleBuilds)
	r.Post("/builds", p.HandleCreateBuild)
	r.Post("/builds/{id}", p.HandleUpdateBuild)
	r.Post("/builds/{id}/delete", p.HandleDeleteBuild)
}

// HandleDashboard renders the stats summary for ?period= (default daily)
func (p *Pages) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get(QueryPeriod)
	if period == "" {
		period = domain.PeriodDaily
	}

	summary, err := p.stats.GetSummary(r.Context(), period)
	if err != nil {
		logger.FromContext(r.Context()).Error(LogMsgStatsFailed, "period", period, "error", err)
		p.render(w, r, http.StatusInternalServerError, TitleDashboard, Flash(MsgStatsFailed, nil))
		return
	}
	p.render(w, r, http.StatusOK, TitleDashboard, Dashboard(summary, p.format))
}

// HandleBuilds renders the builds page. ?edit={id} loads that build into the
// form; ?content_type= and ?character= filter the cards.
func (p *Pages) HandleBuilds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := BuildsPageData{Form: domain.Build{ContentType: domain.ContentPvESolo}}
	status := http.StatusOK

	if raw := q.Get(QueryEdit); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		var target *domain.Build
		if err == nil {
			target, err = p.builds.GetBuild(r.Context(), id)
		}
		if err != nil {
			status = http.StatusNotFound
			data.Error = MsgBuildNotFound
		} else {
			data.Form = *target
		}
	}

	p.renderBuilds(w, r, status, data, filterFromQuery(r))
}

// HandleCreateBuild saves the posted form as a new build
func (p *Pages) HandleCreateBuild(w http.ResponseWriter, r *http.Request) {
	b := formBuild(r)
	if !p.checkRequired(w, r, b) {
		return
	}
	if err := p.builds.CreateBuild(r.Context(), b); err != nil {
		p.rejectForm(w, r, b, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgBuildFormSaved, "build_id", b.ID)
	http.Redirect(w, r, "/builds#build-"+strconv.FormatInt(b.ID, 10), http.StatusSeeOther)
}

// HandleUpdateBuild replaces the build named in the path with the posted form
func (p *Pages) HandleUpdateBuild(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b := formBuild(r)
	b.ID = id
	if !p.checkRequired(w, r, b) {
		return
	}
	if err := p.builds.UpdateBuild(r.Context(), id, b); err != nil {
		p.rejectForm(w, r, b, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgBuildFormSaved, "build_id", id)
	http.Redirect(w, r, "/builds#build-"+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// HandleDeleteBuild removes a build and returns to the list
func (p *Pages) HandleDeleteBuild(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := p.builds.DeleteBuild(r.Context(), id); err != nil {
		p.rejectForm(w, r, &domain.Build{ContentType: domain.ContentPvESolo}, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgBuildFormDeleted, "build_id", id)
	http.Redirect(w, r, "/builds", http.StatusSeeOther)
}

func (p *Pages) checkRequired(w http.ResponseWriter, r *http.Request, b *domain.Build) bool {
	if strings.TrimSpace(b.Name) != "" && strings.TrimSpace(b.PrimaryWeapon) != "" {
		return true
	}
	logger.FromContext(r.Context()).Info(LogMsgBuildFormInvalid, "reason", "missing required fields")
	p.renderBuilds(w, r, http.StatusBadRequest, BuildsPageData{Form: *b, Error: MsgRequiredFields}, domain.BuildFilter{})
	return false
}

// rejectForm re-renders the page with the submitted values and the reason
// the service refused them
func (p *Pages) rejectForm(w http.ResponseWriter, r *http.Request, b *domain.Build, err error) {
	data := BuildsPageData{Form: *b}
	status := http.StatusInternalServerError
	data.Error = MsgGenericFailure

	var unknown *equipment.UnknownEquipmentError
	switch {
	case errors.As(err, &unknown):
		status = http.StatusUnprocessableEntity
		data.Error = MsgUnknownItems
		for _, m := range unknown.Mismatches {
			data.ErrorDetails = append(data.ErrorDetails, m.String())
		}
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		data.Error = err.Error()
	case errors.Is(err, domain.ErrRecordNotFound):
		status = http.StatusNotFound
		data.Error = MsgBuildNotFound
		data.Form = domain.Build{ContentType: domain.ContentPvESolo}
	case errors.Is(err, domain.ErrResourceMissing):
		status = http.StatusServiceUnavailable
		data.Error = MsgCatalogNotFound
	}

	logger.FromContext(r.Context()).Warn(LogMsgBuildFormInvalid, "status", status, "error", err)
	p.renderBuilds(w, r, status, data, domain.BuildFilter{})
}

func (p *Pages) renderBuilds(w http.ResponseWriter, r *http.Request, status int, data BuildsPageData, filter domain.BuildFilter) {
	ctx := r.Context()

	views, err := p.builds.ListBuildViews(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgBuildsFailed, "error", err)
		if data.Error == "" {
			data.Error = MsgBuildsFailed
		}
		status = http.StatusInternalServerError
	}
	data.Views = views
	data.Filter = filter
	data.Characters = p.stats.Characters(ctx)
	data.Options = make(map[domain.Slot][]string, len(domain.Slots))
	for _, slot := range domain.Slots {
		data.Options[slot] = p.catalog.Names(ctx, slot.Category())
	}

	p.render(w, r, status, TitleBuilds, BuildsPage(data, p.format))
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	templ.Handler(Layout(title, body), templ.WithStatus(status), templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		logger.FromContext(r.Context()).Error(LogMsgRenderFailed, "path", r.URL.Path, "error", err)
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, MsgGenericFailure, http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}

func filterFromQuery(r *http.Request) domain.BuildFilter {
	q := r.URL.Query()
	return domain.BuildFilter{
		ContentType: domain.ContentType(domain.NormalizeFilter(q.Get(FieldContentType))),
		Character:   domain.NormalizeFilter(q.Get(FieldCharacter)),
	}
}

func formBuild(r *http.Request) *domain.Build {
	b := &domain.Build{
		Name:        r.PostFormValue(FieldName),
		ContentType: domain.ContentType(r.PostFormValue(FieldContentType)),
		Character:   r.PostFormValue(FieldCharacter),
		Notes:       r.PostFormValue(FieldNotes),
	}
	for _, slot := range domain.Slots {
		b.SetSlot(slot, r.PostFormValue(string(slot)))
	}
	return b
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, MsgBuildNotFound, http.StatusNotFound)
		return 0, false
	}
	return id, true
}
