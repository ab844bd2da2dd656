package report

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/de-tools/perfreport/pkg/adapters"
	"github.com/de-tools/perfreport/pkg/models/api"
	reportsvc "github.com/de-tools/perfreport/pkg/services/report"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	maxBodyBytes  = 32 << 20
	maxExtraPages = 100
)

type Handler struct {
	defaults reportsvc.Settings
}

func NewHandler(defaults reportsvc.Settings) *Handler {
	return &Handler{defaults: defaults}
}

// RenderReport returns every page of the report rendered from the request body
func (h *Handler) RenderReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	svc, dataset, ok := h.prepare(w, r)
	if !ok {
		return
	}
	docs := svc.Render(ctx, dataset)

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapReportDocumentsDomainToApi(docs))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode report")
	}
}

// RenderPage returns a single page as Markdown
func (h *Handler) RenderPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		http.Error(w, "page must be a number", http.StatusBadRequest)
		return
	}

	svc, dataset, ok := h.prepare(w, r)
	if !ok {
		return
	}
	docs := svc.Render(ctx, dataset)
	if page < 1 || page > len(docs) {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write([]byte(docs[page-1].Text)); err != nil {
		logger.Error().
			Err(err).
			Int("page", page).
			Msg("failed to write report page")
	}
}

func (h *Handler) prepare(w http.ResponseWriter, r *http.Request) (reportsvc.Service, api.ComparisonDataset, bool) {
	logger := zerolog.Ctx(r.Context())
	settings := h.defaults

	if v := r.URL.Query().Get("extra_pages"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "extra_pages must be a non-negative number", http.StatusBadRequest)
			return nil, api.ComparisonDataset{}, false
		}
		if n > maxExtraPages {
			http.Error(w, "extra_pages must not exceed "+strconv.Itoa(maxExtraPages), http.StatusBadRequest)
			return nil, api.ComparisonDataset{}, false
		}
		settings.ExtraPages = n
		settings.MaxEntriesPerPage = 0
	}

	var dataset api.ComparisonDataset
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&dataset); err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to decode comparison dataset")
		http.Error(w, "invalid comparison dataset", http.StatusBadRequest)
		return nil, api.ComparisonDataset{}, false
	}

	return reportsvc.NewService(settings, nil), dataset, true
}
