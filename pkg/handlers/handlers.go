package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"path/filepath"
	"time"

	"github.com/eknkc/pug"
	"github.com/eknkc/pug/compiler"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"studio-portfolio/pkg/config"
	"studio-portfolio/pkg/i18n"
	"studio-portfolio/pkg/logging"
	"studio-portfolio/pkg/models"
	"studio-portfolio/pkg/portfolio"
	"studio-portfolio/pkg/services"
)

const (
	// ReloadRequests is the number of reloads allowed per ReloadPeriod
	ReloadRequests = 5
	// ReloadPeriod is the window for reload rate limiting
	ReloadPeriod = time.Minute
)

// Handler serves the portfolio pages and the admin endpoints
type Handler struct {
	svc     *services.Service
	cfg     *config.Config
	limiter *rate.Limiter
}

// New creates a handler backed by svc
func New(svc *services.Service) *Handler {
	return &Handler{
		svc:     svc,
		cfg:     svc.Config(),
		limiter: rate.NewLimiter(rate.Every(ReloadPeriod/ReloadRequests), ReloadRequests),
	}
}

// Router wires every route. Admin routes are mounted under the secret key
// and only when one is configured.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.HomeHandler).Methods(http.MethodGet)
	r.HandleFunc("/portfolio", h.PortfolioHandler).Methods(http.MethodGet)
	r.HandleFunc("/portfolio/{id}", h.LightboxHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/portfolio", h.PortfolioAPIHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/portfolio/{id}", h.ItemAPIHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	if h.cfg.SecretKey != "" {
		admin := r.PathPrefix("/" + h.cfg.SecretKey).Subrouter()
		admin.HandleFunc("/feed", h.FeedHandler).Methods(http.MethodGet)
		admin.HandleFunc("/reload", h.ReloadHandler).Methods(http.MethodPost)
	}

	r.PathPrefix("/").Handler(http.FileServer(http.Dir("./public")))
	return r
}

func (h *Handler) language(r *http.Request) models.Language {
	fallback := models.ParseLanguage(h.cfg.DefaultLanguage)
	return i18n.Negotiate(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"), fallback)
}

// execute compiles a pug view from the views directory and runs it into a buffer
func (h *Handler) execute(view string, data interface{}) (*bytes.Buffer, error) {
	dir, err := filepath.Abs(h.cfg.ViewsDir)
	if err != nil {
		return nil, err
	}
	template, err := pug.CompileFile(view+".pug", pug.Options{Dir: compiler.FsDir(dir)})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := template.Execute(&buf, data); err != nil {
		return nil, err
	}
	return &buf, nil
}

// render writes a view with status, or a clean 500 when the view fails
func (h *Handler) render(w http.ResponseWriter, status int, view string, data interface{}) {
	buf, err := h.execute(view, data)
	if err != nil {
		logging.Logger.Error("Template error", "view", view, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError writes the error view. When the view itself fails the
// localized notice is still sent as plain text with the same status.
func (h *Handler) renderError(w http.ResponseWriter, status int, page Page) {
	buf, err := h.execute("error", page)
	if err != nil {
		logging.Logger.Error("Template error", "view", "error", "err", err)
		http.Error(w, page.Error, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Error("Failed to encode response", "err", err)
	}
}

// load fetches the gallery and renders the error page when it is unavailable
func (h *Handler) load(w http.ResponseWriter, r *http.Request, lang models.Language) ([]models.GalleryItem, bool) {
	result := h.svc.Load(r.Context())
	if result.Ready() {
		return result.Items, true
	}
	logging.Logger.Error("Gallery unavailable", "err", result.Err)
	page := newPage(lang, i18n.T(lang, "Portfolio"), r.URL.Path, r.URL.Query())
	page.Error = i18n.T(lang, "Failed to load gallery")
	h.renderError(w, http.StatusBadGateway, page)
	return nil, false
}

// HomeHandler renders the featured preview
func (h *Handler) HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := h.language(r)
	items, ok := h.load(w, r, lang)
	if !ok {
		return
	}
	logging.Logger.Debug("Generating home page", "lang", lang)
	h.render(w, http.StatusOK, "index", h.BuildHomePage(r.Context(), items, lang))
}

// PortfolioHandler renders the filterable portfolio for the selection in the query
func (h *Handler) PortfolioHandler(w http.ResponseWriter, r *http.Request) {
	lang := h.language(r)
	items, ok := h.load(w, r, lang)
	if !ok {
		return
	}
	sel := portfolio.ParseSelection(r.URL.Query())
	logging.Logger.Debug("Generating portfolio", "media", sel.Media, "group", sel.Group, "sub", sel.SubCategory)
	h.render(w, http.StatusOK, "portfolio", h.BuildPortfolioPage(r.Context(), items, sel, lang))
}

// LightboxHandler renders one open item with links to its neighbours
func (h *Handler) LightboxHandler(w http.ResponseWriter, r *http.Request) {
	lang := h.language(r)
	items, ok := h.load(w, r, lang)
	if !ok {
		return
	}

	id := mux.Vars(r)["id"]
	query := r.URL.Query()
	page, found := h.BuildLightboxPage(items, portfolio.ParseSelection(query), query.Get("featured") == "1", id, lang)
	if !found {
		logging.Logger.Info("Item not found", "id", id)
		notFound := newPage(lang, i18n.T(lang, "Portfolio"), r.URL.Path, query)
		notFound.Error = i18n.T(lang, "Item not found")
		h.renderError(w, http.StatusNotFound, notFound)
		return
	}
	h.render(w, http.StatusOK, "lightbox", page)
}

// PortfolioAPIHandler returns the portfolio view as JSON
func (h *Handler) PortfolioAPIHandler(w http.ResponseWriter, r *http.Request) {
	lang := h.language(r)
	result := h.svc.Load(r.Context())
	if !result.Ready() {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": i18n.T(lang, "Failed to load gallery")})
		return
	}
	sel := portfolio.ParseSelection(r.URL.Query())
	writeJSON(w, http.StatusOK, h.BuildPortfolioPage(r.Context(), result.Items, sel, lang))
}

// ItemAPIHandler returns one lightbox view as JSON
func (h *Handler) ItemAPIHandler(w http.ResponseWriter, r *http.Request) {
	lang := h.language(r)
	result := h.svc.Load(r.Context())
	if !result.Ready() {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": i18n.T(lang, "Failed to load gallery")})
		return
	}

	query := r.URL.Query()
	page, found := h.BuildLightboxPage(result.Items, portfolio.ParseSelection(query), query.Get("featured") == "1", mux.Vars(r)["id"], lang)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": i18n.T(lang, "Item not found")})
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// HealthHandler reports whether the gallery can be loaded
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	result := h.svc.Load(r.Context())
	if !result.Ready() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": string(result.Status),
			"error":  result.ErrorMessage(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": string(result.Status),
		"items":  len(result.Items),
	})
}
