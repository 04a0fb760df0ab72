package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/mwhite7112/woodpantry-recipes/internal/logging"
	"github.com/mwhite7112/woodpantry-recipes/internal/metrics"
	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
	"github.com/mwhite7112/woodpantry-recipes/internal/scale"
	"github.com/mwhite7112/woodpantry-recipes/internal/service"
	"github.com/mwhite7112/woodpantry-recipes/internal/store"
)

// NewRouter wires up all routes with the provided Service.
func NewRouter(svc *service.Service, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware)
	r.Use(m.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Get("/recipes", handleListRecipes(svc))
	r.Get("/recipes/search", handleSearch(svc))
	r.Get("/recipes/{id}", handleGetRecipe(svc, m))
	r.Post("/scale", handleScale(m))
	r.Post("/normalize", handleNormalize)

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

// --- list ---

func handleListRecipes(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.Store().ListRecipes(r.Context())
		if err != nil {
			jsonError(w, "failed to list recipes", http.StatusInternalServerError, err)
			return
		}
		out := make([]recipe.Summary, 0, len(recipes))
		for _, rec := range recipes {
			out = append(out, rec.Summary())
		}
		jsonOK(w, out)
	}
}

// --- search ---

type searchResponse struct {
	Recipe     recipe.Summary `json:"recipe"`
	Confidence float64        `json:"confidence"`
}

func handleSearch(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if service.Normalize(q) == "" {
			jsonError(w, "q is required", http.StatusBadRequest)
			return
		}
		result, err := svc.Find(r.Context(), q)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				jsonError(w, "no matching recipe", http.StatusNotFound)
				return
			}
			jsonError(w, "search failed", http.StatusInternalServerError, err)
			return
		}
		jsonOK(w, searchResponse{
			Recipe:     result.Recipe.Summary(),
			Confidence: result.Confidence,
		})
	}
}

// --- get ---

func handleGetRecipe(svc *service.Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			jsonError(w, "invalid id", http.StatusBadRequest)
			return
		}
		servings := 0
		if s := r.URL.Query().Get("servings"); s != "" {
			servings, err = strconv.Atoi(s)
			if err != nil || servings < 1 {
				jsonError(w, "servings must be a positive integer", http.StatusBadRequest)
				return
			}
		}
		view, err := svc.View(r.Context(), id, servings)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				jsonError(w, "recipe not found", http.StatusNotFound)
			case errors.Is(err, service.ErrUnscalable):
				jsonError(w, "recipe has no serving count", http.StatusUnprocessableEntity)
			case errors.Is(err, scale.ErrInvalidServings):
				jsonError(w, "servings must be a positive integer", http.StatusBadRequest)
			default:
				jsonError(w, "failed to get recipe", http.StatusInternalServerError, err)
			}
			return
		}
		m.RecipeViews.Inc()
		if view.Servings != view.OriginalServings {
			m.LinesScaled.Add(float64(len(recipe.Flatten(view.Ingredients))))
		}
		jsonOK(w, view)
	}
}

// --- scale ---

type scaleRequest struct {
	Lines            []string `json:"lines"`
	OriginalServings int      `json:"original_servings"`
	NewServings      int      `json:"new_servings"`
}

type scaleResponse struct {
	Lines []string `json:"lines"`
}

func handleScale(m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}
		lines, err := scale.Lines(req.Lines, req.OriginalServings, req.NewServings)
		if err != nil {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if lines == nil {
			lines = []string{}
		}
		if req.OriginalServings != req.NewServings {
			m.LinesScaled.Add(float64(len(lines)))
		}
		jsonOK(w, scaleResponse{Lines: lines})
	}
}

// --- normalize ---

type normalizeRequest struct {
	Content recipe.Content `json:"content"`
}

type normalizeResponse struct {
	Groups []recipe.ContentGroup  `json:"groups"`
	Steps  []recipe.NumberedGroup `json:"steps"`
}

func handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	groups := recipe.NormalizeGroups(req.Content)
	jsonOK(w, normalizeResponse{
		Groups: groups,
		Steps:  recipe.NumberSteps(groups),
	})
}

// --- helpers ---

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg}) //nolint:errcheck
}
