package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/KaramelBytes/beanview/internal/views"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if views.IsRenderError(err) {
		status = http.StatusBadRequest
	} else {
		a.log.Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	writeJSON(w, status, errorBody{Error: err.Error(), Code: views.Code(err)})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"table_id": a.table.ID,
		"rows":     a.table.Len(),
	})
}

func (a *App) handleControls(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.controls)
}

func (a *App) handleTable(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, views.RenderTable(a.table))
}

func (a *App) handleHistogram(w http.ResponseWriter, r *http.Request) {
	minScore := a.controls.MinScore.Default
	if raw := strings.TrimSpace(r.URL.Query().Get("min_score")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			a.writeError(w, r, &views.ParameterError{Name: "min_score", Value: raw, Reason: "not an integer"})
			return
		}
		minScore = n
	}
	h, err := a.renderer.ScoreHistogram(a.table, minScore)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (a *App) handleScatter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cat1 := valueOr(q.Get("cat1"), a.controls.Category1)
	cat2 := valueOr(q.Get("cat2"), a.controls.Category2)
	s, err := a.renderer.CategoryScatter(a.table, cat1, cat2)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (a *App) handleCountries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c1 := valueOr(q.Get("country1"), a.controls.Country1)
	c2 := valueOr(q.Get("country2"), a.controls.Country2)
	normalize := a.controls.Normalize
	if raw := strings.TrimSpace(q.Get("normalize")); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			a.writeError(w, r, &views.ParameterError{Name: "normalize", Value: raw, Reason: "not a boolean"})
			return
		}
		normalize = b
	}
	h, err := a.renderer.CountryHistogram(a.table, c1, c2, normalize)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
