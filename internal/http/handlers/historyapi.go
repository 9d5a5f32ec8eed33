package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"studioshot/internal/domain"
	"studioshot/internal/history"
)

func (a *App) HistoryList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := history.Filter{
		SceneID: q.Get("scene"),
		Query:   q.Get("q"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		f.Limit = limit
	}
	if from, err := time.Parse(time.RFC3339, q.Get("from")); err == nil {
		f.From = from
	}
	if to, err := time.Parse(time.RFC3339, q.Get("to")); err == nil {
		f.To = to
	}

	items, err := a.History.List(r.Context(), f)
	if err != nil {
		a.Logger.Error().Err(err).Msg("history: list failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load history")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) HistoryGet(w http.ResponseWriter, r *http.Request) {
	rec, err := a.History.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "unknown record")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to load record")
		return
	}
	a.json(w, http.StatusOK, rec)
}

func (a *App) HistoryDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.History.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "unknown record")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to delete record")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) HistoryClear(w http.ResponseWriter, r *http.Request) {
	if err := a.History.Clear(r.Context()); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to clear history")
		return
	}
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.History.Stats(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("history: stats failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}
	a.json(w, http.StatusOK, stats)
}
