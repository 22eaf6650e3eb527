package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/cristianoliveira/dexview/internal/app"
	"github.com/cristianoliveira/dexview/internal/format"
	"github.com/go-chi/chi/v5"
)

// handleHealth reports whether the catalog has been published.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"loaded": s.session.Loaded(),
	})
}

// handleListItems returns one page of the filtered catalog.
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	b := app.NewBrowser(s.pageSize, s.provider)
	b.SetQuery(query.Get("q"))
	b.SetType(query.Get("type"))
	if fav, err := strconv.ParseBool(query.Get("favorites")); err == nil {
		b.SetFavoritesOnly(fav)
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		b.SetPage(page)
	}

	respondJSON(w, http.StatusOK, s.session.View(b))
}

// handleGetItem returns the catalog entry and detail record for one creature.
// Names are accepted as well as ids.
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(chi.URLParam(r, "id"))
	if key == "" {
		respondError(w, http.StatusBadRequest, "Missing creature id")
		return
	}

	resp := detailResponse{}
	if item, ok := s.session.Find(key); ok {
		resp.Item = &item
	}

	detail, err := s.session.DetailFor(r.Context(), key)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}
	resp.Detail = format.NewDetailRecord(detail, s.session.Favorites().Contains(detail.ID))

	respondJSON(w, http.StatusOK, resp)
}

// handleGetTypes returns the type taxonomy.
func (s *Server) handleGetTypes(w http.ResponseWriter, r *http.Request) {
	types := s.session.Types()
	if types == nil {
		types = []string{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"types":       types,
		"total_count": len(types),
	})
}

// handleGetFavorites returns the favorite ids in ascending order.
func (s *Server) handleGetFavorites(w http.ResponseWriter, r *http.Request) {
	ids := s.session.Favorites().IDs()
	if ids == nil {
		ids = []int{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ids":         ids,
		"total_count": len(ids),
	})
}

// handleToggleFavorite flips one id and returns the new membership.
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid creature id")
		return
	}

	added, err := s.session.ToggleFavorite(id)
	if err != nil {
		respondError(w, statusFor(err), "Failed to save favorites")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":       id,
		"favorite": added,
	})
}
