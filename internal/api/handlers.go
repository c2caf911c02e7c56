package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mlietz/pagezone/pkg/buildinfo"
	"github.com/mlietz/pagezone/pkg/errors"
	"github.com/mlietz/pagezone/pkg/render"
	"github.com/mlietz/pagezone/pkg/snapshot"
	"github.com/mlietz/pagezone/pkg/zone"
)

// zoneView is the wire representation of one live zone.
type zoneView struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Height     float64 `json:"height"`
	Top        float64 `json:"top"`
	MinHeight  float64 `json:"min_height"`
	MaxHeight  float64 `json:"max_height"`
	Adjustable bool    `json:"adjustable"`
}

func viewOf(z *zone.Zone) zoneView {
	return zoneView{
		ID:         z.ID,
		Type:       string(z.Type),
		Height:     z.CurrentHeight,
		Top:        z.Top(),
		MinHeight:  z.Constraints.MinHeight,
		MaxHeight:  z.Constraints.MaxHeight,
		Adjustable: z.Constraints.Adjustable,
	}
}

func (s *Server) pageViews() []zoneView {
	page := s.ctl.Page()
	views := make([]zoneView, 0, len(page.Zones))
	for _, z := range page.Zones {
		views = append(views, viewOf(z))
	}
	return views
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleListZones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pageViews())
}

type heightRequest struct {
	Height float64 `json:"height"`
}

func (s *Server) handleSetHeight(w http.ResponseWriter, r *http.Request) {
	var req heightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	z, err := s.lookupZone(id)
	if err != nil {
		writeError(w, err)
		return
	}

	committed := s.ctl.SetHeight(id, req.Height)
	writeJSON(w, http.StatusOK, map[string]any{
		"committed": committed,
		"zone":      viewOf(z),
	})
}

type adjustRequest struct {
	Delta float64 `json:"delta"`
}

func (s *Server) handleAdjust(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}

	id := chi.URLParam(r, "id")
	z, err := s.lookupZone(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !s.ctl.EditMode() {
		writeError(w, errors.New(errors.ErrCodeNotAdjustable, "edit mode is off"))
		return
	}

	committed := s.ctl.Adjust(id, req.Delta)
	writeJSON(w, http.StatusOK, map[string]any{
		"committed": committed,
		"zone":      viewOf(z),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	z, err := s.lookupZone(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !s.ctl.EditMode() {
		writeError(w, errors.New(errors.ErrCodeNotAdjustable, "edit mode is off"))
		return
	}

	committed := s.ctl.Reset(id)
	writeJSON(w, http.StatusOK, map[string]any{
		"committed": committed,
		"zone":      viewOf(z),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctl.Engine().ValidatePageLayout())
}

func (s *Server) handleGetEditMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": s.ctl.EditMode()})
}

type editModeRequest struct {
	Enabled bool `json:"enabled"`
}

func (s *Server) handleSetEditMode(w http.ResponseWriter, r *http.Request) {
	var req editModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}
	s.ctl.SetEditMode(req.Enabled)
	writeJSON(w, http.StatusOK, map[string]bool{"enabled": s.ctl.EditMode()})
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctl.Engine().GetZoneData())
}

func (s *Server) handleApplySnapshot(w http.ResponseWriter, r *http.Request) {
	var snap []zone.Data
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidSnapshot, "invalid snapshot body"))
		return
	}

	s.ctl.ApplySnapshot(snap)
	writeJSON(w, http.StatusOK, s.pageViews())
}

func (s *Server) handleListStored(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "list snapshots"))
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleSaveStored(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	snap := snapshot.New(name, s.ctl.Engine().GetZoneData())
	if err := s.store.Save(r.Context(), snap); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

func (s *Server) handleGetStored(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRestoreStored(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}

	s.ctl.ApplySnapshot(snap.Zones)
	writeJSON(w, http.StatusOK, s.pageViews())
}

func (s *Server) handleDeleteStored(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	svg := render.SVG(s.ctl.Page())
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

// lookupZone resolves a path id against the live page.
func (s *Server) lookupZone(id string) (*zone.Zone, error) {
	z := s.ctl.Page().Zone(id)
	if z == nil {
		return nil, errors.New(errors.ErrCodeZoneNotFound, "no zone with id %q", id)
	}
	return z, nil
}

// ============================================================================
// Response Helpers
// ============================================================================

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidProfile,
		errors.ErrCodeInvalidSnapshot, errors.ErrCodeInvalidDocument,
		errors.ErrCodeUnknownZoneType:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeZoneNotFound,
		errors.ErrCodeSnapshotNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeNotAdjustable, errors.ErrCodePageOverflow:
		status = http.StatusConflict
	case errors.ErrCodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}
