package server

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"zonecraft/internal/domain"
	"zonecraft/internal/engine"
	"zonecraft/pkg/logger"
)

// DebugHandler exposes the zone service state over HTTP.
type DebugHandler struct {
	Service *engine.ZoneService
}

func NewDebugHandler(s *engine.ZoneService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes adds the /debug/ endpoints to mux.
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/zone", h.handleZone)
	mux.HandleFunc("/debug/census", h.handleCensus)
	mux.HandleFunc("/debug/instances", h.handleInstances)
	mux.HandleFunc("/debug/layout", h.handleLayout)
	mux.HandleFunc("/debug/tile", h.handleTile)
}

// /debug/zone - snapshot of the active zone
func (h *DebugHandler) handleZone(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Snapshot()
	if snap == nil {
		http.Error(w, "No active zone", http.StatusNotFound)
		return
	}
	writeJSON(w, snap)
}

// /debug/census - entity counts per kind
func (h *DebugHandler) handleCensus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Census())
}

// /debug/instances - configured instance names
func (h *DebugHandler) handleInstances(w http.ResponseWriter, r *http.Request) {
	names := h.Service.InstanceNames()
	sort.Strings(names)
	writeJSON(w, names)
}

// /debug/layout?instance=forest&seed=7 - generates a layout without
// activating it
func (h *DebugHandler) handleLayout(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("instance")
	seed, err := strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64)
	if name == "" || err != nil {
		http.Error(w, "instance and numeric seed are required", http.StatusBadRequest)
		return
	}

	layout, report, err := h.Service.GenerateLayout(name, seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	type layoutSummary struct {
		Width     int            `json:"width"`
		Height    int            `json:"height"`
		Colliders int            `json:"colliders"`
		Markers   map[string]int `json:"markers"`
		Skipped   int            `json:"prefabsSkipped"`
	}
	size := layout.Size()
	summary := layoutSummary{
		Width:     size.Width,
		Height:    size.Height,
		Colliders: len(layout.Colliders()),
		Markers:   make(map[string]int),
		Skipped:   len(report.PrefabsSkipped),
	}
	for t, ps := range layout.MarkerTable() {
		summary.Markers[t.String()] = len(ps)
	}
	writeJSON(w, summary)
}

// /debug/tile?x=-16&y=48 - the tile under a world point of the active zone
func (h *DebugHandler) handleTile(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		http.Error(w, "numeric x and y are required", http.StatusBadRequest)
		return
	}
	if h.Service.Current() == nil {
		http.Error(w, "No active zone", http.StatusNotFound)
		return
	}

	type tileView struct {
		Tile     domain.Position `json:"tile"`
		Type     string          `json:"type,omitempty"`
		InBounds bool            `json:"inBounds"`
	}
	pos, tile, ok := h.Service.TileAt(domain.Vec2{X: x, Y: y})
	view := tileView{Tile: pos, InBounds: ok}
	if ok {
		view.Type = tile.String()
	}
	writeJSON(w, view)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Any origin may read debug state.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Error("encoding debug response")
	}
}
