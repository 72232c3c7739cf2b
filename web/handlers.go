package web

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/mcdash/playerstats/chart"
	"github.com/mcdash/playerstats/core/concurrency"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/safedep/dry/log"
)

// descriptorResponse is the JSON form of a loaded chart.
type descriptorResponse struct {
	Preset preset.Preset      `json:"preset"`
	Window preset.Window      `json:"window"`
	Bucket int                `json:"bucketMinutes"`
	Series concurrency.Series `json:"series"`
	Chart  chart.Spec         `json:"chart"`
}

// selectedPreset resolves the preset named by the request, falling back to
// the default preset.
func (s *Server) selectedPreset(r *http.Request) preset.Preset {
	id := r.URL.Query().Get("preset")
	if id == "" {
		id = s.defaultPreset
	}
	return preset.Resolve(id)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := s.selectedPreset(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderIndex(w, s.indexData(p)); err != nil {
		log.Errorf("failed to render index: %v", err)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	p := s.selectedPreset(r)
	res := s.loader.Load(r.Context(), p)
	spec := s.buildSpec(p, res.Series())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderLineChart(w, spec); err != nil {
		log.Errorf("failed to render chart: %v", err)
	}
}

func (s *Server) handleConcurrency(w http.ResponseWriter, r *http.Request) {
	p := s.selectedPreset(r)
	res := s.loader.Load(r.Context(), p)
	series := res.Series()

	writeJSON(w, http.StatusOK, descriptorResponse{
		Preset: p,
		Window: res.Window,
		Bucket: res.Bucket,
		Series: series,
		Chart:  s.buildSpec(p, series),
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) buildSpec(p preset.Preset, series concurrency.Series) chart.Spec {
	return chart.Build(chart.Input{
		Preset:     p,
		Series:     series,
		Translator: s.translator,
		Location:   s.location,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Errorf("failed to marshal JSON response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
