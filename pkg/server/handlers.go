package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/disksort/pkg/buildinfo"
	"github.com/matzehuels/disksort/pkg/errors"
	"github.com/matzehuels/disksort/pkg/pipeline"
	"github.com/matzehuels/disksort/pkg/render"
	"github.com/matzehuels/disksort/pkg/sorting"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"algorithms": sorting.Names()})
}

// sortRequest is the POST body of /v1/sort/{algorithm}.
type sortRequest struct {
	Row   string `json:"row"`
	Trace bool   `json:"trace,omitempty"`
}

// sortResponse is the JSON answer of both sort routes.
type sortResponse struct {
	sorting.Run
	Cached bool `json:"cached"`
}

func (s *Server) handleSortLights(w http.ResponseWriter, r *http.Request) {
	lights, err := intParam(r, "lights", errors.ErrCodeInvalidLightCount)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	s.sort(w, r, pipeline.Options{
		Algorithm:  chi.URLParam(r, "algorithm"),
		LightCount: lights,
		Trace:      boolParam(r, "trace"),
	})
}

func (s *Server) handleSortRow(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, r, s.logger, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Row == "" {
		writeError(w, r, s.logger, errors.New(errors.ErrCodeInvalidRow, "row is required"))
		return
	}
	s.sort(w, r, pipeline.Options{
		Algorithm: chi.URLParam(r, "algorithm"),
		Row:       req.Row,
		Trace:     req.Trace || boolParam(r, "trace"),
	})
}

func (s *Server) sort(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	ctx := r.Context()
	format := r.URL.Query().Get("format")

	if format == "" || format == render.FormatJSON {
		report, err := s.runner.Sort(ctx, opts)
		if err != nil {
			writeError(w, r, s.logger, err)
			return
		}
		writeJSON(w, http.StatusOK, sortResponse{Run: report.Run, Cached: report.CacheInfo.SortHit})
		return
	}

	opts.Formats = []string{format}
	report, err := s.runner.Execute(ctx, opts)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	w.Header().Set("Content-Type", render.ContentType(format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report.Artifacts[format])
}

type compareResponse struct {
	Comparisons []pipeline.Comparison `json:"comparisons"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	from, err := intParam(r, "from", errors.ErrCodeInvalidLightCount)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	to, err := intParam(r, "to", errors.ErrCodeInvalidLightCount)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	rows, err := s.runner.Compare(r.Context(), r.URL.Query()["algorithm"], from, to)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, compareResponse{Comparisons: rows})
}

func intParam(r *http.Request, name string, code errors.Code) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.New(code, "query parameter %q is required", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(code, "query parameter %q must be an integer, got %q", name, raw)
	}
	return n, nil
}

func boolParam(r *http.Request, name string) bool {
	v, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return v
}
