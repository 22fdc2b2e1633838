package api

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/planview/pkg/buildinfo"
	"github.com/matzehuels/planview/pkg/config"
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/observability"
	"github.com/matzehuels/planview/pkg/office"
	"github.com/matzehuels/planview/pkg/pipeline"
	"github.com/matzehuels/planview/pkg/sink"
)

type healthBody struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleOffice(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")
	if !slices.Contains(office.Views, view) {
		s.writeError(w, r, http.StatusNotFound, errors.NewField(errors.ErrCodeInvalidInput, "view",
			"unknown view %q (expected %s or %s)", view, office.ViewTopDown, office.ViewFrontElevation))
		return
	}
	s.render(w, r, pipeline.Options{Kind: pipeline.KindOffice, View: view})
}

func (s *Server) handleGarden(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, pipeline.Options{Kind: pipeline.KindGarden, Title: r.URL.Query().Get("title")})
}

// render runs the pipeline for one view in one format and writes the artifact.
func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	format, dpi, err := parseQuery(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	opts.Formats = []string{string(format)}
	opts.DPI = dpi
	opts.Logger = s.logger

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.writeError(w, r, status, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	doc, err := pipeline.LoadBytes(body, config.FormatFromContentType(r.Header.Get("Content-Type")))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	v := result.Views[0]
	cacheStatus := "miss"
	if v.CacheHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("X-Cache", cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(v.Artifacts[string(format)])
}

func parseQuery(r *http.Request) (sink.Format, float64, error) {
	q := r.URL.Query()

	format := sink.FormatSVG
	if f := q.Get("format"); f != "" {
		var err error
		if format, err = sink.ParseFormat(f); err != nil {
			return "", 0, err
		}
	}

	dpi := float64(sink.DefaultDPI)
	if d := q.Get("dpi"); d != "" {
		v, err := strconv.ParseFloat(d, 64)
		if err != nil || v <= 0 || v > 2400 {
			return "", 0, errors.NewField(errors.ErrCodeInvalidFormat, "dpi", "dpi must be a number in (0, 2400], got %q", d)
		}
		dpi = v
	}
	return format, dpi, nil
}

type errorBody struct {
	Code      string `json:"code"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusFor maps an error to an HTTP status: malformed requests are 400,
// well-formed documents that fail validation are 422, the rest 500.
func StatusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeMissingField, errors.ErrCodeInvalidGeometry, errors.ErrCodeUnknownSectionKind,
		errors.ErrCodeEmptySectionList, errors.ErrCodeInvalidInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.writeError(w, r, StatusFor(err), err)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	body := errorBody{
		Code:      string(errors.GetCode(err)),
		Field:     errors.GetField(err),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("render failed", "id", body.RequestID, "err", err)
		if body.Code == "" {
			body.Code = string(errors.ErrCodeInternal)
			body.Message = "internal error"
		}
	}
	method, route := r.Method, r.URL.Path
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		route = rc.RoutePattern()
	}
	observability.HTTP().OnError(r.Context(), method, route, err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
