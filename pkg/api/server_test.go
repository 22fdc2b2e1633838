package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planview/pkg/cache"
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/pipeline"
)

const officeYAML = `
stud: {depth: 1.5, width: 3.5}
eye_height: 60
room: {width: 108, depth: 72, height: 108}
wall: {thickness: 4.25}
pocket_door: {clear_width: 30, clear_height: 80, offset_from_right: 1.5}
window: {width: 60, height: 48}
desk: {width: 78, depth: 30, height: 30}
hvac: {width: 20, height: 14, proj_office: 8, proj_garage: 14}
bookshelf: {width: 36, depth: 12, height: 108}
platform: {width: 24, depth: 72, height_aff: 76}
`

const gardenJSON = `{
  "title": "Blueprint Garden",
  "sections": [
    {"name": "Herb Bed", "kind": "rect", "coords": [0, 0, 1, 20], "color": "#8fbc8f"}
  ]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := log.New(io.Discard)
	srv := httptest.NewServer(New(pipeline.NewRunner(c, nil, logger), logger).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, contentType, body string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Post(url, contentType, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(data)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get(HeaderRequestID) == "" {
		t.Error("missing X-Request-ID")
	}
	var body healthBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.Build.Version == "" {
		t.Errorf("body = %+v", body)
	}
}

func TestOfficeSVGThenCacheHit(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL + "/v1/office/top_down"

	resp, body := post(t, url, "application/yaml", officeYAML)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if resp.Header.Get("X-Cache") != "miss" {
		t.Errorf("first X-Cache = %q, want miss", resp.Header.Get("X-Cache"))
	}
	if !strings.Contains(body, "Pocket Door 30") {
		t.Error("SVG should contain the pocket door label")
	}

	resp, again := post(t, url, "application/yaml", officeYAML)
	if resp.Header.Get("X-Cache") != "hit" {
		t.Errorf("second X-Cache = %q, want hit", resp.Header.Get("X-Cache"))
	}
	if again != body {
		t.Error("cached body differs")
	}
}

func TestGardenJSONFormat(t *testing.T) {
	srv := newTestServer(t)
	resp, body := post(t, srv.URL+"/v1/garden?format=json&title=Plot", "application/json", gardenJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var scene map[string]any
	if err := json.Unmarshal([]byte(body), &scene); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if scene["title"] != "Plot" {
		t.Errorf("title = %v, want query override", scene["title"])
	}
}

func TestGardenPNG(t *testing.T) {
	srv := newTestServer(t)
	resp, body := post(t, srv.URL+"/v1/garden?format=png&dpi=36", "application/json", gardenJSON)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d: %s", resp.StatusCode, body)
	}
	if !strings.HasPrefix(body, "\x89PNG") {
		t.Error("body is not a PNG")
	}
}

func TestErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		ct     string
		body   string
		status int
		code   errors.Code
		field  string
	}{
		{"unknown view", "/v1/office/side", "application/yaml", officeYAML, http.StatusNotFound, errors.ErrCodeInvalidInput, "view"},
		{"bad format", "/v1/garden?format=gif", "application/json", gardenJSON, http.StatusBadRequest, errors.ErrCodeInvalidFormat, "format"},
		{"bad dpi", "/v1/garden?format=png&dpi=abc", "application/json", gardenJSON, http.StatusBadRequest, errors.ErrCodeInvalidFormat, "dpi"},
		{"malformed body", "/v1/garden", "application/json", "{", http.StatusBadRequest, errors.ErrCodeInvalidFormat, ""},
		{"missing field", "/v1/office/top_down", "application/yaml", "room: {depth: 72}", http.StatusUnprocessableEntity, errors.ErrCodeMissingField, "stud.depth"},
		{"empty sections", "/v1/garden", "application/json", `{"sections": []}`, http.StatusUnprocessableEntity, errors.ErrCodeEmptySectionList, ""},
		{"unknown kind", "/v1/garden", "application/json", `{"sections": [{"name": "A", "kind": "circle", "color": "red"}]}`, http.StatusUnprocessableEntity, errors.ErrCodeUnknownSectionKind, "sections[0].kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, srv.URL+tt.path, tt.ct, tt.body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d: %s", resp.StatusCode, tt.status, body)
			}
			var e errorBody
			if err := json.Unmarshal([]byte(body), &e); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if e.Code != string(tt.code) {
				t.Errorf("code = %q, want %q", e.Code, tt.code)
			}
			if e.Field != tt.field {
				t.Errorf("field = %q, want %q", e.Field, tt.field)
			}
			if e.RequestID == "" || e.RequestID != resp.Header.Get(HeaderRequestID) {
				t.Errorf("request_id = %q, header = %q", e.RequestID, resp.Header.Get(HeaderRequestID))
			}
		})
	}
}

func TestRequestIDPropagates(t *testing.T) {
	srv := newTestServer(t)
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want client value", got)
	}
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/v2/nothing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeInvalidGeometry, "x"), http.StatusUnprocessableEntity},
		{errors.New(errors.ErrCodeInvalidFormat, "x"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeUnsupported, "x"), http.StatusInternalServerError},
		{io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
