package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/pipeline"
)

func TestCacheDir(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error: %v", err)
		}
		if want := filepath.Join("/tmp/xdg", "planview"); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")
		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir() error: %v", err)
		}
		home, _ := os.UserHomeDir()
		if want := filepath.Join(home, ".cache", "planview"); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to png", "", []string{"png"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and case", " SVG , Png ", []string{"svg", "png"}},
		{"duplicates dropped", "svg,svg,json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPipelineOptions(t *testing.T) {
	ro := renderOpts{formats: "png,svg", dpi: 150, backend: "Native"}
	opts, err := ro.pipelineOptions(pipeline.KindOffice)
	if err != nil {
		t.Fatalf("pipelineOptions: %v", err)
	}
	if opts.Kind != pipeline.KindOffice || opts.DPI != 150 || opts.Backend != "native" {
		t.Errorf("opts = %+v", opts)
	}
	if !reflect.DeepEqual(opts.Formats, []string{"png", "svg"}) {
		t.Errorf("formats = %v", opts.Formats)
	}

	tests := []struct {
		name  string
		ro    renderOpts
		field string
	}{
		{"bad format", renderOpts{formats: "gif", dpi: 300, backend: "native"}, "format"},
		{"bad backend", renderOpts{formats: "png", dpi: 300, backend: "cairo"}, "backend"},
		{"zero dpi", renderOpts{formats: "png", dpi: 0, backend: "native"}, "dpi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ro.pipelineOptions(pipeline.KindGarden)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetField(err); got != tt.field {
				t.Errorf("field = %q, want %q", got, tt.field)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := map[string]string{
		"garden_map.png":     "garden_map",
		"out/garden.map.svg": "out/garden.map",
		"noext":              "noext",
	}
	for in, want := range tests {
		if got := basePath(in); got != want {
			t.Errorf("basePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "a.svg")
	if err := writeOutput(path, []byte("<svg/>")); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("content = %q", data)
	}
}
