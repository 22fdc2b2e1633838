package pipeline

import (
	"github.com/matzehuels/planview/pkg/config"
)

// LoadFile reads a config document from disk. The format follows the file
// extension.
func LoadFile(path string) (map[string]any, error) {
	return config.Load(path)
}

// LoadBytes decodes an in-memory document, e.g. an HTTP request body.
func LoadBytes(data []byte, format config.Format) (map[string]any, error) {
	return config.Decode(data, format)
}
