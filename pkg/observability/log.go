package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements all
// three hook interfaces.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to logger, or to log.Default() if nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

func (h *LogHooks) OnLayoutStart(_ context.Context, kind string) {
	h.Logger.Debug("layout start", "kind", kind)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, kind string, sceneCount int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("layout failed", "kind", kind, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("layout done", "kind", kind, "scenes", sceneCount, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, scene string, formats []string) {
	h.Logger.Debug("render start", "scene", scene, "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, scene string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "scene", scene, "duration", d, "err", err)
		return
	}
	h.Logger.Debug("render done", "scene", scene, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {
	h.Logger.Debug("request", "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "route", route, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, route string, err error) {
	h.Logger.Debug("request error", "method", method, "route", route, "err", err)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
