package events

import "github.com/atomicstack/tmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Lock(path string, acquired bool) {
	logging.Trace("app.lock", map[string]interface{}{"path": path, "acquired": acquired})
}

func (AppTracer) Exit(code int) {
	logging.Trace("app.exit", map[string]interface{}{"code": code})
}
