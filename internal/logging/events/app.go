package events

import "github.com/atomicstack/clip-keeper/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(lines int, invocation string) {
	logging.Trace("app.finish", map[string]interface{}{"lines": lines, "invocation": invocation})
}

func (AppTracer) List(root string, entries int) {
	logging.Trace("app.list", map[string]interface{}{"root": root, "entries": entries})
}
