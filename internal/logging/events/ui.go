package events

import "github.com/atomicstack/clip-keeper/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

// Key records a key the model translated into a menu event.
func (UITracer) Key(levelID, key, event string) {
	logging.Trace("ui.key", map[string]interface{}{"level": levelID, "key": key, "event": event})
}

func (UITracer) MenuCursor(levelID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"level": levelID, "cursor": cursor})
}

func (UITracer) Reload(levelID string, items int, filter string) {
	logging.Trace("ui.reload", map[string]interface{}{"level": levelID, "items": items, "filter": filter})
}

func (UITracer) Fallback(levelID, event string) {
	logging.Trace("ui.fallback", map[string]interface{}{"level": levelID, "event": event})
}

func (UITracer) Exit(levelID string, cancelled bool) {
	logging.Trace("ui.exit", map[string]interface{}{"level": levelID, "cancelled": cancelled})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

// Copy records a clipboard write of an entry label, never of a secret.
func (ActionTracer) Copy(label string, err error) {
	payload := map[string]interface{}{"label": label}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("action.copy", payload)
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

func (FilterTracer) WordBackspace(levelID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Cursor(levelID string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"level": levelID, "cursor": pos})
}

func (FilterTracer) CursorWord(levelID string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"level": levelID, "cursor": pos})
}

func (FilterTracer) Append(levelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": levelID, "filter": filter})
}
