package events

import "github.com/atomicstack/clip-keeper/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) React(menu, event, input, directive string) {
	logging.Trace("menu.react", map[string]interface{}{
		"menu":      menu,
		"event":     event,
		"input":     input,
		"directive": directive,
	})
}

func (MenuTracer) Transition(from, to string, entries int) {
	logging.Trace("menu.transition", map[string]interface{}{"from": from, "to": to, "entries": entries})
}

func (MenuTracer) Complete(partial, previous, output string) {
	logging.Trace("menu.complete", map[string]interface{}{
		"partial":  partial,
		"previous": previous,
		"output":   output,
	})
}

func (MenuTracer) Error(menu string, err error) {
	if err == nil {
		return
	}
	logging.Trace("menu.error", map[string]interface{}{"menu": menu, "error": err.Error()})
}
