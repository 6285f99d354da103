package events

import "github.com/atomicstack/clip-keeper/internal/logging"

type PassTracer struct{}

var Pass = PassTracer{}

func (PassTracer) Start(binary string, args []string, pid int) {
	logging.Trace("pass.start", map[string]interface{}{"binary": binary, "args": args, "pid": pid})
}

func (PassTracer) Exit(args []string, err error) {
	payload := map[string]interface{}{"args": args, "ok": err == nil}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("pass.exit", payload)
}
