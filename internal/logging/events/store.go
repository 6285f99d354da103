package events

import "github.com/atomicstack/clip-keeper/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Scan(kind, root string, count int) {
	logging.Trace("store.scan", map[string]interface{}{"kind": kind, "root": root, "count": count})
}

func (StoreTracer) Skip(dir string, err error) {
	payload := map[string]interface{}{"dir": dir}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("store.skip", payload)
}

func (StoreTracer) Check(root string, err error) {
	payload := map[string]interface{}{"root": root, "ok": err == nil}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("store.check", payload)
}
