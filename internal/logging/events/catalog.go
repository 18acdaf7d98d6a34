package events

import "github.com/atomicstack/tmenu/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Scan(dir string) {
	logging.Trace("catalog.scan", map[string]interface{}{"dir": dir})
}

func (CatalogTracer) DirError(dir string, err error) {
	payload := map[string]interface{}{"dir": dir}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("catalog.dir-error", payload)
}

// Skip records a shortcut file that did not make it into the catalog.
func (CatalogTracer) Skip(path, reason string) {
	logging.Trace("catalog.skip", map[string]interface{}{"path": path, "reason": reason})
}

func (CatalogTracer) Built(entries int, dirs []string) {
	logging.Trace("catalog.built", map[string]interface{}{"entries": entries, "dirs": dirs})
}
