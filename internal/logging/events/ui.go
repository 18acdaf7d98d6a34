package events

import "github.com/atomicstack/tmenu/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
)

func (UITracer) Mode(from, to string) {
	logging.Trace("ui.mode", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(cursor, visible int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor, "visible": visible})
}

func (UITracer) Select(name, filter string) {
	logging.Trace("ui.select", map[string]interface{}{"name": name, "filter": filter})
}

func (UITracer) Quit(mode string) {
	logging.Trace("ui.quit", map[string]interface{}{"mode": mode})
}

func (FilterTracer) Append(filter string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter, "matches": matches})
}

func (FilterTracer) Backspace(filter string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter, "matches": matches})
}

func (FilterTracer) Cleared(matches int) {
	logging.Trace("filter.clear", map[string]interface{}{"matches": matches})
}

func (FilterTracer) Committed(filter string) {
	logging.Trace("filter.commit", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Reverted(from, to string) {
	logging.Trace("filter.revert", map[string]interface{}{"from": from, "to": to})
}
