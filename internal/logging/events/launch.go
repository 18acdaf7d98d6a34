package events

import "github.com/atomicstack/tmenu/internal/logging"

type LaunchTracer struct{}

type TerminalTracer struct{}

var (
	Launch   = LaunchTracer{}
	Terminal = TerminalTracer{}
)

func (LaunchTracer) Start(name, command string) {
	logging.Trace("launch.start", map[string]interface{}{"name": name, "command": command})
}

func (LaunchTracer) Spawned(name string, pid int) {
	logging.Trace("launch.spawned", map[string]interface{}{"name": name, "pid": pid})
}

func (LaunchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.error", map[string]interface{}{"error": err.Error()})
}

func (TerminalTracer) Capture(isTerminal bool) {
	logging.Trace("terminal.capture", map[string]interface{}{"tty": isTerminal})
}

func (TerminalTracer) Restore(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("terminal.restore", payload)
}
