package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"splatstat/internal/results"
)

// Controller runs the live UI and implements results.ScanObserver.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_ = program.Start()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnScanStart forwards scan start events to the UI.
func (c *Controller) OnScanStart(root string, candidates int) {
	c.send(Event{Kind: EventScanStart, Root: root, Candidates: candidates})
}

// OnCaseEvent forwards per-case diagnostics to the UI.
func (c *Controller) OnCaseEvent(event results.CaseEvent) {
	c.send(Event{Kind: EventCase, Case: event})
}

// OnScanEnd forwards the final counts to the UI and closes it.
func (c *Controller) OnScanEnd(collection results.Collection) {
	c.send(Event{
		Kind:   EventScanEnd,
		Counts: collection.Counts,
		Scenes: collection.NumScenes(),
		Cases:  collection.NumCases(),
	})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
