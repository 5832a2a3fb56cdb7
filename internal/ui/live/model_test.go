package live

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"splatstat/internal/results"
)

// drive applies a message and returns the updated model.
func drive(t *testing.T, model Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := model.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", updated)
	}
	return next
}

func TestModelViewTracksScan(t *testing.T) {
	events := make(chan Event)
	model := NewModel(events, Options{NoColor: true})
	model = drive(t, model, tea.WindowSizeMsg{Width: 100, Height: 30})

	model = drive(t, model, EventMsg{Event: Event{Kind: EventScanStart, Root: "results", Candidates: 2}})
	model = drive(t, model, EventMsg{Event: Event{
		Kind: EventCase,
		Case: results.CaseEvent{Type: results.CaseLoaded, Dir: "lego_case0", Scene: "lego", CaseID: 0},
	}})

	view := model.View()
	for _, want := range []string{"Scanning results", "Cases: 1/2", "Loaded: 1", "lego"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view, got:\n%s", want, view)
		}
	}

	model = drive(t, model, EventMsg{Event: Event{
		Kind:   EventScanEnd,
		Counts: results.ScanCounts{Directories: 2, Loaded: 1, Missing: 1},
		Scenes: 1,
		Cases:  1,
	}})
	view = model.View()
	for _, want := range []string{"Missing: 1", "Scenes: 1", "Last event: scan complete"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in final view, got:\n%s", want, view)
		}
	}
}

func TestModelTickAdvancesClock(t *testing.T) {
	events := make(chan Event)
	model := NewModel(events, Options{NoColor: true})
	model = drive(t, model, EventMsg{Event: Event{Kind: EventScanStart, Root: "results", Candidates: 1}})

	later := model.now.Add(3 * time.Second)
	model = drive(t, model, tickMsg(later))
	if !model.now.Equal(later) {
		t.Fatalf("expected clock %v, got %v", later, model.now)
	}
	if !strings.Contains(model.View(), "Elapsed:") {
		t.Fatalf("expected elapsed time in view, got:\n%s", model.View())
	}
}

func TestWaitForEventQuitsOnClose(t *testing.T) {
	events := make(chan Event, 1)
	events <- Event{Kind: EventScanStart, Root: "results"}
	msg := waitForEvent(events)()
	eventMsg, ok := msg.(EventMsg)
	if !ok {
		t.Fatalf("expected EventMsg, got %T", msg)
	}
	if eventMsg.Event.Root != "results" {
		t.Fatalf("unexpected event payload: %+v", eventMsg.Event)
	}

	close(events)
	if msg := waitForEvent(events)(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message on closed channel, got %T", msg)
		}
	} else {
		t.Fatalf("expected quit message on closed channel, got nil")
	}
}

func TestColumnsForWidth(t *testing.T) {
	narrow := columnsForWidth(60)
	if narrow[0].Width != defaultColumns()[0].Width {
		t.Fatalf("expected default layout on narrow terminal, got %+v", narrow)
	}
	wide := columnsForWidth(160)
	if wide[0].Width <= defaultColumns()[0].Width {
		t.Fatalf("expected wider scene column, got %+v", wide)
	}
	if wide[len(wide)-1].Width <= defaultColumns()[len(wide)-1].Width {
		t.Fatalf("expected wider last-dir column, got %+v", wide)
	}
}
