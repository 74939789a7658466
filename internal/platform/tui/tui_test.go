package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// stubGame records what the host feeds it.
type stubGame struct {
	dts    []float64
	inputs []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset()        { g.state = core.GameState{} }

func (g *stubGame) Step(dt float64, in core.InputFrame) core.StepResult {
	g.dts = append(g.dts, dt)
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state, Exit: in.Has(core.ActionConfirm) && g.state.GameOver}
}

func (g *stubGame) Render(dst *core.Frame) {
	dst.Width, dst.Height = 800, 600
	dst.Reset(core.ColorBlack)
	dst.TitleText("stub", 50, core.ColorWhite)
}

func (g *stubGame) State() core.GameState { return g.state }

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldInput(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldInput(150 * time.Millisecond)

	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionConfirm, t0)

	f := h.Frame(t0.Add(10 * time.Millisecond))
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionConfirm) {
		t.Errorf("first frame should carry left and confirm: %v", f.Actions)
	}

	f = h.Frame(t0.Add(100 * time.Millisecond))
	if !f.Has(core.ActionLeft) {
		t.Error("left should still be held inside the window")
	}
	if f.Has(core.ActionConfirm) {
		t.Error("confirm should fire only once")
	}

	f = h.Frame(t0.Add(200 * time.Millisecond))
	if f.Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}

	// Switching direction drops the old one immediately.
	h.Press(core.ActionLeft, t0)
	h.Press(core.ActionRight, t0.Add(5*time.Millisecond))
	f = h.Frame(t0.Add(10 * time.Millisecond))
	if f.Steer() != 1 {
		t.Errorf("steer = %v, expected 1", f.Steer())
	}

	h.Reset()
	if f := h.Frame(t0.Add(10 * time.Millisecond)); len(f.Actions) != 0 {
		t.Errorf("reset should drop everything, got %v", f.Actions)
	}
}

func TestHeldInputDefaultSpansRepeatDelay(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := NewHeldInput(0)

	h.Press(core.ActionRight, t0)
	// First auto-repeat usually arrives 250-500ms after the press.
	if f := h.Frame(t0.Add(300 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("key should still be held before the first auto-repeat")
	}
	h.Press(core.ActionRight, t0.Add(350*time.Millisecond))
	if f := h.Frame(t0.Add(700 * time.Millisecond)); !f.Has(core.ActionRight) {
		t.Error("auto-repeat should extend the hold")
	}
	if f := h.Frame(t0.Add(800 * time.Millisecond)); f.Has(core.ActionRight) {
		t.Error("key should be released once repeats stop")
	}
}

// phaseGame switches to "playing" on its first step.
type phaseGame struct {
	stubGame
}

func (g *phaseGame) Step(dt float64, in core.InputFrame) core.StepResult {
	res := g.stubGame.Step(dt, in)
	g.state.Phase = "playing"
	res.State = g.state
	return res
}

func TestModelPhaseChangeDropsHeldKeys(t *testing.T) {
	g := &phaseGame{}
	m := NewModel(g, Options{})

	m.input.Press(core.ActionLeft, time.Now())
	t0 := time.Now()
	next, _ := m.Update(TickMsg(t0))
	m = next.(Model)
	next, _ = m.Update(TickMsg(t0.Add(time.Millisecond)))
	m = next.(Model)

	if len(g.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("held key should reach the step that changes phase")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("held key should be dropped after a phase change")
	}
}

func TestProject(t *testing.T) {
	f := core.NewFrame(800, 600)
	f.FillRect(core.NewRect(70, 60, 100, 40), core.ColorRed)
	f.Text("Score: 0", 400, 50, 50, core.ColorWhite)
	f.CenteredText("Press SPACE to start", 400, 300, 50, core.ColorWhite)

	s := core.NewScreen(80, 24)
	Project(f, s)

	for _, c := range []struct {
		x, y   int
		filled bool
	}{
		{7, 2, true},
		{16, 3, true},
		{6, 2, false},
		{17, 2, false},
		{7, 4, false},
	} {
		cell := s.GetCell(c.x, c.y)
		if got := cell.Rune == FillRune; got != c.filled {
			t.Errorf("cell (%d,%d) filled=%v, expected %v", c.x, c.y, got, c.filled)
		}
		if c.filled && cell.Color != core.ColorRed {
			t.Errorf("cell (%d,%d) color = %v", c.x, c.y, cell.Color)
		}
	}

	if got := s.Row(1)[40:48]; got != "Score: 0" {
		t.Errorf("HUD row = %q", s.Row(1))
	}
	if got := strings.TrimSpace(s.Row(12)); got != "Press SPACE to start" {
		t.Errorf("title row = %q", s.Row(12))
	}
	if !strings.HasPrefix(s.Row(12)[30:], "Press") {
		t.Errorf("title should start at column 30: %q", s.Row(12))
	}
}

func TestProjectEmptyFrame(t *testing.T) {
	s := core.NewScreen(10, 5)
	s.Set(0, 0, 'x')
	Project(core.NewFrame(0, 0), s)
	if s.Get(0, 0) != ' ' {
		t.Error("projecting an empty frame should still clear the screen")
	}
}

func TestModelTickDelta(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, Options{Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50}})

	t0 := time.Now()
	next, _ := m.Update(TickMsg(t0))
	m = next.(Model)
	next, _ = m.Update(TickMsg(t0.Add(40 * time.Millisecond)))
	m = next.(Model)

	if len(g.dts) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.dts))
	}
	if g.dts[0] != 1.0/50 {
		t.Errorf("first dt = %v, expected one tick interval", g.dts[0])
	}
	if g.dts[1] < 0.039 || g.dts[1] > 0.041 {
		t.Errorf("second dt = %v, expected 0.04", g.dts[1])
	}
}

func TestModelEndScreenExit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{state: core.GameState{Phase: "dead", Score: 40, GameOver: true}}
	m := NewModel(g, Options{Store: store})

	t0 := time.Now()
	next, _ := m.Update(TickMsg(t0))
	m = next.(Model)
	next, _ = m.Update(TickMsg(t0.Add(time.Millisecond)))
	m = next.(Model)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 40 || scores[0].Outcome != storage.OutcomeDead {
		t.Errorf("score should be saved exactly once, got %+v", scores)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	next, cmd := m.Update(TickMsg(t0.Add(2 * time.Millisecond)))
	m = next.(Model)

	if !m.Ended() {
		t.Fatal("confirm on an end screen should end the model")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit after the end screen")
	}
	if m.View() != "" {
		t.Error("ended model should render nothing")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&stubGame{}, Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)

	if !m.IsQuitting() || m.Ended() {
		t.Errorf("q should quit without ending: quitting=%v ended=%v", m.IsQuitting(), m.Ended())
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, Options{Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 11, TickRate: 60}})

	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Errorf("view should contain the game's title text:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines < 11 {
		t.Errorf("view has %d lines, expected playfield plus help", lines)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, "stub", "Stub", core.RuntimeConfig{ScreenW: 40, ScreenH: 20})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	sel := m.Selected()
	if sel == nil || sel.Label != "Easy" {
		t.Fatalf("expected Easy selected, got %+v", sel)
	}
	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}
}
