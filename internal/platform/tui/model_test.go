package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rekt-runner/internal/core"
	"github.com/vovakirdan/rekt-runner/internal/storage"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	resets    int
	steps     []time.Duration
	cols      int
	rows      int
	state     core.GameState
	crashNext bool
	candles   int
	frames    uint64
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cols, g.rows = cfg.ScreenW, cfg.ScreenH
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.steps = append(g.steps, dt)
	g.frames++
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.crashNext {
		g.crashNext = false
		g.state.GameOver = true
		return core.StepResult{State: g.state, Crashed: true}
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Resize(cols, rows int) { g.cols, g.rows = cols, rows }

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake run")
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Candles() int          { return g.candles }
func (g *fakeGame) Frames() uint64        { return g.frames }

var testLogger = log.New(io.Discard)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, testLogger, "alice", testConfig())
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g, nil)

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if g.cols != 80 || g.rows != 24 {
		t.Errorf("game sized %dx%d, expected 80x24", g.cols, g.rows)
	}
}

func TestModelTickPassesElapsedTime(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	t0 := time.Now()

	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	update(t, m, TickMsg(t0.Add(5*time.Second)))

	want := []time.Duration{0, 20 * time.Millisecond, maxFrameDelta}
	if len(g.steps) != len(want) {
		t.Fatalf("steps = %v, expected %v", g.steps, want)
	}
	for i := range want {
		if g.steps[i] != want[i] {
			t.Errorf("step %d dt = %v, expected %v", i, g.steps[i], want[i])
		}
	}
}

func TestModelPauseRestartsClock(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	t0 := time.Now()

	m = update(t, m, TickMsg(t0))
	m = update(t, m, keyRunes("p"))
	m = update(t, m, TickMsg(t0.Add(10*time.Millisecond)))
	if !m.gameState.Paused {
		t.Fatal("game should report paused")
	}

	m = update(t, m, keyRunes("p"))
	update(t, m, TickMsg(t0.Add(3*time.Second)))

	if got := g.steps[len(g.steps)-1]; got != 0 {
		t.Errorf("first step after pause dt = %v, expected 0", got)
	}
}

func TestModelSavesRunOnCrash(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{}
	m := newTestModel(t, g, store)
	g.state.Score = 1500
	g.state.PnL = 31.5
	g.candles = 4
	g.crashNext = true

	m = update(t, m, TickMsg(time.Now()))

	if m.LastRunID() == 0 {
		t.Fatal("run was not saved")
	}
	runs, err := store.TopRuns(5)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, expected 1", len(runs))
	}
	r := runs[0]
	if r.Player != "alice" || r.Score != 1500 || r.PnL != 31.5 || r.Candles != 4 || r.Frames != 1 {
		t.Errorf("saved run = %+v", r)
	}

	// Further ticks on the dead run save nothing
	update(t, m, TickMsg(time.Now()))
	if runs, _ := store.TopRuns(5); len(runs) != 1 {
		t.Errorf("got %d runs after extra tick, expected 1", len(runs))
	}
}

func TestModelSkipsEmptyRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	g := &fakeGame{crashNext: true}
	m := newTestModel(t, g, store)
	m = update(t, m, TickMsg(time.Now()))

	if m.LastRunID() != 0 {
		t.Error("zero-score run should not be saved")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc during a live run should be ignored")
	}

	g.crashNext = true
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc after a crash should return to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	next, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	m = next.(Model)
	if !m.IsQuitting() {
		t.Error("model should be quitting")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if g.resets != 1 {
		t.Errorf("resets = %d, resize should not restart", g.resets)
	}
	if g.cols != 120 || g.rows != 40 {
		t.Errorf("game sized %dx%d, expected 120x40", g.cols, g.rows)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen sized %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	if !strings.Contains(m.View(), "fake run") {
		t.Error("View should contain the game's frame")
	}
}

func TestSessionFlow(t *testing.T) {
	g := &fakeGame{}
	newGame := func() Game { return g }
	var sm tea.Model = NewSessionModel(newGame, nil, testLogger, testConfig(), "bob")

	send := func(msg tea.Msg) SessionModel {
		t.Helper()
		sm, _ = sm.Update(msg)
		return sm.(SessionModel)
	}

	s := send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.current != screenGame || g.resets != 1 {
		t.Fatalf("Run should start a game, screen=%v resets=%d", s.current, g.resets)
	}
	if s.game.player != "bob" {
		t.Errorf("player = %q, expected bob", s.game.player)
	}

	g.crashNext = true
	send(TickMsg(time.Now()))
	s = send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenMenu {
		t.Fatalf("esc after crash should show the menu, screen=%v", s.current)
	}

	s = send(tea.KeyMsg{Type: tea.KeyTab})
	if s.current != screenScores {
		t.Fatalf("tab should show scores, screen=%v", s.current)
	}
	if !strings.Contains(s.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	s = send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenMenu {
		t.Fatalf("esc should leave the scoreboard, screen=%v", s.current)
	}

	s = send(keyRunes("q"))
	if !s.quitting || s.View() != "" {
		t.Error("q on the menu should end the session")
	}
}
