package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avierno/raywalk/internal/core"
	"github.com/avierno/raywalk/internal/game"
	"github.com/avierno/raywalk/internal/storage"
)

// Model is the Bubble Tea model for a first-person walk session.
type Model struct {
	walker     *game.Walker
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	startedAt  time.Time
	quitting   bool
	runSaved   bool
}

// NewModel creates a new Bubble Tea model for the given walker.
func NewModel(w *game.Walker, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		walker:     w,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	//nolint:errcheck // a too-small screen renders an overlay instead
	m.walker.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rebuilds the projection for the new terminal size. The
// walk restarts from spawn because the projection constants depend on
// the viewport dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	//nolint:errcheck // a too-small screen renders an overlay instead
	m.walker.Reset(m.config)

	return m, nil
}

// handleTick runs one fixed simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.walker.Step(m.inputFrame)
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished walk, once, best effort.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	st := m.walker.State()
	if st.Steps == 0 {
		return
	}
	//nolint:errcheck // best-effort save, quitting regardless
	m.store.SaveRun(storage.Run{
		MapID:      m.walker.MapID(),
		Steps:      st.Steps,
		Collisions: st.Collisions,
		Duration:   time.Since(m.startedAt),
	})
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.walker.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given walker.
func Run(w *game.Walker, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(w, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
