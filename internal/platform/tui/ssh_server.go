package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/avierno/raywalk/internal/config"
	"github.com/avierno/raywalk/internal/core"
	"github.com/avierno/raywalk/internal/game"
	"github.com/avierno/raywalk/internal/maps"
	"github.com/avierno/raywalk/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.raywalk/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.raywalk/runs.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves first-person walks over SSH via Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	appCfg config.Config
	loader *maps.Loader
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, appCfg config.Config, loader *maps.Loader) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raywalk-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		appCfg: appCfg,
		loader: loader,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".raywalk", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.appCfg.Viewport.TickRate,
	}

	model := NewSessionModel(s.store, s.appCfg, s.loader, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: map menu -> walk -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store     *storage.Store
	appCfg    config.Config
	loader    *maps.Loader
	config    core.RuntimeConfig
	menu      MenuModel
	walkModel *WalkModel
	inWalk    bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, appCfg config.Config, loader *maps.Loader, cfg core.RuntimeConfig) SessionModel {
	items, err := loader.List()
	if err != nil {
		items = nil
	}

	return SessionModel{
		store:  store,
		appCfg: appCfg,
		loader: loader,
		config: cfg,
		menu:   NewMenuModel(items, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inWalk && m.walkModel != nil {
		return m.updateWalk(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		mp, err := m.loader.Load(selected.ID)
		if err != nil {
			// Shouldn't happen since menu only shows discovered maps
			return m, nil
		}

		m.config = m.menu.Config() // Get possibly updated config from resize

		walkModel := NewWalkModel(game.NewWalker(m.appCfg, mp), m.store, m.config)
		m.walkModel = &walkModel
		m.inWalk = true

		return m, m.walkModel.Init()
	}

	return m, cmd
}

// updateWalk handles updates when in walk mode.
func (m SessionModel) updateWalk(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	newModel, cmd := m.walkModel.Update(msg)
	if walkModel, ok := newModel.(WalkModel); ok {
		m.walkModel = &walkModel
	}

	if m.walkModel.BackToMenu() {
		m.inWalk = false
		m.walkModel = nil
		items, err := m.loader.List()
		if err != nil {
			items = nil
		}
		m.menu = NewMenuModel(items, m.config)
		return m, m.menu.Init()
	}

	if m.walkModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inWalk && m.walkModel != nil {
		return m.walkModel.View()
	}

	return m.menu.View()
}

// WalkModel wraps a walker with back-to-menu capability for sessions.
type WalkModel struct {
	walker     *game.Walker
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	startedAt  time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewWalkModel creates a walk model for a session.
func NewWalkModel(w *game.Walker, store *storage.Store, cfg core.RuntimeConfig) WalkModel {
	return WalkModel{
		walker:     w,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init initializes the walk.
func (m WalkModel) Init() tea.Cmd {
	//nolint:errcheck // a too-small screen renders an overlay instead
	m.walker.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m WalkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		//nolint:errcheck // a too-small screen renders an overlay instead
		m.walker.Reset(m.config)
		return m, nil
	case TickMsg:
		m.walker.Step(m.inputFrame)
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m WalkModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	// B or Esc while paused returns to the map menu
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionBack && m.walker.State().Paused {
		m.saveRun()
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// saveRun records the finished walk, once, best effort.
func (m *WalkModel) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	st := m.walker.State()
	if st.Steps == 0 {
		return
	}
	//nolint:errcheck // best-effort save
	m.store.SaveRun(storage.Run{
		MapID:      m.walker.MapID(),
		Steps:      st.Steps,
		Collisions: st.Collisions,
		Duration:   time.Since(m.startedAt),
	})
	m.runSaved = true
}

// View renders the walk.
func (m WalkModel) View() string {
	if m.quitting {
		return ""
	}

	m.walker.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m WalkModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m WalkModel) BackToMenu() bool {
	return m.backToMenu
}
