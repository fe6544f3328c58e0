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
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.baseball/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server that gives every session its own
// matchup picker and game.
type SSHServer struct {
	config   SSHServerConfig
	settings Settings
	server   *ssh.Server
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server. The caller owns settings.Store.
func NewSSHServer(cfg SSHServerConfig, settings Settings) (*SSHServer, error) {
	if settings.League == nil {
		return nil, errors.New("ssh server needs a league")
	}
	logger := settings.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	logger = logger.WithPrefix("baseball-ssh")

	srv := &SSHServer{
		config:   cfg,
		settings: settings,
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".baseball", "host_key")
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

	st := s.settings
	st.Logger = s.logger.With("user", sshSession.User())
	model := NewSessionModel(st, pty.Window.Width, pty.Window.Height)

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
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages one viewer's flow: picker -> game -> picker.
type SessionModel struct {
	settings Settings
	width    int
	height   int
	menu     MenuModel
	watch    *WatchModel
	status   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(st Settings, width, height int) SessionModel {
	if st.Logger == nil {
		st.Logger = log.Default()
	}
	return SessionModel{
		settings: st,
		width:    width,
		height:   height,
		menu:     NewMenuModel(st.League, width, height, st.Seed()),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.watch != nil {
		return m.updateWatch(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates while picking a matchup.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	home, away, ok := m.menu.Matchup()
	if !ok {
		return m, cmd
	}

	game, err := m.settings.NewGame(home, away)
	if err != nil {
		m.status = err.Error()
		m.settings.Logger.Warn("cannot start game", "error", err)
		m.menu = NewMenuModel(m.settings.League, m.width, m.height, m.settings.Seed())
		return m, nil
	}

	watch := NewWatchModel(game, m.settings.Seed(), m.settings)
	watch.embedded = true
	watch.resize(m.width, m.height)
	m.watch = &watch
	m.status = ""
	return m, m.watch.Init()
}

// updateWatch handles updates while a game is on.
func (m SessionModel) updateWatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.watch.Update(msg)
	if watch, ok := newModel.(WatchModel); ok {
		m.watch = &watch
	}

	if m.watch.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.watch.BackToMenu() {
		m.watch = nil
		m.menu = NewMenuModel(m.settings.League, m.width, m.height, m.settings.Seed())
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.watch != nil {
		return m.watch.View()
	}
	if m.status != "" {
		return m.menu.View() + "\n" + centerText(m.status, m.width)
	}
	return m.menu.View()
}

// InGame reports whether a game is being watched.
func (m SessionModel) InGame() bool {
	return m.watch != nil
}
