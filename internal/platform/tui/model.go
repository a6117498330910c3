package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/registry"
	"github.com/vovakirdan/textris/internal/storage"
)

// phase is the part of the game screen currently taking input.
type phase int

const (
	phasePlaying   phase = iota
	phaseNameEntry       // score qualified, asking for a name
	phaseChoice          // Restart or Main Menu
)

// Choices offered once a game is over.
const (
	choiceRestart = "Restart"
	choiceMenu    = "Main Menu"
)

var gameOverChoices = []string{choiceRestart, choiceMenu}

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// Options configures the game screen.
type Options struct {
	Store     *storage.Store
	Logger    *log.Logger
	MaxScores int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	phase    phase
	name     textinput.Model
	cursor   int
	rank     int // position of the saved score, 0 if not on the board
	quitting bool
	toMenu   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.MaxScores <= 0 {
		opts.MaxScores = storage.DefaultMaxScores
	}

	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = storage.MaxNameLen
	name.Width = storage.MaxNameLen

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		name:       name,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.phase {
		case phaseNameEntry:
			return m.handleNameKey(msg)
		case phaseChoice:
			return m.handleChoiceKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.phase == phaseNameEntry {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input while playing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleNameKey feeds the name field; enter saves, esc skips.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.saveScore(m.name.Value())
		m.toChoice()
		return m, nil
	case "esc":
		m.toChoice()
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleChoiceKey navigates the Restart / Main Menu list.
func (m Model) handleChoiceKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "r" {
		return m.restart()
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor + len(gameOverChoices) - 1) % len(gameOverChoices)
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % len(gameOverChoices)
	case MenuActionBack:
		m.toMenu = true
		return m, tea.Quit
	case MenuActionSelect:
		if gameOverChoices[m.cursor] == choiceRestart {
			return m.restart()
		}
		m.toMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		return m.enterGameOver()
	}
	return m, tickCmd(m.config.TickRate)
}

// enterGameOver asks for a name when the score makes the board.
func (m Model) enterGameOver() (tea.Model, tea.Cmd) {
	m.opts.Logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score)

	qualifies := false
	if m.opts.Store != nil {
		ok, err := m.opts.Store.Qualifies(m.game.ID(), m.gameState.Score, m.opts.MaxScores)
		if err != nil {
			m.opts.Logger.Warn("could not read scoreboard", "err", err)
		}
		qualifies = ok
	}

	if !qualifies {
		m.toChoice()
		return m, tickCmd(m.config.TickRate)
	}

	m.phase = phaseNameEntry
	m.name.SetValue("")
	focus := m.name.Focus()
	return m, tea.Batch(focus, tickCmd(m.config.TickRate))
}

func (m *Model) toChoice() {
	m.name.Blur()
	m.phase = phaseChoice
	m.cursor = 0
}

func (m *Model) saveScore(name string) {
	if m.opts.Store == nil {
		return
	}
	rank, err := m.opts.Store.Record(m.game.ID(), name, m.gameState.Score, m.opts.MaxScores)
	if err != nil {
		m.opts.Logger.Warn("could not save score", "err", err)
		return
	}
	m.rank = rank
	m.opts.Logger.Info("score saved", "name", storage.CleanName(name), "score", m.gameState.Score, "rank", rank)
}

// restart starts a fresh game with a new random seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = 0
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.phase = phasePlaying
	m.rank = 0
	m.inputFrame.Clear()
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".textris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
	}
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("208")).
	Padding(1, 3)

var (
	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.toMenu {
		return ""
	}

	if m.phase == phasePlaying {
		m.game.Render(m.screen)
		return RenderScreen(m.screen)
	}

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
		lipgloss.Center, lipgloss.Center, panelStyle.Render(m.gameOverPanel()))
}

func (m Model) gameOverPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("GAME OVER"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score: %d\n\n", m.gameState.Score)

	if m.phase == phaseNameEntry {
		fmt.Fprintf(&b, "New top %d score!\n", m.opts.MaxScores)
		b.WriteString("Name: ")
		b.WriteString(m.name.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("enter save  esc skip"))
		return b.String()
	}

	if m.rank > 0 {
		fmt.Fprintf(&b, "Ranked #%d\n\n", m.rank)
	}
	for i, choice := range gameOverChoices {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + choice))
		} else {
			b.WriteString("  " + choice)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter select  r restart  q quit"))
	return b.String()
}

// Result reports how the game screen was left.
type Result struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// ToMenu reports whether the player chose Main Menu.
func (m Model) ToMenu() bool {
	return m.toMenu
}

// Loader is implemented by games whose resources can fail to load.
type Loader interface {
	Load() error
}

// Prepare loads the game's resources if it has any, so failures are
// reported before the terminal is taken over.
func Prepare(game registry.Game) error {
	if l, ok := game.(Loader); ok {
		return l.Load()
	}
	return nil
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	if err := Prepare(game); err != nil {
		return Result{Config: cfg}, err
	}
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return Result{Config: cfg}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Result{Config: cfg}, nil
	}
	return Result{BackToMenu: m.ToMenu(), Config: m.config}, nil
}
