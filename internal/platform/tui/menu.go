package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/theme"
)

// MenuChoice is what the launcher menu was closed with.
type MenuChoice int

const (
	ChoiceQuit MenuChoice = iota
	ChoicePlay
	ChoiceScoreboard
)

const (
	itemPlay = iota
	itemDifficulty
	itemScoreboard
	itemQuit
	itemCount
)

// MenuModel is the Bubble Tea model for the launcher menu.
type MenuModel struct {
	cursor    int
	preset    int // index into config.Presets()
	best      int
	styles    theme.Styles
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
	done      bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, best, themeIndex int) MenuModel {
	m := MenuModel{
		preset:    1,
		best:      best,
		styles:    theme.Get(themeIndex).UI(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range config.Presets() {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := len(config.Presets())

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		return m.close(ChoiceQuit)

	case MenuActionUp:
		m.cursor = core.Wrap(m.cursor-1, itemCount)

	case MenuActionDown:
		m.cursor = core.Wrap(m.cursor+1, itemCount)

	case MenuActionLeft:
		if m.cursor == itemDifficulty {
			m.preset = core.Wrap(m.preset-1, presets)
		}

	case MenuActionRight:
		if m.cursor == itemDifficulty {
			m.preset = core.Wrap(m.preset+1, presets)
		}

	case MenuActionSelect:
		switch m.cursor {
		case itemPlay:
			return m.close(ChoicePlay)
		case itemDifficulty:
			m.preset = core.Wrap(m.preset+1, presets)
		case itemScoreboard:
			return m.close(ChoiceScoreboard)
		case itemQuit:
			return m.close(ChoiceQuit)
		}

	case MenuActionScoreboard:
		return m.close(ChoiceScoreboard)
	}

	return m, nil
}

func (m MenuModel) close(c MenuChoice) (tea.Model, tea.Cmd) {
	m.choice = c
	m.done = true
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	top := max(0, (m.height-14)/2)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(m.styles.Title.Render("U L T I M A T E   S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.styles.Muted.Render(fmt.Sprintf("Best %d", m.best)), m.width))
	b.WriteString("\n\n")

	labels := [itemCount]string{
		itemPlay:       "Play",
		itemDifficulty: fmt.Sprintf("Difficulty: < %s >", m.Preset()),
		itemScoreboard: "Scoreboard",
		itemQuit:       "Quit",
	}
	for i, label := range labels {
		line := "  " + label + "  "
		if i == m.cursor {
			line = m.styles.Select.Render(line)
		} else {
			line = m.styles.Cell.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(m.styles.Muted.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns how the menu was closed.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets()[m.preset]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu runs the launcher menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset, best, themeIndex int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, preset, best, themeIndex),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Preset: preset}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Preset: preset}, nil
	}

	return MenuResult{
		Choice: m.Choice(),
		Preset: m.Preset(),
		Config: m.Config(),
	}, nil
}
