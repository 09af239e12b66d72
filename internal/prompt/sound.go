// Package prompt implements the interactive collaborators the session
// engine depends on: the first-run sound preference chooser and the
// break confirmation. Both are small bubbletea models that run to
// completion and hand their result back to the caller.
package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skovland/pomo/internal/notify"
)

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true)
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	choiceStyle      = lipgloss.NewStyle()
	descStyle        = lipgloss.NewStyle().Faint(true)
)

// soundChoice pairs a mode with its menu description.
type soundChoice struct {
	mode notify.Mode
	desc string
}

var soundChoices = []soundChoice{
	{notify.ModeBeep, "simple terminal beeps"},
	{notify.ModeVoice, "spoken announcements (needs a speech command)"},
	{notify.ModeSilent, "no sound"},
}

// soundKeyMap contains the key bindings for the sound chooser
type soundKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultSoundKeyMap() soundKeyMap {
	return soundKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "cancel"),
		),
	}
}

// SoundModel is the bubbletea model for the sound preference chooser.
// After the program finishes, Choice holds the selected mode unless
// Aborted is set.
type SoundModel struct {
	cursor int
	keys   soundKeyMap

	Choice  notify.Mode
	Aborted bool
}

// NewSoundModel creates a sound chooser with the cursor on beep.
func NewSoundModel() SoundModel {
	return SoundModel{keys: defaultSoundKeyMap()}
}

// Init implements tea.Model
func (m SoundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(soundChoices)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Select):
		m.Choice = soundChoices[m.cursor].mode
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		m.Aborted = true
		return m, tea.Quit
	}

	// Digits select directly, matching the classic 1/2/3 menu.
	switch keyMsg.String() {
	case "1", "2", "3":
		m.cursor = int(keyMsg.String()[0] - '1')
		m.Choice = soundChoices[m.cursor].mode
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m SoundModel) View() string {
	var b strings.Builder

	b.WriteString(promptTitleStyle.Render("Sound Preferences"))
	b.WriteString("\n\n")

	for i, choice := range soundChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%d. %s - %s",
			cursor,
			i+1,
			choiceStyle.Render(string(choice.mode)),
			descStyle.Render(choice.desc))
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(descStyle.Render("↑/↓ move · enter select · 1-3 choose directly · q cancel"))
	b.WriteString("\n")

	return b.String()
}

// ChooseSoundMode runs the interactive sound preference prompt and
// returns the selected mode. Cancelling the prompt is an error: the
// engine requires a resolved mode before the first countdown.
func ChooseSoundMode(in io.Reader, out io.Writer) (notify.Mode, error) {
	p := tea.NewProgram(NewSoundModel(), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("sound preference prompt failed: %w", err)
	}

	m, ok := final.(SoundModel)
	if !ok || m.Aborted {
		return "", fmt.Errorf("sound preference selection cancelled")
	}

	return m.Choice, nil
}
