package prompt

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a single-keypress yes/no prompt. Only y or Y counts
// as yes; any other key declines.
type ConfirmModel struct {
	question string

	Answer bool
}

// NewConfirmModel creates a confirm prompt with the given question.
func NewConfirmModel(question string) ConfirmModel {
	return ConfirmModel{question: question}
}

// Init implements tea.Model
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.Answer = true
	default:
		m.Answer = false
	}
	return m, tea.Quit
}

// View implements tea.Model
func (m ConfirmModel) View() string {
	return promptTitleStyle.Render(m.question) + " "
}

// BreakPrompt asks whether to take a break after a completed work
// session. It satisfies engine.BreakPrompter.
type BreakPrompt struct {
	In      io.Reader
	Out     io.Writer
	Minutes int
}

// TakeBreak runs the confirm prompt. Any failure to run the prompt
// counts as declining: a broken terminal must not block the session
// from finishing.
func (b BreakPrompt) TakeBreak() bool {
	question := fmt.Sprintf("Take a %d-minute break? (y/n)", b.Minutes)
	p := tea.NewProgram(NewConfirmModel(question), tea.WithInput(b.In), tea.WithOutput(b.Out))

	final, err := p.Run()
	if err != nil {
		return false
	}

	m, ok := final.(ConfirmModel)
	return ok && m.Answer
}
