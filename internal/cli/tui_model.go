package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/logbook/internal/cli/formatter"
	"github.com/alexanderramin/logbook/internal/logparse"
	"github.com/alexanderramin/logbook/internal/report"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tuiFocus is the element receiving key presses.
type tuiFocus int

const (
	focusShortcuts tuiFocus = iota
	focusInput
	focusEditor
)

type tuiLoadedMsg struct {
	text      string
	unit      int
	shortcuts []string
	err       error
}

type tuiStampedMsg struct {
	text string
	err  error
}

// tuiSavedMsg reports a finished save of buffer.
type tuiSavedMsg struct {
	buffer string
	quit   bool
	err    error
}

// tuiModel is the interactive logbook: a row of shortcut tags, a free-text
// input, and the editable log. Digits stamp shortcuts while nothing is
// focused, 0 focuses the input.
type tuiModel struct {
	ctx context.Context
	app *App

	input     textinput.Model
	editor    textarea.Model
	shortcuts []string
	unit      int
	focus     tuiFocus
	dirty     bool

	status string
	err    error

	width    int
	height   int
	quitting bool
}

func newTUIModel(ctx context.Context, app *App) tuiModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = app.t("input_placeholder")
	ti.CharLimit = 500

	ta := textarea.New()
	ta.Placeholder = app.t("log_placeholder")
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(10)
	ta.Blur()

	return tuiModel{
		ctx:    ctx,
		app:    app,
		input:  ti,
		editor: ta,
		unit:   logparse.DefaultRoundingUnit,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m tuiModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := m.app.Logs.Load(m.ctx)
		if err != nil {
			return tuiLoadedMsg{err: err}
		}
		unit, err := m.app.Settings.RoundingUnit(m.ctx)
		if err != nil {
			return tuiLoadedMsg{err: err}
		}
		shortcuts, err := m.app.Settings.Shortcuts(m.ctx)
		return tuiLoadedMsg{text: text, unit: unit, shortcuts: shortcuts, err: err}
	}
}

// stampCmd saves pending edits first so the new entry lands after them.
func (m tuiModel) stampCmd(tag string) tea.Cmd {
	buffer, dirty := m.editor.Value(), m.dirty
	return func() tea.Msg {
		if dirty {
			if _, err := m.app.Logs.Save(m.ctx, buffer); err != nil {
				return tuiStampedMsg{err: err}
			}
		}
		text, err := m.app.Logs.Append(m.ctx, tag)
		return tuiStampedMsg{text: text, err: err}
	}
}

func (m tuiModel) saveCmd(quit bool) tea.Cmd {
	buffer := m.editor.Value()
	return func() tea.Msg {
		_, err := m.app.Logs.Save(m.ctx, buffer)
		return tuiSavedMsg{buffer: buffer, quit: quit, err: err}
	}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = msg.Width - 4
		m.editor.SetWidth(msg.Width)
		if h := msg.Height - len(m.shortcuts) - 8; h >= 3 {
			m.editor.SetHeight(h)
		}
		return m, nil

	case tuiLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.editor.SetValue(msg.text)
		m.unit = msg.unit
		m.shortcuts = msg.shortcuts
		m.dirty = false
		return m, nil

	case tuiStampedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.editor.SetValue(msg.text)
		m.dirty = false
		m.status = lastLine(msg.text)
		return m, nil

	case tuiSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		// Edits made while the save was in flight are still unsaved.
		if msg.buffer == m.editor.Value() {
			m.dirty = false
		}
		m.status = m.app.t("saved")
		if msg.quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		return m, m.saveCmd(false)
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusEditor:
		return m.handleEditorKey(msg)
	default:
		return m.handleShortcutKey(msg)
	}
}

func (m tuiModel) handleShortcutKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "esc", "q":
		return m, m.saveCmd(true)
	case "tab", "e":
		return m.focusOn(focusEditor)
	case "0":
		m.input.Reset()
		return m.focusOn(focusInput)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		if n > len(m.shortcuts) {
			return m, nil
		}
		return m, m.stampCmd(m.shortcuts[n-1])
	}
	return m, nil
}

func (m tuiModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		tag := m.input.Value()
		if strings.TrimSpace(tag) == "" {
			return m, nil
		}
		m.input.Reset()
		return m, m.stampCmd(tag)
	case tea.KeyEsc:
		if m.input.Value() == "" {
			return m, m.saveCmd(true)
		}
		m.input.Reset()
		return m.focusOn(focusShortcuts)
	case tea.KeyTab:
		return m.focusOn(focusEditor)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tuiModel) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		next, cmd := m.focusOn(focusShortcuts)
		if m.dirty {
			return next, tea.Batch(cmd, next.(tuiModel).saveCmd(false))
		}
		return next, cmd
	case tea.KeyTab:
		return m.focusOn(focusInput)
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		m.dirty = true
	}
	if msg.Type == tea.KeyEnter {
		return m, tea.Batch(cmd, m.saveCmd(false))
	}
	return m, cmd
}

func (m tuiModel) focusOn(f tuiFocus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.input.Blur()
	m.editor.Blur()
	switch f {
	case focusInput:
		return m, m.input.Focus()
	case focusEditor:
		return m, m.editor.Focus()
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	state := formatter.StyleGreen.Render(m.app.t("saved"))
	if m.dirty {
		state = formatter.StyleYellow.Render(m.app.t("unsaved"))
	}
	b.WriteString(formatter.StyleHeader.Render(m.app.t("app_name")) + "  " + state + "  " +
		formatter.Dim(m.app.now().Format("2006-01-02 15:04")) + "\n\n")

	for i, tag := range m.shortcuts {
		label := tag
		if label == "" {
			label = formatter.Dim("-")
		}
		digit := formatter.StyleBlue.Render(strconv.Itoa(i + 1))
		if m.focus == focusShortcuts {
			digit = formatter.StyleHeader.Render(strconv.Itoa(i + 1))
		}
		b.WriteString(digit + " " + label + "\n")
	}
	b.WriteString(formatter.StyleHeader.Render("0") + " " + m.input.View() + "\n\n")

	b.WriteString(m.editor.View() + "\n")

	table := report.Build(logparse.Parse(m.editor.Value(), m.unit), m.unit)
	labels := m.app.labels()
	b.WriteString(formatter.Bold(table.ActualLine(labels)) + "  " + formatter.Dim(table.TotalLine(labels)) + "\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render(m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(formatter.Dim(m.status) + "\n")
	}

	b.WriteString(formatter.Dim(fmt.Sprintf("1-9 stamp · 0 %s · tab edit · ctrl+s save · esc save & quit", m.app.t("input_placeholder"))))
	return b.String()
}
