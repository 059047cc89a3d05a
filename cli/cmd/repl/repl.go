package repl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/citetool/citet/analyze"
	"github.com/citetool/citet/log"
	"github.com/citetool/citet/tpl"
)

const editPrompt = "➜ "

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatCommand formats the accepted-template echo line with prompt and input
// styled.
func formatCommand(input string) string {
	return promptStyle.Render(editPrompt) + inputStyle.Render(input)
}

// Repl edits a template interactively with a live preview.
type Repl struct {
	Template string   `help:"Initial template text"                           short:"t"`
	Values   []string `arg:"" help:"Values bound to %s placeholders" name:"values" optional:""`
}

// Run starts the interactive editor.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	log.TraceContext(ctx, "repl start",
		slog.String("template", r.Template),
		slog.Int("values", len(r.Values)),
	)

	m := newModel(ctx, r.Template, r.Values)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

// model is the Bubble Tea model for the editor.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	values       []string
	matches      fuzzy.Matches // current fuzzy match results
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
}

func newModel(ctx context.Context, template string, values []string) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(editPrompt)
	ti.SetValue(template)
	ti.SetCursor(len(template))
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc: func() context.Context { return ctx },
		input:   ti,
		values:  values,
		suggIdx: -1,
		width:   defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(editPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Input line.
	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()

	// Live preview line.
	b.WriteString(m.previewLine(input))
	b.WriteString("\n")

	// Diagnostics.
	for _, issue := range analyze.Lint(input) {
		b.WriteString(hintStyle.Render("⚠ " + issue.String()))
		b.WriteString("\n")
	}

	// Completion / hint line.
	switch {
	case strings.TrimSpace(input) == "":
		b.WriteString(hintStyle.Render(
			"Type a template; completions appear inside [ ]",
		))
		b.WriteString("\n")

	case len(m.matches) > 0:
		bar := renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width)
		b.WriteString(bar)
		b.WriteString("\n")

	default:
		b.WriteString("\n")
	}

	return b.String()
}

// previewLine renders the current template against the bound values,
// degrading to the fallback string on malformed structure.
func (m model) previewLine(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	result, err := tpl.Format(input, m.values...)
	if err != nil {
		return errorStyle.Render("Engine error: " + err.Error())
	}

	return resultStyle.Render(result)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	log.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.tabActive && len(m.matches) > 0 {
			// Lock in the current tab candidate without accepting.
			m.tabActive = false
			refreshMatches(&m, true)

			return m, nil
		}

		return m.acceptInput()

	case tea.KeyTab:
		return m.handleTab(+1)

	case tea.KeyShiftTab:
		return m.handleTab(-1)

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m, false)

			return m, nil
		}

		m.quitting = true

		return m, tea.Quit

	case tea.KeyRunes:
		// Space breaks an active tab cycle.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// For any other key (backspace, delete, arrows, etc.),
	// update input and recompute matches without auto-confirm.
	var cmd tea.Cmd

	m.tabActive = false
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// handleTab cycles through completion candidates in the given direction.
func (m model) handleTab(dir int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	// Single candidate: complete and confirm immediately.
	if len(m.matches) == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx += dir
		if m.suggIdx >= len(m.matches) {
			m.suggIdx = 0
		}

		if m.suggIdx < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		if dir > 0 {
			m.suggIdx = 0
		} else {
			m.suggIdx = len(m.matches) - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// acceptInput echoes the template and its rendering into the scrollback and
// keeps the input for further editing.
func (m model) acceptInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	log.TraceContext(m.ctxFunc(), "repl accept",
		slog.String("template", input),
	)

	result, err := tpl.Format(input, m.values...)
	if err != nil {
		return m, tea.Sequence(
			tea.Println(formatCommand(input)),
			tea.Println(errorStyle.Render("Engine error: "+err.Error())),
		)
	}

	return m, tea.Sequence(
		tea.Println(formatCommand(input)),
		tea.Println(resultStyle.Render(result)),
	)
}

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	newInput := input[:m.wordStart] + replacement + input[m.wordEnd:]
	newCursor := m.wordStart + len(replacement)

	m.input.SetValue(newInput)
	m.input.SetCursor(newCursor)

	// Update word boundaries for the replaced text.
	m.wordEnd = newCursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
// When autoConfirm is true it also auto-confirms the completion when exactly
// one candidate remains and the typed word already equals that candidate.
// autoConfirm should be false for deletions and cursor navigation so that
// the user can freely edit without unexpected completions.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.wordStart, m.wordEnd = computeMatches(
		m.input.Value(), m.input.Position(),
	)

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	// Auto-confirm when the typed word already equals the sole candidate.
	candidate := m.matches[0].Str
	word := m.input.Value()[m.wordStart:m.wordEnd]

	if word == candidate {
		replaceCurrentWord(m, candidate)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}
