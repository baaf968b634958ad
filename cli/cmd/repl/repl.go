// Package repl implements the interactive read-eval-print loop for gyeop.
//
// Each submitted line is evaluated as a complete program against a
// persistent evaluation context, so variables set by one line are visible
// to the next. Output written by native functions is captured and printed
// into the scrollback above the prompt.
package repl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gyeoplang/gyeop/lang"
	"github.com/gyeoplang/gyeop/log"
)

const prompt = "겹➜ "

func helpMessage() string {
	return `
Commands (prefix with ':'):

  :help    Print this cruft
  :names   List registered functions and variables
  :clear   Clear screen
  :quit    Exit REPL

Usage:
  Type a program to evaluate it, e.g. [[출력|[[더하기|1|2]]]]
  Completions appear automatically as you type a name
  Press Tab / Shift-Tab to cycle through candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

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

// formatCommand formats the echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(prompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	eval         *lang.Context
	output       *bytes.Buffer
	logger       log.Logger
	history      []string
	historyIdx   int
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

// Run starts the REPL. The bind function populates the symbol table of the
// persistent evaluation context; output-producing natives must write to the
// given writer so the REPL can capture and display their output.
func Run(
	ctx context.Context,
	bind func(table *lang.SymbolTable, w io.Writer) error,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	output := &bytes.Buffer{}
	eval := lang.NewContext(lang.WithLogger(logger))

	if bind != nil {
		if err := bind(eval.Bindings(), output); err != nil {
			return err
		}
	}

	logger.DebugContext(ctx, "repl start",
		slog.Int("functions", len(eval.Bindings().FunctionNames())),
		slog.Int("variables", len(eval.Bindings().VariableNames())),
	)

	m := newModel(ctx, eval, output, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	eval *lang.Context,
	output *bytes.Buffer,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc: func() context.Context { return ctx },
		input:   ti,
		eval:    eval,
		output:  output,
		logger:  logger,
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
		m.input.Width = msg.Width - len(prompt) - 2

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

	// Completion / hint line.
	input := m.input.Value()

	switch {
	case strings.TrimSpace(input) == "":
		b.WriteString(hintStyle.Render(
			"Type a program like [[출력|안녕]] or :help for commands",
		))
		b.WriteString("\n")

	case len(m.matches) > 0:
		// Render horizontal candidate bar.
		bar := renderCandidateBar(
			m.matches, m.suggIdx, m.tabActive, m.width,
		)
		b.WriteString(bar)
		b.WriteString("\n")

	default:
		// Non-empty input but no matches: blank line.
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = len(m.history)
		refreshMatches(&m)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m)

		return m, nil

	case tea.KeyTab:
		return m.handleTab(1)

	case tea.KeyShiftTab:
		return m.handleTab(-1)

	case tea.KeyUp:
		return m.historyPrev()

	case tea.KeyDown:
		return m.historyNext()

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m)
		}

		return m, nil
	}

	// For any other key (runes, backspace, delete, arrows, etc.),
	// update input and recompute matches.
	var cmd tea.Cmd

	if msg.Type == tea.KeyRunes && m.tabActive && msg.String() == " " {
		// Space accepts the current candidate.
		m.tabActive = false
	} else {
		m.tabActive = false
	}

	m.historyIdx = len(m.history)
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m)

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
		} else if m.suggIdx < 0 {
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

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	newInput := input[:m.wordStart] + replacement + input[m.wordEnd:]
	newCursor := m.wordStart + len(replacement)

	m.input.SetValue(newInput)
	m.input.SetCursor(newCursor)

	m.wordEnd = newCursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
func refreshMatches(m *model) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.history = append(m.history, input)
	m.historyIdx = len(m.history)

	echoCmd := tea.Println(formatCommand(input))

	if strings.HasPrefix(input, ":") {
		return m.executeCommand(input, echoCmd)
	}

	m.logger.DebugContext(m.ctxFunc(), "repl eval",
		slog.String("input", input),
	)

	m.output.Reset()

	err := m.eval.Evaluate(m.ctxFunc(), input)
	printed := strings.TrimRight(m.output.String(), "\n")

	cmds := []tea.Cmd{echoCmd}
	if printed != "" {
		cmds = append(cmds, tea.Println(resultStyle.Render(printed)))
	}

	if err != nil {
		cmds = append(cmds,
			tea.Println(errorStyle.Render("error: "+err.Error())),
		)
	}

	return m, tea.Sequence(cmds...)
}

func (m model) executeCommand(
	input string,
	echoCmd tea.Cmd,
) (model, tea.Cmd) {
	cmd := strings.TrimSpace(strings.TrimPrefix(input, ":"))

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoCmd, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echoCmd, tea.Println(helpMessage()))

	case "n", "names", "list":
		return m, tea.Sequence(echoCmd, tea.Println(m.listNames()))

	case "c", "clear":
		return m, tea.ClearScreen

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: :" + cmd + " (try :help)"),
		)
	}
}

func (m model) listNames() string {
	var b strings.Builder

	table := m.eval.Bindings()

	for _, name := range table.FunctionNames() {
		b.WriteString("  " + name + hintStyle.Render(" function") + "\n")
	}

	for _, name := range table.VariableNames() {
		preview := ""
		if rec, ok := table.GetVariable(name); ok {
			preview = " variable = " + rec.Value.String()
		}

		b.WriteString("  " + name + hintStyle.Render(preview) + "\n")
	}

	return b.String()
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx > 0 {
		m.historyIdx--
		line := m.history[m.historyIdx]
		m.input.SetValue(line)
		m.input.SetCursor(len(line))
		refreshMatches(&m)
	}

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx < len(m.history)-1 {
		m.historyIdx++
		line := m.history[m.historyIdx]
		m.input.SetValue(line)
		m.input.SetCursor(len(line))
		refreshMatches(&m)
	} else {
		m.historyIdx = len(m.history)
		m.input.SetValue("")
		refreshMatches(&m)
	}

	return m, nil
}
