package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/pdfmosaic/pdfmosaic/pkg/errors"
)

// parsePositiveInt parses s as a positive (>= 1) integer.
func parsePositiveInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "not a number: %q", s)
	}
	if n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "must be positive, got %d", n)
	}
	return n, nil
}

// promptRetryMessage picks the re-prompt line for a rejected answer,
// distinguishing unparsable input from a number that is not positive.
func promptRetryMessage(s string) string {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return "Please enter a valid number."
	}
	return "Please enter a positive number."
}

// askPositiveInt prompts the user for a positive integer, re-prompting until
// the input is valid. Interactive terminals get a bubbletea prompt; piped
// stdin falls back to a plain line-based loop with the same validation.
func askPositiveInt(question string) (int, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return runNumberPrompt(question)
	}
	return scanPositiveInt(os.Stdin, os.Stdout, question)
}

// scanPositiveInt reads lines from r until one parses as a positive integer.
func scanPositiveInt(r io.Reader, w io.Writer, question string) (int, error) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, question+" ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, errors.New(errors.ErrCodeInvalidInput, "no input")
		}
		line := scanner.Text()
		n, err := parsePositiveInt(line)
		if err != nil {
			fmt.Fprintln(w, promptRetryMessage(line))
			continue
		}
		return n, nil
	}
}

// =============================================================================
// NumberPromptModel - Interactive numeric input
// =============================================================================

// numberPromptModel is the bubbletea model for a single positive-integer
// prompt. Only digits are accepted while typing; validation happens on enter
// and invalid input re-prompts instead of quitting.
type numberPromptModel struct {
	question string
	input    string
	value    int
	retry    string // re-prompt line after a rejected answer
	aborted  bool
}

func newNumberPrompt(question string) numberPromptModel {
	return numberPromptModel{question: question}
}

func (m numberPromptModel) Init() tea.Cmd {
	return nil
}

func (m numberPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "enter":
		n, err := parsePositiveInt(m.input)
		if err != nil {
			m.retry = promptRetryMessage(m.input)
			m.input = ""
			return m, nil
		}
		m.value = n
		return m, tea.Quit
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		s := key.String()
		if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.input += s
		}
	}
	return m, nil
}

func (m numberPromptModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.question))
	b.WriteString(" ")
	b.WriteString(StyleValue.Render(m.input))
	b.WriteString(StyleDim.Render("█"))
	b.WriteString("\n")
	if m.retry != "" {
		b.WriteString(StyleWarning.Render(m.retry))
		b.WriteString("\n")
	}
	b.WriteString(StyleDim.Render("⏎ confirm  esc cancel"))
	b.WriteString("\n")

	return b.String()
}

// runNumberPrompt runs the prompt model on the interactive terminal.
func runNumberPrompt(question string) (int, error) {
	p := tea.NewProgram(newNumberPrompt(question), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return 0, err
	}

	m := final.(numberPromptModel)
	if m.aborted {
		return 0, errors.New(errors.ErrCodeInvalidInput, "input cancelled")
	}
	return m.value, nil
}
