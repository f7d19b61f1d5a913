package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/theirongolddev/rockpile/internal/money"
)

// ErrAborted is returned by a Prompter when the user cancels input.
var ErrAborted = errors.New("input aborted")

var errAmountPrompt = errors.New("please enter a valid positive number")

const (
	choiceRetry = "Please enter a valid positive number corresponding to the menu option."
	amountRetry = "Please enter a valid positive number."
)

// Prompter asks the user for menu choices and values.
type Prompter interface {
	// Choose shows options and returns the 1-based index picked.
	Choose(title string, options []string) (int, error)
	Text(title string) (string, error)
	// Amount re-asks until the input parses as a non-negative dollar amount.
	Amount(title string) (money.Cents, error)
}

// HuhPrompter prompts with huh forms on a terminal. In accessible mode it
// prints plain prompts and reads one line per answer from a single shared
// reader, so piped input is consumed line by line across prompts. End of
// input is reported as ErrAborted.
type HuhPrompter struct {
	Accessible bool
	Theme      *huh.Theme
	In         io.Reader
	Out        io.Writer

	lines *bufio.Reader
}

// NewHuhPrompter returns a prompter that falls back to accessible mode
// when stdin is not a terminal.
func NewHuhPrompter() *HuhPrompter {
	fd := os.Stdin.Fd()
	return &HuhPrompter{
		Accessible: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
		Theme:      huh.ThemeCharm(),
	}
}

func (p *HuhPrompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false)
	if p.Theme != nil {
		form = form.WithTheme(p.Theme)
	}
	if p.In != nil {
		form = form.WithInput(p.In)
	}
	if p.Out != nil {
		form = form.WithOutput(p.Out)
	}

	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

func (p *HuhPrompter) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

// readLine prints prompt and returns the next input line without its
// line ending. A final line without a newline is still returned; after
// it, io.EOF becomes ErrAborted.
func (p *HuhPrompter) readLine(prompt string) (string, error) {
	if p.lines == nil {
		in := p.In
		if in == nil {
			in = os.Stdin
		}
		p.lines = bufio.NewReader(in)
	}

	_, _ = fmt.Fprint(p.out(), prompt)
	line, err := p.lines.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrAborted
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *HuhPrompter) chooseLine(title string, options []string) (int, error) {
	w := p.out()
	_, _ = fmt.Fprintln(w, "\n"+title)
	for i, label := range options {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, label)
	}
	for {
		line, err := p.readLine("Enter your choice: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n <= 0 {
			_, _ = fmt.Fprintln(w, choiceRetry)
			continue
		}
		return n, nil
	}
}

// promptLine keeps titles ending in a space on the answer's line and
// puts the answer below any other title.
func promptLine(title string) string {
	if strings.HasSuffix(title, " ") {
		return title
	}
	return title + "\n"
}

func (p *HuhPrompter) amountLine(title string) (money.Cents, error) {
	for {
		line, err := p.readLine(promptLine(title))
		if err != nil {
			return 0, err
		}
		c, err := money.ParseDollars(line)
		if err != nil {
			_, _ = fmt.Fprintln(p.out(), amountRetry)
			continue
		}
		return c, nil
	}
}

// Choose implements Prompter. Numbers outside the option range are
// returned as entered, for the caller to reject.
func (p *HuhPrompter) Choose(title string, options []string) (int, error) {
	if p.Accessible {
		return p.chooseLine(title, options)
	}

	opts := make([]huh.Option[int], len(options))
	for i, label := range options {
		opts[i] = huh.NewOption(fmt.Sprintf("%d. %s", i+1, label), i+1)
	}

	var choice int
	sel := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&choice)
	if err := p.run(sel); err != nil {
		return 0, err
	}
	return choice, nil
}

// Text implements Prompter.
func (p *HuhPrompter) Text(title string) (string, error) {
	if p.Accessible {
		return p.readLine(promptLine(title))
	}

	var s string
	in := huh.NewInput().
		Title(title).
		Value(&s)
	if err := p.run(in); err != nil {
		return "", err
	}
	return s, nil
}

// Amount implements Prompter.
func (p *HuhPrompter) Amount(title string) (money.Cents, error) {
	if p.Accessible {
		return p.amountLine(title)
	}

	var s string
	in := huh.NewInput().
		Title(title).
		Placeholder("0.00").
		Value(&s).
		Validate(func(v string) error {
			if _, err := money.ParseDollars(v); err != nil {
				return errAmountPrompt
			}
			return nil
		})
	if err := p.run(in); err != nil {
		return 0, err
	}
	return money.ParseDollars(s)
}
