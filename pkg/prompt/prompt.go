package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Choice is a project offered by SelectProject.
type Choice struct {
	Name   string
	Path   string
	Status string // optional, display only
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForBaseFolder prompts the user for the folder new projects are cloned into.
	PromptForBaseFolder(defaultBaseFolder string) (string, error)

	// Confirm prompts the user for confirmation with a default value.
	Confirm(message string, defaultYes bool) (bool, error)

	// SelectProject prompts the user to select a project from a list.
	SelectProject(choices []Choice) (Choice, error)
}

type realPrompt struct {
	reader *bufio.Reader
	out    io.Writer
	// selector runs the interactive list. Replaced in tests.
	selector func([]Choice) (Choice, error)
}

// NewPrompt creates a new Prompt instance reading stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		selector: runSelectProgram,
	}
}

func (p *realPrompt) PromptForBaseFolder(defaultBaseFolder string) (string, error) {
	if defaultBaseFolder == "" {
		defaultBaseFolder = "~/Code"
	}
	fmt.Fprintf(p.out, "Choose the folder where projects are cloned "+
		"(ex: ~/Code, ~/Projects, ~/src): [default: %s]: ", defaultBaseFolder)

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return defaultBaseFolder, nil
	}
	return input, nil
}

func (p *realPrompt) Confirm(message string, defaultYes bool) (bool, error) {
	defaultText := "[y/N]"
	if defaultYes {
		defaultText = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", message, defaultText)

	input, err := p.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

func (p *realPrompt) SelectProject(choices []Choice) (Choice, error) {
	if len(choices) == 0 {
		return Choice{}, ErrNoChoices
	}
	if len(choices) == 1 {
		return choices[0], nil
	}
	return p.selector(choices)
}

// readLine reads one trimmed line. A final line without newline is accepted.
func (p *realPrompt) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.TrimSpace(input), nil
}
