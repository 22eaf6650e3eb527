// Package app provides TUI application adapters for command wiring.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/dexview/internal/colors"
)

// ProgramRunner defines the interface for running a bubbletea program.
// This abstraction allows for easier testing and swapping of implementations.
type ProgramRunner interface {
	// Run starts the bubbletea program with the given model and blocks until it exits.
	Run(ctx context.Context, model tea.Model) error
}

// DefaultProgramRunner is the default implementation of ProgramRunner
// that wraps tea.NewProgram with standard options.
type DefaultProgramRunner struct{}

// NewDefaultProgramRunner creates a new DefaultProgramRunner.
func NewDefaultProgramRunner() *DefaultProgramRunner {
	return &DefaultProgramRunner{}
}

// Run starts a bubbletea program on the alternate screen. Structured stderr
// logging is paused while the program owns the terminal.
func (r *DefaultProgramRunner) Run(ctx context.Context, model tea.Model) error {
	colors.DisableStructuredLogging()
	defer colors.EnableStructuredLogging()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// cancelled from outside, e.g. SIGINT
		return nil
	}
	return err
}
