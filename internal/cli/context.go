// Package cli provides the command-line interface layer for syskit: it
// builds the shared context used by the cobra commands and handles the
// confirmation flow for destructive operations.
package cli

import (
	"fmt"

	"github.com/kestrel9/syskit/internal/config"
	"github.com/kestrel9/syskit/internal/ui"
	"github.com/kestrel9/syskit/pkg/sysrun"
)

// Context holds the dependencies shared by all commands.
type Context struct {
	Config *config.Config
	UI     *ui.UI
	Runner sysrun.Runner
}

// NewContext loads the configuration and builds the shared command
// context. assumeYes forces assume-yes mode regardless of the config.
func NewContext(assumeYes bool) (*Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if assumeYes {
		cfg.AssumeYes = true
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(cfg.AssumeYes)

	runner := sysrun.New()
	runner.ShellPath = cfg.Shell

	return &Context{
		Config: cfg,
		UI:     uiInstance,
		Runner: runner,
	}, nil
}

// Confirm asks the user to confirm an action. In assume-yes mode it
// returns true without prompting.
func (c *Context) Confirm(prompt string) (bool, error) {
	if c.Config.AssumeYes {
		return true, nil
	}
	return c.UI.PromptYesNo(prompt, false)
}
