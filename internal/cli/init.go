package cli

import (
	"fmt"

	"github.com/runnerr0/leima/internal/config"
)

// Execute implements the go-flags Commander interface for InitCommand.
func (c *InitCommand) Execute(args []string) error {
	path := c.globals.Config
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}

	cfg, err := config.LoadOrCreateAt(path)
	if err != nil {
		return err
	}

	fmt.Printf("Config:    %s\n", path)
	fmt.Printf("Data dir:  %s\n", cfg.Storage.Dir)
	return nil
}
