package main

import (
	"context"

	"github.com/spotport/spotport/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes a starter config.toml from the embedded example.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	r.configureLogging(cmd)

	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("✓ Wrote %s\n", path)
	r.writePlain("Edit it to set the service base URL and credentials.\n")
	return nil
}
