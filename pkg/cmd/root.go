// Package cmd wires the csa2grizzly CLI: the root command, its subcommands,
// and the fx module that assembles them.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/grizzlydata/csa2grizzly/pkg/format"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main csa2grizzly CLI application with the
// given version and command-line arguments. Any error from a subcommand is
// printed once with a styled prefix and the process exits non-zero; there is
// no retry or partial recovery anywhere in the pipeline.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "csa2grizzly",
		Usage: "Generate a Grizzly configuration domain from the CSA script export",
		Description: `csa2grizzly clones the GoogleCloudPlatform/security-analytics repository
and converts every BigQuery script in backends/bigquery/sql into a Grizzly
domain: one SQL body and YAML descriptor per script, plus a SCOPE.yml
manifest describing the whole domain.`,
		Version:  p.Version.Version,
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			format.Fprintf(os.Stderr, format.Error, "Unexpected error: %v\n", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
