package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/grizzlydata/csa2grizzly/pkg/consts"
	"github.com/grizzlydata/csa2grizzly/pkg/domain"
	"github.com/grizzlydata/csa2grizzly/pkg/gitrepo"
	"github.com/grizzlydata/csa2grizzly/pkg/transform"
	"github.com/urfave/cli/v3"
)

// generate returns the CLI command that runs the whole conversion pipeline:
// clone the upstream export, reset the target domain, transform every script,
// and write the scope manifest. The run is a single forward path; any step's
// failure aborts the whole command.
//
// The target domain directory is destructively replaced on every run. The
// temporary clone directory is removed on success and kept on failure for
// debugging; --keep-clone keeps it unconditionally.
//
// Example usage:
//
//	csa2grizzly generate \
//	  -r ~/gh/grizzly \
//	  -d bas_csa \
//	  -s "my_project.gcp_logging_export" \
//	  --schedule_interval "0 4 * * *"
func generate(runner gitrepo.Runner) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a Grizzly domain from the CSA script export",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "grizzly_repo_path",
				Aliases:  []string{"r"},
				Usage:    "Target Grizzly repository folder",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "domain_name",
				Aliases:  []string{"d"},
				Usage:    "Grizzly domain name; the last '/' segment, lowercased, becomes the dataset name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "source_dataset",
				Aliases:  []string{"s"},
				Usage:    "BigQuery dataset with exported GCP logs, substituted for the placeholder in every script",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "schedule_interval",
				Usage:    "Composer schedule interval stored verbatim in the scope manifest",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "keep-clone",
				Usage: "Keep the temporary clone directory after a successful run",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tempDir, err := os.MkdirTemp("", consts.TempDirPrefix)
			if err != nil {
				return err
			}

			slog.Info("Cloning upstream repository",
				"repo", consts.UpstreamRepo,
				"dest", tempDir)

			if err := gitrepo.Clone(ctx, runner, consts.UpstreamRepo, tempDir); err != nil {
				return err
			}

			d := domain.New(cmd.String("grizzly_repo_path"), cmd.String("domain_name"))
			if err := d.Reset(); err != nil {
				return err
			}

			scope := domain.NewScope(cmd.String("schedule_interval"))
			if err := transform.New(d, scope, cmd.String("source_dataset")).Run(tempDir); err != nil {
				return err
			}

			if err := d.WriteScope(scope); err != nil {
				return err
			}

			slog.Info("Domain generated",
				"domain", d.Root(),
				"tables", len(scope.ETLScope))

			if !cmd.Bool("keep-clone") {
				_ = os.RemoveAll(tempDir)
			}

			return nil
		},
	}
}
