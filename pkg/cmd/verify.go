package cmd

import (
	"context"
	"os"

	"github.com/grizzlydata/csa2grizzly/pkg/consts"
	"github.com/grizzlydata/csa2grizzly/pkg/domain"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// verify returns the CLI command that checks a previously generated domain
// for internal consistency: every etl_scope entry must have its descriptor
// and SQL body on disk, and every descriptor must carry the fixed write mode
// and point at its query file.
func verify() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Check a generated domain for missing descriptors or queries",
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
				Usage:    "Grizzly domain name",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d := domain.New(cmd.String("grizzly_repo_path"), cmd.String("domain_name"))

			scope, err := domain.LoadScopeFile(d.ScopePath())
			if err != nil {
				return err
			}

			for _, name := range scope.ETLScope {
				desc, err := domain.LoadDescriptorFile(d.DescriptorPath(name))
				if err != nil {
					return err
				}

				if desc.TargetTableName != name {
					return errors.Errorf("descriptor %s names table %q", name, desc.TargetTableName)
				}

				if desc.JobWriteMode != consts.WriteMode {
					return errors.Errorf("descriptor %s has write mode %q, want %q", name, desc.JobWriteMode, consts.WriteMode)
				}

				if desc.StageLoadingQuery != domain.QueryRelPath(name) {
					return errors.Errorf("descriptor %s points at %q, want %q", name, desc.StageLoadingQuery, domain.QueryRelPath(name))
				}

				if _, err := os.Stat(d.QueryPath(name)); err != nil {
					return errors.Wrapf(err, "missing query for %s", name)
				}
			}

			return nil
		},
	}
}
