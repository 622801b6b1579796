package main

import (
	"context"
	"os"

	"github.com/grizzlydata/csa2grizzly/pkg/cmd"
	"github.com/grizzlydata/csa2grizzly/pkg/gitrepo"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			func() context.Context { return context.Background() },
			func() []string { return os.Args },
			func() *cmd.Version {
				return &cmd.Version{Version: version, Commit: commit, Timestamp: date}
			},
		),
		gitrepo.Module,
		cmd.Module,
	).Run()
}
