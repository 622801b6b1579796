package gitrepo

import "go.uber.org/fx"

var Module = fx.Module("gitrepo",
	fx.Provide(NewRunner),
)
