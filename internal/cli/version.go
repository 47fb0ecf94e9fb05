package cli

import (
	"github.com/sdkran/sdkran/internal/console"
	"github.com/sdkran/sdkran/internal/paths"
	"github.com/sdkran/sdkran/internal/report"
)

// Resolves the SDKMAN base directory from the override.
var resolveBaseDir = paths.BaseDir

// Represents the 'sdkran version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(con *console.Console, g *Globals) error {
	return report.Run(con, report.Config{
		Dir:     g.Dir,
		Resolve: resolveBaseDir,
	})
}
