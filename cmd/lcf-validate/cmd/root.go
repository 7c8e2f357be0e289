package cmd

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/version"
)

// NewApp creates the CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:      "lcf-validate",
		Usage:     "A linter for Yume 2kki map files",
		Version:   version.Version(),
		ArgsUsage: "[PATH]",
		Description: `lcf-validate checks RPG Maker 2000 map units (.lmu) for mistakes that are
easy to make while editing Yume 2kki: unpaired weather changes, broken tissue
events, unannotated special skill checks and more.

PATH may be a game directory (or a subdirectory of one), RPG_RT.ldb,
RPG_RT.lmt, or a single MapXXXX.lmu file. Without --all, a game opens an
interactive map picker.

Examples:
  lcf-validate Map0001.lmu
  lcf-validate --all --level warn path/to/game
  lcf-validate --all --suppress 1,3 --format json .`,
		Flags:  checkFlags(),
		Action: runCheck,
		Commands: []*cli.Command{
			checkCommand(),
			rulesCommand(),
			versionCommand(),
		},
	}
}

// Execute runs the CLI application
func Execute() error {
	return NewApp().Run(context.Background(), os.Args)
}
