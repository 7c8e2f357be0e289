package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/version"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output version information as JSON",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(version.GetInfo(rules.DefaultRegistry().Len()))
			}
			fmt.Printf("lcf-validate version %s\n", version.Version())
			return nil
		},
	}
}
