// Command lcf-validate checks RPG Maker 2000 maps of Yume 2kki for common
// mistakes.
package main

import (
	"fmt"
	"os"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/cmd/lcf-validate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
