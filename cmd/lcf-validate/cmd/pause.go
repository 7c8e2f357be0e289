package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gkampitakis/ciinfo"
	"github.com/mattn/go-isatty"
)

// shouldPause reports whether to wait for enter before exiting, so that a
// console window opened by double-clicking the binary stays readable.
func shouldPause(noPause bool) bool {
	if noPause || ciinfo.IsCI {
		return false
	}
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// pause prints the prompt and waits for a line on in.
func pause(prompt io.Writer, in io.Reader) {
	_, _ = fmt.Fprint(prompt, "Press enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
