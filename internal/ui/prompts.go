package ui

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Pause waits for Enter so a window opened just for this process stays
// readable before it closes. No-op when stdin is not a terminal, so
// autostart and cron invocations never hang.
func Pause() {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return
	}

	_, _ = fmt.Fprintf(Out, "\n  %s", Dim("Press Enter to close..."))
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}
