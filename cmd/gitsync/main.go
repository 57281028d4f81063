package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mfreund/deskrun/internal/cli"
	"github.com/mfreund/deskrun/internal/envfile"
	"github.com/mfreund/deskrun/internal/gitsync"
	"github.com/mfreund/deskrun/internal/logfile"
	"github.com/mfreund/deskrun/internal/ui"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	args, err := cli.ParseSync(os.Args)
	if err != nil {
		if err.Error() == "show_help" {
			showHelp()
			os.Exit(0)
		}
		if err.Error() == "show_version" {
			fmt.Printf("gitsync %s\n", version)
			os.Exit(0)
		}
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("gitsync --help"))
		os.Exit(1)
	}

	log, closeLog := logfile.Open(logfile.DefaultPath)
	flushLog = closeLog

	cfg, err := envfile.Load(args.ConfigPath)
	if err != nil {
		ui.Fail("%v", err)
		log.Error("config load failed", zap.Error(err))
		finish(args.Pause, 1)
	}

	repoPath, err := cfg.RepoPath()
	if err != nil {
		ui.Fail("%v", err)
		log.Error("config incomplete", zap.Error(err))
		finish(args.Pause, 1)
	}

	runner, err := gitsync.New(repoPath, log)
	if err != nil {
		ui.Fail("%v", err)
		log.Error("repository unavailable", zap.Error(err))
		finish(args.Pause, 1)
	}

	ui.Header("gitsync")

	if !gitsync.IsRepository(repoPath) {
		ui.Fail("Not a git repository: %s", repoPath)
		ui.Footer()
		log.Error("not a git repository", zap.String("repo", repoPath))
		finish(args.Pause, 1)
	}

	if branch, err := gitsync.CurrentBranch(repoPath); err == nil {
		ui.Info("Repository: %s %s", repoPath, ui.Dim("("+branch+")"))
	} else {
		ui.Info("Repository: %s", repoPath)
	}

	message := args.Message
	if message == "" {
		message = "Auto-sync " + time.Now().Format("2006-01-02 15:04:05")
	}

	result, err := runner.Sync(message)
	if err != nil {
		ui.Fail("Sync failed: %v", err)
		ui.DimMsg("Details in %s", logfile.DefaultPath)
		ui.Footer()
		finish(args.Pause, 1)
	}

	if result.Pulled {
		ui.Info("Pulled remote changes")
	}
	if result.Committed {
		ui.Success("Local changes committed and pushed")
	} else {
		ui.Success("Already up to date")
	}
	ui.Footer()

	finish(args.Pause, 0)
}

// flushLog is set once the log file is open. finish flushes through it
// because os.Exit skips deferred calls.
var flushLog = func() {}

// finish exits after the optional hold-open prompt, so a terminal
// window opened just for this run stays readable.
func finish(pause bool, code int) {
	if pause {
		ui.Pause()
	}
	flushLog()
	os.Exit(code)
}

func showHelp() {
	help := `gitsync - pull, commit, and push a configured git repository

USAGE:
    gitsync [OPTIONS]

The repository path is read from a key=value config file (REPO_PATH).
The sync cycle is pull, add, commit, push, stopping at the first
failure. A pull that was already current and a commit with nothing to
commit both count as success. Failures are appended to error.log.

OPTIONS:
    --config PATH      Config file to read (default: .env)
    -m, --message MSG  Commit message (default: timestamped Auto-sync)
    --pause            Wait for Enter before exiting
    -h, --help         Show this help message
    --version          Show version information

EXAMPLES:
    # Sync the repository named in ./.env
    gitsync

    # Explicit config and commit message
    gitsync --config ~/sync.env -m "nightly notes backup"

    # Keep the window open when run from a desktop launcher
    gitsync --pause

CONFIG FILE:
    REPO_PATH=/home/user/notes    # repository to sync
    # REPO_PFAD_LIN is still read for older config files

EXIT CODES:
    0    Success (including nothing to do)
    1    Missing config, missing repository, or failed git step
`
	fmt.Print(help)
}
