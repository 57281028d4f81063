package gitsync

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// gitFunc executes a git subcommand in dir and returns its captured
// stdout and stderr. Swapped out in tests.
type gitFunc func(dir string, args ...string) (stdout, stderr string, err error)

// Runner executes the sync cycle against one repository.
type Runner struct {
	dir string
	log *zap.Logger
	run gitFunc
}

// Result reports what a sync actually did.
type Result struct {
	// Pulled is true when the pull brought in remote changes.
	Pulled bool
	// Committed is true when local changes were committed.
	Committed bool
}

// New binds a Runner to a repository directory. The directory must
// exist; a missing path is a configuration error, not something to
// create on the fly.
func New(dir string, log *zap.Logger) (*Runner, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("repository path does not exist: %s", dir)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{dir: dir, log: log, run: runGit}, nil
}

func runGit(dir string, args ...string) (string, string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// upToDatePhrases are the pull outputs that mark a successful no-op.
// Git localizes them, and older versions hyphenated the English one.
var upToDatePhrases = []string{
	"Already up to date",
	"Already up-to-date",
	"Bereits aktuell",
}

var nothingToCommitPhrases = []string{
	"nothing to commit",
	"nichts zu committen",
}

func containsAny(output string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(output, p) {
			return true
		}
	}
	return false
}

// Pull fetches and merges remote changes. updated is false when the
// branch was already current.
func (r *Runner) Pull() (updated bool, err error) {
	stdout, stderr, err := r.run(r.dir, "pull")
	output := stdout + stderr
	if err != nil {
		r.log.Error("git pull failed",
			zap.String("repo", r.dir),
			zap.String("output", strings.TrimSpace(output)),
			zap.Error(err))
		return false, fmt.Errorf("git pull: %w", err)
	}
	return !containsAny(output, upToDatePhrases), nil
}

// AddAll stages every change in the repository, respecting .gitignore.
func (r *Runner) AddAll() error {
	_, stderr, err := r.run(r.dir, "add", ".")
	if err != nil {
		r.log.Error("git add failed",
			zap.String("repo", r.dir),
			zap.String("output", strings.TrimSpace(stderr)),
			zap.Error(err))
		return fmt.Errorf("git add: %w", err)
	}
	return nil
}

// Commit records staged changes. committed is false when there was
// nothing to commit, which is expected on a quiet day and not an error.
func (r *Runner) Commit(message string) (committed bool, err error) {
	stdout, stderr, err := r.run(r.dir, "commit", "-m", message)
	output := stdout + stderr
	if err != nil {
		if containsAny(output, nothingToCommitPhrases) {
			return false, nil
		}
		r.log.Error("git commit failed",
			zap.String("repo", r.dir),
			zap.String("output", strings.TrimSpace(output)),
			zap.Error(err))
		return false, fmt.Errorf("git commit: %w", err)
	}
	return true, nil
}

// Push uploads local commits to the remote.
func (r *Runner) Push() error {
	_, stderr, err := r.run(r.dir, "push")
	if err != nil {
		r.log.Error("git push failed",
			zap.String("repo", r.dir),
			zap.String("output", strings.TrimSpace(stderr)),
			zap.Error(err))
		return fmt.Errorf("git push: %w", err)
	}
	return nil
}

// Sync runs pull, add, commit, push in order, stopping at the first
// failure. Pull comes first so local commits never race remote ones.
func (r *Runner) Sync(message string) (Result, error) {
	var res Result

	pulled, err := r.Pull()
	if err != nil {
		return res, err
	}
	res.Pulled = pulled

	if err := r.AddAll(); err != nil {
		return res, err
	}

	committed, err := r.Commit(message)
	if err != nil {
		return res, err
	}
	res.Committed = committed

	if err := r.Push(); err != nil {
		return res, err
	}

	return res, nil
}
