// Package gitsync drives the pull, add, commit, push cycle for a
// configured repository.
//
// All git operations shell out to the git binary with captured output.
// The exit code alone is ambiguous for some operations, so the combined
// output is scanned for known phrases: a pull that reports "already up
// to date" (in its localized variants) is a successful no-op, and a
// commit that reports "nothing to commit" succeeds without creating a
// commit.
//
// The cycle is fail-fast: the first failing step aborts the sync, and
// failures are recorded on the supplied logger.
//
// Example usage:
//
//	runner, err := gitsync.New(repoPath, log)
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Sync("Auto-sync 2025-01-19 14:30:15")
package gitsync
