// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/term"

	"go.chizhov.dev/greet/cli"
	"go.chizhov.dev/greet/devtools/internal"
)

const hookShellScript = `#!/bin/sh
echo "==> Running pre-commit checks..."
go tool pre-commit
`

type check struct {
	Run      []string `json:"run"`
	Files    string   `json:"files"`
	SkipInCI bool     `json:"skip_in_ci"`
	OnlyInCI bool     `json:"only_in_ci"`
}

func loadChecks() ([]check, error) {
	ar, err := internal.LoadConfig()
	if err != nil {
		return nil, err
	}
	var checks []check
	for _, f := range ar.Files {
		if f.Name == "pre-commit.json" {
			if err := json.Unmarshal(f.Data, &checks); err != nil {
				return nil, err
			}
		}
	}
	return checks, nil
}

func main() { cli.Main(cli.AppFunc(realMain)) }

func realMain(ctx context.Context) error {
	internal.EnsureRoot()
	env := cli.GetEnv(ctx)

	checks, err := loadChecks()
	if err != nil {
		return err
	}

	isCI := env.Getenv("CI") == "true"

	if !isCI {
		hookPath := filepath.Join(".git", "hooks", "pre-commit")
		if _, err := os.Stat(hookPath); errors.Is(err, fs.ErrNotExist) {
			if err := os.WriteFile(hookPath, []byte(hookShellScript), 0o755); err != nil {
				return err
			}
		}
	}

	var files []string
	if slices.ContainsFunc(checks, func(c check) bool { return c.Files != "" }) {
		files, err = listFiles(isCI)
		if err != nil {
			return err
		}
	}

	width := terminalWidth(env)

	var run, skipped int
	for i, c := range checks {
		if (isCI && c.SkipInCI) || (!isCI && c.OnlyInCI) {
			skipped++
			continue
		}
		argv, runnable := c.argv(files)
		if !runnable {
			skipped++
			continue
		}
		fmt.Fprintln(env.Stdout, progressMessage(i+1, len(checks), argv, width))
		if err := runCheck(argv); err != nil {
			return err
		}
		run++
	}

	fmt.Fprintf(env.Stdout, "All checks passed (%d run, %d skipped).\n", run, skipped)
	return nil
}

// argv expands the check command with the files it should run on. A check
// scoped with a files pattern is not runnable when nothing matches.
func (c check) argv(files []string) ([]string, bool) {
	if c.Files == "" {
		return c.Run, true
	}
	var matched []string
	for _, f := range files {
		if matches(c.Files, f) {
			matched = append(matched, f)
		}
	}
	if len(matched) == 0 {
		return nil, false
	}
	return append(slices.Clip(slices.Clone(c.Run)), matched...), true
}

// matches reports whether the glob pattern matches the file. Patterns without
// a slash match the base name, like gitignore entries.
func matches(pattern, file string) bool {
	target := file
	if !strings.Contains(pattern, "/") {
		target = path.Base(file)
	}
	ok, err := path.Match(pattern, target)
	return err == nil && ok
}

// listFiles returns the files that file-scoped checks run on: the staged
// files locally, all tracked files in CI. It is a variable so tests can
// substitute a fixed list.
var listFiles = func(isCI bool) ([]string, error) {
	if isCI {
		return gitList("ls-files")
	}
	return gitList("diff", "--cached", "--name-only", "--diff-filter=ACM")
}

func gitList(args ...string) ([]string, error) {
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return nil, fmt.Errorf("git %s: %v", strings.Join(args, " "), err)
	}
	var files []string
	for line := range strings.SplitSeq(string(out), "\n") {
		if l := strings.TrimSpace(line); l != "" {
			files = append(files, l)
		}
	}
	return files, nil
}

func runCheck(argv []string) error {
	var buf bytes.Buffer
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("check %q failed: %v:\n%v", argv, err, buf.String())
	}
	return nil
}

func terminalWidth(env *cli.Env) int {
	f, ok := env.Stdout.(*os.File)
	if !ok || !cli.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// progressMessage formats the progress line for one check, clipped to the
// terminal width when it is known.
func progressMessage(current, total int, command []string, width int) string {
	prefix := fmt.Sprintf("[%d/%d] Running check ", current, total)
	cmdStr := strings.Join(command, " ")
	msg := prefix + cmdStr
	if width <= 0 || len(msg) <= width {
		return msg
	}
	if width <= len(prefix) {
		return prefix
	}
	avail := width - len(prefix)
	if avail <= 3 {
		return prefix + cmdStr[:avail]
	}
	return prefix + cmdStr[:avail-3] + "..."
}
