// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports how the currently running binary was built.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.chizhov.dev/greet/syncx"
)

// Info describes the build of the currently running binary.
type Info struct {
	// Name is the base name of the binary.
	Name string
	// Version is the module version, or "devel" when it is not recorded.
	Version string
	// Commit is the VCS revision the binary was built from, if stamped.
	Commit string
	// Dirty reports whether the working tree had uncommitted changes.
	Dirty bool
}

// String implements the [fmt.Stringer] interface.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		fmt.Fprintf(&sb, " (%s", commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, "\n%s, %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns build information for the currently running binary.
func Version() Info { return info.Get(load) }

func load() Info {
	i := Info{
		Name:    CmdName(),
		Version: "devel",
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}

// CmdName returns the base name of the currently running binary, with the
// .exe suffix stripped on Windows.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}
