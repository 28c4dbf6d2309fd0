// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package internal contains helpers shared by the devtools.
package internal

import (
	"os"
	"path/filepath"

	"golang.org/x/tools/txtar"

	"go.chizhov.dev/greet/unwrap"
)

// ConfigPath is the location of the devtools configuration archive, relative
// to the module root.
var ConfigPath = filepath.Join(".devtools", "config.txtar")

// EnsureRoot changes the working directory to the module root, identified by
// the presence of go.mod. It panics when no module root can be found.
func EnsureRoot() {
	for {
		if _, err := os.Stat("go.mod"); err == nil {
			return
		}
		wd := unwrap.Value(os.Getwd())
		if wd == filepath.Dir(wd) {
			panic("unable to locate the module root (no go.mod found)")
		}
		unwrap.NoError(os.Chdir(".."))
	}
}

// LoadConfig parses the devtools configuration archive.
func LoadConfig() (*txtar.Archive, error) {
	return txtar.ParseFile(ConfigPath)
}
