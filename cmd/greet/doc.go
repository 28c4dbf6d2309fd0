// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Greet prints a single highlighted greeting line.

With no input it prints "Hello, World". The greeting word and the addressed
name can be overridden, in increasing precedence, by the GREET_GREETING and
GREET_NAME environment variables, a TOML configuration file (the -config flag,
or a .greet.toml file in the current directory), and the -greeting and -name
flags.

The line is highlighted when standard output is a terminal; the -plain flag or
a non-empty NO_COLOR environment variable disables the highlight.
*/
package main

import (
	_ "embed"

	"go.chizhov.dev/greet/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
