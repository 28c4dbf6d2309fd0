// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.chizhov.dev/greet/cli"
	"go.chizhov.dev/greet/cli/clitest"
	"go.chizhov.dev/greet/testutil"
)

func TestGreet(t *testing.T) {
	configDir := t.TempDir()
	configPath := filepath.Join(configDir, "greet.toml")
	if err := os.WriteFile(configPath, []byte("greeting = \"Welcome\"\nname = \"Gopher\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): %v", configPath, err)
	}

	setup := func(t *testing.T) *app {
		return new(app)
	}

	cases := map[string]clitest.Case[*app]{
		"default": {
			WantInStdout: "Hello, World\n",
		},
		"explicit flags": {
			Args:         []string{"-greeting", "Hi", "-name", "Alice"},
			WantInStdout: "Hi, Alice\n",
		},
		"empty flags are honored": {
			Args:         []string{"-greeting", "", "-name", ""},
			WantInStdout: ", \n",
		},
		"environment variables": {
			Env:          map[string]string{"GREET_GREETING": "Hey", "GREET_NAME": "Gopher"},
			WantInStdout: "Hey, Gopher\n",
		},
		"flags beat environment": {
			Args:         []string{"-name", "Alice"},
			Env:          map[string]string{"GREET_NAME": "Gopher"},
			WantInStdout: "Hello, Alice\n",
		},
		"config file": {
			Args:         []string{"-config", configPath},
			WantInStdout: "Welcome, Gopher\n",
		},
		"flags beat config file": {
			Args:         []string{"-config", configPath, "-name", "Alice"},
			WantInStdout: "Welcome, Alice\n",
		},
		"missing config file": {
			Args:        []string{"-config", filepath.Join(configDir, "nope.toml")},
			WantErrType: &os.PathError{},
		},
		"plain": {
			Args:         []string{"-plain"},
			WantInStdout: "Hello, World\n",
		},
		"verbose logs resolution": {
			Args:         []string{"-verbose"},
			WantInStdout: "Hello, World\n",
			WantInStderr: "printing greeting",
		},
	}

	clitest.Run(t, setup, cases)
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	var stdout, stderr bytes.Buffer
	env := &cli.Env{
		Args:   args,
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(string) string { return "" },
	}
	if err := cli.Run(cli.WithEnv(context.Background(), env), new(app)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return stdout.String()
}

func TestExactOutput(t *testing.T) {
	// The program writes exactly one line and nothing else.
	testutil.AssertEqual(t, run(t), "Hello, World\n")
	testutil.AssertEqual(t, run(t, "-greeting", "Hi", "-name", "Alice"), "Hi, Alice\n")
}

func TestIdempotent(t *testing.T) {
	first := run(t, "-name", "Alice")
	second := run(t, "-name", "Alice")
	testutil.AssertEqual(t, first, second)
}
