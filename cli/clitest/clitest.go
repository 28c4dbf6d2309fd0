// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides a harness for table-driven tests of [cli.App]
// implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.chizhov.dev/greet/cli"
)

// Case describes a single invocation of an application under test.
type Case[App cli.App] struct {
	// Args are the command-line arguments passed to the application.
	Args []string
	// Stdin is the application's standard input. Empty if nil.
	Stdin io.Reader
	// Env holds the environment variables visible to the application.
	Env map[string]string
	// WantErr, if set, requires the returned error to match with [errors.Is].
	WantErr error
	// WantErrType, if set, requires the returned error to match the type of
	// its value with [errors.As].
	WantErrType error
	// WantNothingPrinted requires both stdout and stderr to be empty.
	WantNothingPrinted bool
	// WantInStdout, if non-empty, must be contained in stdout.
	WantInStdout string
	// WantInStderr, if non-empty, must be contained in stderr.
	WantInStderr string
	// CheckFunc, if set, runs after the invocation with the application value.
	CheckFunc func(*testing.T, App)
}

// Run runs each case as a subtest. The setup function constructs a fresh
// application for every case.
func Run[App cli.App](t *testing.T, setup func(*testing.T) App, cases map[string]Case[App]) {
	t.Helper()

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}

			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)
			checkErr(t, err, tc)

			if tc.WantNothingPrinted {
				if stdout.Len() > 0 {
					t.Errorf("stdout must be empty, got: %q", stdout.String())
				}
				if stderr.Len() > 0 {
					t.Errorf("stderr must be empty, got: %q", stderr.String())
				}
			}

			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func checkErr[App cli.App](t *testing.T, err error, tc Case[App]) {
	t.Helper()

	switch {
	case tc.WantErr != nil:
		if !errors.Is(err, tc.WantErr) {
			t.Fatalf("want error %v, got %v", tc.WantErr, err)
		}
	case tc.WantErrType != nil:
		target := reflect.New(reflect.TypeOf(tc.WantErrType))
		if !errors.As(err, target.Interface()) {
			t.Fatalf("want error of type %T, got %v", tc.WantErrType, err)
		}
	default:
		if err != nil && !errors.Is(err, flag.ErrHelp) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
