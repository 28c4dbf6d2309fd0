// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package greeting

import (
	"bytes"
	"flag"
	"os"
	"strings"
	"testing"

	"go.chizhov.dev/greet/testutil"
)

var update = flag.Bool("update", false, "update golden files")

func TestString(t *testing.T) {
	cases := map[string]struct {
		msg  Message
		want string
	}{
		"default":      {Default(), "Hello, World"},
		"custom":       {Message{Greeting: "Hi", Name: "Alice"}, "Hi, Alice"},
		"empty fields": {Message{}, ", "},
		"empty name":   {Message{Greeting: "Hey"}, "Hey, "},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.msg.String(), tc.want)
		})
	}
}

func TestDefault(t *testing.T) {
	testutil.AssertEqual(t, Default(), Message{Greeting: "Hello", Name: "World"})
}

func TestFprintln(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Fprintln(&buf, Default(), false); err != nil {
			t.Fatalf("Fprintln: %v", err)
		}
		testutil.AssertEqual(t, buf.String(), "Hello, World\n")
	})

	t.Run("styled keeps the text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Fprintln(&buf, Message{Greeting: "Hi", Name: "Alice"}, true); err != nil {
			t.Fatalf("Fprintln: %v", err)
		}
		if !strings.Contains(buf.String(), "Hi, Alice") {
			t.Fatalf("styled output %q must contain %q", buf.String(), "Hi, Alice")
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Fatalf("styled output %q must end with a newline", buf.String())
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		var first, second bytes.Buffer
		msg := Message{Greeting: "Hi", Name: "Alice"}
		if err := Fprintln(&first, msg, false); err != nil {
			t.Fatalf("Fprintln: %v", err)
		}
		if err := Fprintln(&second, msg, false); err != nil {
			t.Fatalf("Fprintln: %v", err)
		}
		testutil.AssertEqual(t, first.String(), second.String())
	})
}

func TestLoadFileGolden(t *testing.T) {
	testutil.RunGolden(t, "testdata/*.toml", func(t *testing.T, match string) []byte {
		msg, err := LoadFile(match, Default())
		if err != nil {
			t.Fatalf("LoadFile(%q): %v", match, err)
		}
		var buf bytes.Buffer
		if err := Fprintln(&buf, msg, false); err != nil {
			t.Fatalf("Fprintln: %v", err)
		}
		return buf.Bytes()
	}, *update)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile("testdata/does-not-exist.toml", Default()); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("malformed TOML", func(t *testing.T) {
		path := t.TempDir() + "/bad.toml"
		writeFile(t, path, "greeting = [what")
		if _, err := LoadFile(path, Default()); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})

	t.Run("overlay keeps base values", func(t *testing.T) {
		path := t.TempDir() + "/partial.toml"
		writeFile(t, path, `name = "Gopher"`)
		msg, err := LoadFile(path, Message{Greeting: "Howdy", Name: "World"})
		if err != nil {
			t.Fatalf("LoadFile(%q): %v", path, err)
		}
		testutil.AssertEqual(t, msg, Message{Greeting: "Howdy", Name: "Gopher"})
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): %v", path, err)
	}
}
