// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package greeting composes the greeting line this repository exists to
// print.
package greeting

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Defaults used when nothing overrides them.
const (
	DefaultGreeting = "Hello"
	DefaultName     = "World"
)

// Message is a single greeting: a salutation word and the name it addresses.
// It is assembled fresh on each invocation and never mutated afterwards.
type Message struct {
	Greeting string `toml:"greeting"`
	Name     string `toml:"name"`
}

// Default returns the message printed when nothing overrides it.
func Default() Message {
	return Message{Greeting: DefaultGreeting, Name: DefaultName}
}

// String formats the message as "<greeting>, <name>".
//
// Neither field is validated; empty fields yield a literal ", ".
func (m Message) String() string { return m.Greeting + ", " + m.Name }

// highlight is the background style applied to the greeting on terminals.
var highlight = lipgloss.NewStyle().
	Background(lipgloss.Color("57")).
	Foreground(lipgloss.Color("231")).
	Bold(true)

// Fprintln writes the formatted message and a trailing newline to w.
// When styled is true, the line gets a background highlight.
//
// The write is the composer's only observable effect.
func Fprintln(w io.Writer, m Message, styled bool) error {
	line := m.String()
	if styled {
		line = highlight.Render(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
