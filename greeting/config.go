// © 2026 Pavel Chizhov. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package greeting

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the name of the optional per-directory configuration file.
const ConfigFile = ".greet.toml"

// LoadFile reads a message configuration from a TOML file at path, overlaying
// the recognized keys (greeting, name) on base. Keys absent from the file keep
// their base values; keys present with an empty string are honored as empty.
func LoadFile(path string, base Message) (Message, error) {
	m := base
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Message{}, fmt.Errorf("greeting: load %s: %w", path, err)
	}
	return m, nil
}
