// Package config loads, validates, and merges wt configuration.
//
// Configuration is layered: a global file at ~/.config/wt/config.toml
// and an optional per-repo .wt.toml at the main repository root. Each
// layer is a [File]; [Merge] folds them into an effective [Config]
// with every default resolved. A missing file is an empty layer, never
// an error.
//
// Hooks are validated at load time, so the rest of the program only
// ever sees well-formed definitions.
package config
