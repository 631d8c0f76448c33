package scaffold

import (
	_ "embed"
)

var (
	//go:embed iconset.toml
	ConfigScaffold string

	//go:embed icons.toml
	ManifestScaffold string
)
