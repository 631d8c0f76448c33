// Package brand holds the TaskFlow brand palette.
package brand

import (
	"github.com/paularlott/iconset/internal/util/validate"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/zeebo/errs"
)

// Color is the TaskFlow brand blue. The text listing never uses it.
const Color = "#4A90E2"

var Error = errs.Class("brand")

// Parse checks a hex colour and returns it in canonical #rrggbb form.
// An empty string resolves to the brand colour.
func Parse(hex string) (string, error) {
	if hex == "" {
		hex = Color
	}

	if !validate.HexColor(hex) {
		return "", Error.New("invalid colour %q, expected #rgb or #rrggbb", hex)
	}

	c, err := colorful.Hex(expand(hex))
	if err != nil {
		return "", Error.Wrap(err)
	}

	return c.Hex(), nil
}

// expand turns the short #rgb form into #rrggbb.
func expand(hex string) string {
	if len(hex) != 4 {
		return hex
	}
	return string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
}
