package validate

import (
	"path/filepath"
	"regexp"
	"strings"
)

var fileNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]{0,254}$`)

var imageExtensions = []string{".png", ".ico", ".jpg", ".jpeg", ".webp", ".svg"}

// IconFileName reports whether name is a bare image filename with no directory part
func IconFileName(name string) bool {
	if !fileNameRe.MatchString(name) || strings.Contains(name, "..") {
		return false
	}
	return OneOf(strings.ToLower(filepath.Ext(name)), imageExtensions)
}

func HexColor(color string) bool {
	re := regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	return re.MatchString(color)
}

func OneOf(value string, values []string) bool {
	for _, v := range values {
		if value == v {
			return true
		}
	}
	return false
}

func Required(text string) bool {
	return len(text) > 0
}

func IsNumber(value int, min int, max int) bool {
	return value >= min && value <= max
}

func IsPositiveNumber(value int) bool {
	return value > 0
}
