// Package output renders an icon set for the terminal or for other tools.
package output

import (
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/paularlott/iconset/internal/service"
	"github.com/paularlott/iconset/internal/util"
	"github.com/paularlott/iconset/internal/util/validate"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

const Header = "Generated icon files:"

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

var Formats = []string{
	string(FormatText),
	string(FormatTable),
	string(FormatJSON),
	string(FormatYAML),
	string(FormatTOML),
}

var Error = errs.Class("output")

func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	if !validate.OneOf(s, Formats) {
		return "", Error.New("unknown format %q, expected one of %v", s, Formats)
	}
	return Format(s), nil
}

// Entry is one icon as seen by the structured formats
type Entry struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Path   string `json:"path" yaml:"path" toml:"path"`
	Width  int    `json:"width" yaml:"width" toml:"width"`
	Height int    `json:"height" yaml:"height" toml:"height"`
}

type Document struct {
	BrandColor string  `json:"brand_color" yaml:"brand_color" toml:"brand_color"`
	AssetsDir  string  `json:"assets_dir" yaml:"assets_dir" toml:"assets_dir"`
	Icons      []Entry `json:"icons" yaml:"icons" toml:"icons"`
}

func NewDocument(dir, brandColor string, icons []service.Icon) Document {
	doc := Document{
		BrandColor: brandColor,
		AssetsDir:  dir,
		Icons:      make([]Entry, 0, len(icons)),
	}
	for _, icon := range icons {
		doc.Icons = append(doc.Icons, Entry{
			Name:   icon.Name,
			Path:   AssetPath(dir, icon),
			Width:  icon.Size,
			Height: icon.Size,
		})
	}
	return doc
}

// AssetPath joins the assets folder and icon name with forward slashes
func AssetPath(dir string, icon service.Icon) string {
	return path.Join(dir, icon.Name)
}

func (e Entry) Dimensions() string {
	return strconv.Itoa(e.Width) + "x" + strconv.Itoa(e.Height)
}

// Line formats a single listing entry
func (e Entry) Line() string {
	return fmt.Sprintf("  - %s (%s)", e.Path, e.Dimensions())
}

// Line formats the listing entry for one icon
func Line(dir string, icon service.Icon) string {
	return NewDocument(dir, "", []service.Icon{icon}).Icons[0].Line()
}

// WriteText writes the header then one line per icon in order
func WriteText(w io.Writer, dir string, icons []service.Icon) error {
	return writeText(w, NewDocument(dir, "", icons))
}

func writeText(w io.Writer, doc Document) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return Error.Wrap(err)
	}
	for _, entry := range doc.Icons {
		if _, err := fmt.Fprintln(w, entry.Line()); err != nil {
			return Error.Wrap(err)
		}
	}
	return nil
}

// Write renders the document in the requested format
func Write(w io.Writer, format Format, doc Document) error {
	var err error

	switch format {
	case FormatText:
		return writeText(w, doc)

	case FormatTable:
		data := [][]string{{"Name", "Path", "Size"}}
		for _, entry := range doc.Icons {
			data = append(data, []string{entry.Name, entry.Path, entry.Dimensions()})
		}
		err = util.PrintTable(w, data)

	case FormatJSON:
		err = util.PrettyPrintJSON(w, doc)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}

	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)

	default:
		return Error.New("unknown format %q", format)
	}

	return Error.Wrap(err)
}
