package service

import (
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/paularlott/iconset/internal/config"
	"github.com/paularlott/iconset/internal/log"
	"github.com/paularlott/iconset/internal/util/validate"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"
)

const MaxIconSize = 16384

var Error = errs.Class("icons")

// Icon is a square icon asset
type Icon struct {
	Name string `toml:"name" json:"name" yaml:"name"`
	Size int    `toml:"size" json:"size" yaml:"size"`
}

type IconList struct {
	Icons []Icon `toml:"icons"`
}

// Validate checks the icon name and size
func (i Icon) Validate() error {
	if !validate.IconFileName(i.Name) {
		return Error.New("invalid icon name %q", i.Name)
	}
	if !validate.IsNumber(i.Size, 1, MaxIconSize) {
		return Error.New("invalid size %d for %s, must be between 1 and %d", i.Size, i.Name, MaxIconSize)
	}
	return nil
}

type IconService struct {
	icons []Icon
	mutex sync.RWMutex
}

// NewIconService builds the icon set from the defaults and any manifests
func NewIconService(cfg config.IconsConfig) (*IconService, error) {
	s := &IconService{}
	if err := s.loadIcons(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// GetIcons returns the icons in display order
func (s *IconService) GetIcons() []Icon {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	// Return a copy to prevent external modification
	result := make([]Icon, len(s.icons))
	copy(result, s.icons)
	return result
}

// Lookup finds an icon by file name
func (s *IconService) Lookup(name string) (Icon, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, icon := range s.icons {
		if icon.Name == name {
			return icon, true
		}
	}
	return Icon{}, false
}

func (s *IconService) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.icons)
}

// loadIcons loads icons from the built-in list and the configured manifests
func (s *IconService) loadIcons(cfg config.IconsConfig) error {
	var iconList []Icon

	if cfg.EnableDefaultIcons {
		iconList = append(iconList, DefaultIcons()...)
	}

	for _, manifest := range cfg.Manifests {
		log.Debug("loading icon manifest", "file", manifest)

		iconData, err := os.ReadFile(manifest)
		if err != nil {
			// If file doesn't exist, skip it
			if errors.Is(err, fs.ErrNotExist) {
				log.Warn("icon manifest does not exist, skipping", "file", manifest)
				continue
			}
			return Error.New("failed to read icon manifest %s: %v", manifest, err)
		}

		var iconsFromFile IconList
		if err := toml.Unmarshal(iconData, &iconsFromFile); err != nil {
			return Error.New("failed to parse icon manifest %s: %v", manifest, err)
		}

		for _, icon := range iconsFromFile.Icons {
			if err := icon.Validate(); err != nil {
				return Error.New("%s: %v", manifest, err)
			}
			iconList = merge(iconList, icon)
		}
	}

	s.mutex.Lock()
	s.icons = iconList
	s.mutex.Unlock()

	return nil
}

// merge replaces the size of an existing icon in place, or appends a new one
func merge(icons []Icon, icon Icon) []Icon {
	for i := range icons {
		if icons[i].Name == icon.Name {
			icons[i].Size = icon.Size
			return icons
		}
	}
	return append(icons, icon)
}

// DefaultIcons returns the built-in icon list in display order
func DefaultIcons() []Icon {
	return []Icon{
		{Name: "icon.png", Size: 1024},
		{Name: "adaptive-icon.png", Size: 1024},
		{Name: "favicon.png", Size: 32},
		{Name: "splash-icon.png", Size: 512},
	}
}
