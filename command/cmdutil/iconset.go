package cmdutil

import (
	"fmt"

	"github.com/paularlott/cli"
	"github.com/paularlott/iconset/internal/brand"
	"github.com/paularlott/iconset/internal/config"
	"github.com/paularlott/iconset/internal/output"
	"github.com/paularlott/iconset/internal/service"
)

// IconSet is everything a command needs to render icons
type IconSet struct {
	Config     config.IconsConfig
	Format     output.Format
	BrandColor string
	Service    *service.IconService
}

// Document builds the output document for the given icons
func (s *IconSet) Document(icons []service.Icon) output.Document {
	return output.NewDocument(s.Config.AssetsDir, s.BrandColor, icons)
}

// GetIconSet resolves the flags, environment and config file into an icon set
func GetIconSet(cmd *cli.Command) (*IconSet, error) {
	cfg := config.GetIconsConfig(cmd)

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	color, err := brand.Parse(cfg.BrandColor)
	if err != nil {
		return nil, err
	}

	iconService, err := service.NewIconService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load icons: %w", err)
	}

	return &IconSet{
		Config:     cfg,
		Format:     format,
		BrandColor: color,
		Service:    iconService,
	}, nil
}
