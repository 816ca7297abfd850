package config

import (
	"fmt"

	"github.com/jpalmerr/purrboard"
)

// BuildContent converts the content sections of cfg into SDK content.
//
// Empty lists keep the stock content of [purrboard.DefaultContent]; an
// empty title or tagline keeps the stock text.
func BuildContent(cfg *Config) (purrboard.Content, error) {
	content := purrboard.DefaultContent()

	if cfg.Title != "" {
		content.Title = cfg.Title
	}
	if cfg.Tagline != "" {
		content.Tagline = cfg.Tagline
	}

	if len(cfg.Images) > 0 {
		images := make([]purrboard.Image, 0, len(cfg.Images))
		for i, ic := range cfg.Images {
			img, err := purrboard.NewImage(ic.URL, ic.Caption)
			if err != nil {
				return purrboard.Content{}, fmt.Errorf("images[%d]: %w", i, err)
			}
			images = append(images, img)
		}
		content.Images = images
	}

	if len(cfg.Facts) > 0 {
		content.Facts = append([]string(nil), cfg.Facts...)
	}

	if len(cfg.Breeds) > 0 {
		breeds := make([]purrboard.Breed, len(cfg.Breeds))
		for i, bc := range cfg.Breeds {
			breeds[i] = purrboard.Breed{Name: bc.Name, Description: bc.Description}
		}
		content.Breeds = breeds
	}

	return content, nil
}

// BuildOptions converts parsed configuration into SDK options.
//
// The logger is not part of the result; callers add [purrboard.WithLogger]
// themselves, typically with a logger from [NewLogger].
func BuildOptions(cfg *Config) ([]purrboard.Option, error) {
	content, err := BuildContent(cfg)
	if err != nil {
		return nil, err
	}

	t := cfg.Timings
	opts := []purrboard.Option{
		purrboard.WithContent(content),
		purrboard.WithPort(cfg.Port),
		purrboard.WithAdvanceInterval(t.AdvanceInterval.Duration()),
		purrboard.WithProgressInterval(t.ProgressInterval.Duration()),
		purrboard.WithFactInterval(t.FactInterval.Duration()),
		purrboard.WithNoticeDelay(t.NoticeDelay.Duration()),
		purrboard.WithReducedMotion(cfg.ReduceMotion),
	}
	if cfg.Seed != 0 {
		opts = append(opts, purrboard.WithSeed(cfg.Seed))
	}

	return opts, nil
}
