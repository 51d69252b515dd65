// Package seed creates the initial site content.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/showcase/internal/content"
)

//go:embed seed.yaml
var seedYAML []byte

type entry struct {
	Title   string         `yaml:"title"`
	Slug    string         `yaml:"slug"`
	Content map[string]any `yaml:"content"`
}

// slug is the explicit slug, or the one derived from the title.
func (e entry) slug() string {
	if e.Slug != "" {
		return e.Slug
	}
	return content.Slugify(e.Title)
}

type file struct {
	Services   []entry `yaml:"services"`
	Industries []entry `yaml:"industries"`
	Pages      []entry `yaml:"pages"`
}

// Report counts what a seed run did.
type Report struct {
	Created int
	Skipped int
}

// Run creates every seed record whose slug is not already taken, published.
// Running it twice is harmless.
func Run(ctx context.Context, svc *content.Service, log *zap.Logger) (Report, error) {
	return run(ctx, svc, log, seedYAML)
}

func run(ctx context.Context, svc *content.Service, log *zap.Logger, data []byte) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Report{}, fmt.Errorf("parse seed data: %w", err)
	}

	var rep Report
	groups := []struct {
		kind    content.Kind
		entries []entry
	}{
		{content.KindService, f.Services},
		{content.KindIndustry, f.Industries},
		{content.KindPage, f.Pages},
	}
	for _, g := range groups {
		for i, e := range g.entries {
			slug := e.slug()
			if slug == "" {
				return rep, fmt.Errorf("seed %s %q: %w: no slug", g.kind, e.Title, content.ErrInvalid)
			}
			_, err := svc.BySlug(ctx, g.kind, slug)
			switch {
			case err == nil:
				rep.Skipped++
				continue
			case !errors.Is(err, content.ErrNotFound):
				return rep, err
			}

			r, err := svc.Create(ctx, content.Record{
				Kind:      g.kind,
				Title:     e.Title,
				Slug:      slug,
				Order:     i + 1,
				Published: true,
				Content:   e.Content,
			})
			if err != nil {
				return rep, fmt.Errorf("seed %s %q: %w", g.kind, slug, err)
			}
			rep.Created++
			log.Debug("seeded", zap.String("kind", string(r.Kind)), zap.String("slug", r.Slug))
		}
	}
	return rep, nil
}
