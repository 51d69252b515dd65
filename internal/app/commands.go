package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/sections"
)

// Loader fetches the record to preview.
type Loader func(ctx context.Context) (content.Record, error)

// SlugLoader previews a stored record. Drafts are included.
func SlugLoader(svc *content.Service, kind content.Kind, slug string) Loader {
	return func(ctx context.Context) (content.Record, error) {
		return svc.BySlug(ctx, kind, slug)
	}
}

// StaticLoader previews a record that is not stored, such as a template.
func StaticLoader(r content.Record) Loader {
	return func(context.Context) (content.Record, error) {
		return r, nil
	}
}

// LoadCmd runs the loader and decodes the record's sections.
func LoadCmd(ctx context.Context, load Loader) tea.Cmd {
	return func() tea.Msg {
		r, err := load(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		secs, err := sections.Parse(r.Content)
		if err != nil {
			return LoadedMsg{Record: r, Err: err}
		}
		return LoadedMsg{Record: r, Sections: secs}
	}
}
