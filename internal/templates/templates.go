// Package templates provides starter content for new industry pages.
package templates

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/template"

	"gopkg.in/yaml.v3"
)

// DefaultKey is the template used for industries without a dedicated one.
const DefaultKey = "default"

//go:embed industries.yaml
var industriesYAML []byte

var (
	loadOnce sync.Once
	loaded   map[string]map[string]any
	loadErr  error
)

// ErrEmptyName is returned when Populate is called without an industry name.
var ErrEmptyName = errors.New("industry name is required")

func load() (map[string]map[string]any, error) {
	loadOnce.Do(func() {
		loaded, loadErr = parse(industriesYAML)
	})
	return loaded, loadErr
}

func parse(data []byte) (map[string]map[string]any, error) {
	var out map[string]map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse industry templates: %w", err)
	}
	if _, ok := out[DefaultKey]; !ok {
		return nil, fmt.Errorf("industry templates: missing %q entry", DefaultKey)
	}
	return out, nil
}

// Known lists the industry slugs that have a dedicated template, sorted.
func Known() []string {
	all, err := load()
	if err != nil {
		return nil
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		if k != DefaultKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether slug has a dedicated template.
func Has(slug string) bool {
	all, err := load()
	if err != nil {
		return false
	}
	_, ok := all[slug]
	return ok && slug != DefaultKey
}

// Populate returns the content block for an industry page named name. The
// template keyed by slug is used when present, otherwise the default one.
// The result is a fresh copy the caller may modify.
func Populate(name, slug string) (map[string]any, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	all, err := load()
	if err != nil {
		return nil, err
	}
	tmpl, ok := all[slug]
	if !ok {
		tmpl = all[DefaultKey]
	}

	data := struct{ Name string }{Name: name}
	rendered, err := render(tmpl, data)
	if err != nil {
		return nil, err
	}
	out, ok := rendered.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("industry template %q: not a mapping", slug)
	}
	return out, nil
}

// render walks v and executes every string as a text/template.
func render(v any, data any) (any, error) {
	switch t := v.(type) {
	case string:
		if !strings.Contains(t, "{{") {
			return t, nil
		}
		tpl, err := template.New("field").Option("missingkey=error").Parse(t)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", t, err)
		}
		var b strings.Builder
		if err := tpl.Execute(&b, data); err != nil {
			return nil, fmt.Errorf("template %q: %w", t, err)
		}
		return b.String(), nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			r, err := render(child, data)
			if err != nil {
				return nil, err
			}
			out[k] = r
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			r, err := render(child, data)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	default:
		return v, nil
	}
}
