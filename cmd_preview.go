package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llehouerou/showcase/internal/app"
	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/keymap"
	"github.com/llehouerou/showcase/internal/templates"
)

var (
	previewKind     string
	previewTemplate string
)

var previewCmd = &cobra.Command{
	Use:   "preview [slug]",
	Short: "Preview a page in the terminal",
	Long: `Renders a record's sections with their carousels and marquees running.

Drag with the mouse to swipe a carousel, or use the arrow keys on the
focused section. Press w to switch between the wide and narrow layouts.

Examples:
  showcase preview home
  showcase preview --kind industries healthcare
  showcase preview --template fintech "Fintech"`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewKind, "kind", "k", "page", "record kind (service, industry, page)")
	previewCmd.Flags().StringVarP(&previewTemplate, "template", "t", "", "preview an industry template instead of a stored record; the argument is the industry name")
	previewCmd.Long += "\n\n" + previewKeys()
}

// previewKeys renders the key reference for the preview help text.
func previewKeys() string {
	r := keymap.NewResolver(keymap.All)
	var b strings.Builder
	b.WriteString("Keys:\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	seen := make(map[keymap.Action]bool)
	for _, kb := range keymap.All {
		if seen[kb.Action] {
			continue
		}
		seen[kb.Action] = true
		fmt.Fprintf(w, "  %s\t%s\n", strings.Join(r.KeysFor(kb.Action), ", "), kb.Description)
	}
	_ = w.Flush()
	return b.String()
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cc := cfg.GetCarouselConfig()
	opts := app.Options{
		Logger:     logger,
		Carousel:   cc.Engine(),
		Marquee:    cc.Marquee(),
		Breakpoint: cc.BreakpointPX,
		CellWidth:  cc.CellWidthPX,
	}

	if previewTemplate != "" {
		name := strings.TrimSpace(args[0])
		c, err := templates.Populate(name, previewTemplate)
		if err != nil {
			return err
		}
		opts.Load = app.StaticLoader(content.Record{
			Kind:    content.KindIndustry,
			Title:   name,
			Slug:    previewTemplate,
			Content: c,
		})
		return app.Run(ctx, opts)
	}

	kind, ok := content.ParseKind(previewKind)
	if !ok {
		return fmt.Errorf("unknown kind %q", previewKind)
	}
	svc, s, err := openService(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	opts.Load = app.SlugLoader(svc, kind, args[0])
	return app.Run(ctx, opts)
}
