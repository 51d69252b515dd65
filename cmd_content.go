package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/errmsg"
	"github.com/llehouerou/showcase/internal/seed"
	"github.com/llehouerou/showcase/internal/templates"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the initial services, industries and pages",
	Long: `Creates the starter records. Records whose slug already exists are left
untouched, so seeding twice is safe.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List records of a kind, drafts included",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var industryCmd = &cobra.Command{
	Use:   "industry",
	Short: "Manage industry pages",
}

var industryPublish bool

var industryNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create an industry page from its template",
	Long: `Creates an industry page. The slug is derived from the name and its
sections come from the matching industry template, or the default one.

Known templates are listed by "showcase industry templates".`,
	Args: cobra.ExactArgs(1),
	RunE: runIndustryNew,
}

var industryTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List industry templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		for _, slug := range templates.Known() {
			fmt.Fprintln(cmd.OutOrStdout(), slug)
		}
		return nil
	},
}

var reorderCmd = &cobra.Command{
	Use:   "reorder <kind> <id>...",
	Short: "Set the display order of records",
	Long: `Assigns orders 1..n to the given records, in argument order. The change
is all-or-nothing: if any id is unknown nothing is reordered.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runReorder,
}

func init() {
	industryNewCmd.Flags().BoolVar(&industryPublish, "publish", false, "publish immediately")
	industryCmd.AddCommand(industryNewCmd, industryTemplatesCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, s, err := openService(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	rep, err := seed.Run(ctx, svc, logger)
	if err != nil {
		return errmsg.Wrap(errmsg.OpSeed, err)
	}
	logger.Info("seed complete", zap.Int("created", rep.Created), zap.Int("skipped", rep.Skipped))
	fmt.Fprintf(cmd.OutOrStdout(), "created %d, skipped %d\n", rep.Created, rep.Skipped)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	kind, ok := content.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown kind %q", args[0])
	}
	ctx := cmd.Context()
	svc, s, err := openService(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := svc.List(ctx, kind, content.Filter{})
	if err != nil {
		return err
	}
	printRecords(cmd, records, time.Now())
	return nil
}

func printRecords(cmd *cobra.Command, records []content.Record, now time.Time) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tID\tSLUG\tTITLE\tSTATUS\tUPDATED")
	for _, r := range records {
		status := "draft"
		if r.Published {
			status = "published"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Order, r.ID, r.Slug, r.Title, status,
			humanize.RelTime(r.UpdatedAt, now, "ago", "from now"))
	}
	_ = w.Flush()
}

func runIndustryNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	svc, s, err := openService(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	r, err := svc.Create(ctx, content.Record{
		Kind:      content.KindIndustry,
		Title:     args[0],
		Published: industryPublish,
	})
	if err != nil {
		return errmsg.Wrap(errmsg.OpContentCreate, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created industry %s (/industries/%s)\n", r.ID, r.Slug)
	return nil
}

func runReorder(cmd *cobra.Command, args []string) error {
	kind, ok := content.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("unknown kind %q", args[0])
	}
	ctx := cmd.Context()
	svc, s, err := openService(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := svc.ReorderIDs(ctx, kind, args[1:]); err != nil {
		return errmsg.Wrap(errmsg.OpContentReorder, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "reordered %d %s\n", len(args)-1, kind.Plural())
	return nil
}
