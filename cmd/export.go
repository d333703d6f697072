package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pumicestone/caldesk/internal/event"
	"github.com/pumicestone/caldesk/internal/export"
	"github.com/pumicestone/caldesk/internal/gateway"
)

// exportCmd writes the aggregated calendar as an iCalendar file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the aggregated calendar as iCalendar",
	Long: `Aggregate reminders and meetings from all four contact modules and
write them as an iCalendar (.ics) stream, suitable for importing into an
external calendar application.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	exportCmd.Flags().Bool("only-mine", false, "export only meetings assigned to the configured user")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	ctx := context.Background()
	gw, err := gateway.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer gw.Close()

	snap, err := gateway.LoadAll(ctx, gw)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}
	for _, w := range snap.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	var filter event.Filter
	if onlyMine, _ := cmd.Flags().GetBool("only-mine"); onlyMine {
		if cfg.UserID == "" {
			return fmt.Errorf("--only-mine requires user_id to be configured")
		}
		filter.OnlyMine = cfg.UserID
	}
	events, _ := event.Aggregate(snap.PerModule, filter, time.Now())
	event.SortByTime(events)

	var out io.Writer = os.Stdout
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", path, createErr)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteICS(out, events); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
