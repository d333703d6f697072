package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pumicestone/caldesk/internal/config"
	"github.com/pumicestone/caldesk/internal/gateway"
	"github.com/pumicestone/caldesk/internal/tui"
)

// calendarCmd launches the interactive calendar.
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Launch the interactive calendar",
	Long: `Launch the calendar TUI. Reminders and meetings from all four contact
modules are aggregated into one month view; meetings can be created,
edited, rescheduled, and deleted in place.`,
	Args: cobra.NoArgs,
	RunE: runCalendar,
}

func init() {
	calendarCmd.Flags().Bool("only-mine", false, "start with the only-my-meetings filter on")
	rootCmd.AddCommand(calendarCmd)
}

func loadConfig() config.Config {
	cfg := config.Load()
	if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
		cfg.Verbose = true
	}
	return cfg
}

func runCalendar(cmd *cobra.Command, _ []string) error {
	if !isStderrTTY() {
		return fmt.Errorf("caldesk calendar requires a TTY (terminal)")
	}

	cfg := loadConfig()
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	gw, err := gateway.OpenSQLite(context.Background(), cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer gw.Close()

	onlyMine, _ := cmd.Flags().GetBool("only-mine")
	model := tui.NewAppModel(gw, cfg.UserID, cfg.UserName, onlyMine)

	if cfg.WatchDB {
		w, watchErr := gateway.NewWatcher(cfg.DBPath)
		if watchErr != nil {
			fmt.Fprintf(os.Stderr, "warning: watcher unavailable: %v\n", watchErr)
		} else if startErr := w.Start(); startErr != nil {
			fmt.Fprintf(os.Stderr, "warning: watcher start failed: %v\n", startErr)
		} else {
			model.SetWatch(w.Changes)
			defer w.Stop()
		}
	}

	return tui.Run(model)
}
