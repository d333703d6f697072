package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pumicestone/caldesk/internal/gateway"
)

// seedCmd loads contacts, reminders, and meetings from a TOML file.
var seedCmd = &cobra.Command{
	Use:   "seed <file.toml>",
	Short: "Load contacts and meetings from a TOML file",
	Long: `Load contacts, follow-up reminders, and meeting history from a TOML
seed file into the caldesk database. Contacts are upserted by ID, so
re-seeding the same file is safe.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	sf, err := gateway.LoadSeedFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	ctx := context.Background()
	gw, err := gateway.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer gw.Close()

	if err := gw.Seed(ctx, sf); err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	meetings := 0
	for _, c := range sf.Contacts {
		meetings += len(c.Meetings)
	}
	fmt.Printf("seeded %d contact(s) and %d meeting(s) into %s\n",
		len(sf.Contacts), meetings, cfg.DBPath)
	return nil
}
