package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "caldesk",
	Short: "Unified relationship calendar",
	Long: "Caldesk aggregates follow-up reminders and meetings from capital partners,\n" +
		"sponsors, counsel, and agents into one interactive calendar.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runRootDefault

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .caldesk.yaml)")
	rootCmd.PersistentFlags().String("db", "", "path to the caldesk database")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".caldesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("CALDESK")
	viper.AutomaticEnv()

	if db, _ := rootCmd.Flags().GetString("db"); db != "" {
		viper.Set("db_path", db)
	}

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault auto-launches the calendar when the database already
// exists; otherwise it shows help so a fresh install isn't dropped into
// an empty screen.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		return cmd.Help()
	}
	return runCalendar(calendarCmd, nil)
}

// isStderrTTY reports whether stderr is connected to a terminal.
func isStderrTTY() bool {
	stat, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
