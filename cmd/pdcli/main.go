// Command pdcli solves and plays the Priests and Devils puzzle in a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"priests-devils/config"
)

var (
	configPath string
	priests    int
	devils     int
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "pdcli",
	Short:         "Priests and Devils river crossing puzzle",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file")
	rootCmd.PersistentFlags().IntVar(&priests, "priests", -1, "number of priests (overrides config)")
	rootCmd.PersistentFlags().IntVar(&devils, "devils", -1, "number of devils (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	rootCmd.AddCommand(solveCmd, playCmd)
}

// loadConfig merges the config file with the command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("priests") {
		cfg.Priests = priests
	}
	if cmd.Flags().Changed("devils") {
		cfg.Devils = devils
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
