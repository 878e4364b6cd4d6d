package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marchaud/anomalykit/internal/classification"
)

var validateCmd = &cobra.Command{
	Use:   "validate <conf.json>",
	Short: "Validate a persisted classifier configuration",
	Long: `Reload a persisted classifier configuration and verify it re-exports to an
equivalent record.

Example:
  anomalykit validate conf.json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}

	cfg := loadConfig()
	factory := classification.NewFactory(newLogger(cfg))

	conf, err := factory.FromJSON(data)
	if err != nil {
		return err
	}

	// The reloaded configuration must survive a second round trip unchanged.
	first, err := json.Marshal(conf.Export())
	if err != nil {
		return err
	}
	again, err := factory.FromJSON(first)
	if err != nil {
		return fmt.Errorf("re-exported configuration does not reload: %w", err)
	}
	second, err := json.Marshal(again.Export())
	if err != nil {
		return err
	}
	if string(first) != string(second) {
		return fmt.Errorf("configuration does not round-trip: %s != %s", first, second)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid %s configuration (%s)\n",
		args[0], conf.Paradigm(), conf.ExpName())
	return nil
}
