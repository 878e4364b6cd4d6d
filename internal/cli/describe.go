package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/marchaud/anomalykit/internal/classification"
)

var describeCmd = &cobra.Command{
	Use:   "describe <method> [method flags]",
	Short: "Build a classifier configuration and print it",
	Long: `Build a classifier configuration from command-line arguments and print its
exported record. The accepted flags depend on the method: each method
contributes its own hyperparameter flags, and supervised and semi-supervised
methods accept --multiclass.

Examples:
  anomalykit describe LogisticRegression
  anomalykit describe LogisticRegression --multiclass --c 0.1 --c 1
  anomalykit describe IsolationForest --n-estimators 200`,
	// Flags depend on the method argument, so cobra cannot parse them.
	DisableFlagParsing: true,
	RunE:               runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		return cmd.Help()
	}
	method := args[0]
	if strings.HasPrefix(method, "-") {
		return fmt.Errorf("the first argument must be a method name, got %s", method)
	}

	cfg := loadConfig()
	factory := classification.NewFactory(newLogger(cfg))

	fs := pflag.NewFlagSet(method, pflag.ContinueOnError)
	if err := factory.GenParser(method, fs); err != nil {
		return err
	}
	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("method %s: %w", method, err)
	}

	conf, err := factory.FromArgs(method, fs)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(conf.Export(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
