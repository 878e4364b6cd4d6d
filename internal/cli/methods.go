package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marchaud/anomalykit/internal/classification"
)

var methodsParadigm string

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the available classification methods",
	Long: `List the registered classification methods, optionally restricted to one
learning paradigm.

Examples:
  anomalykit methods
  anomalykit methods --paradigm supervised`,
	Args: cobra.NoArgs,
	RunE: runMethods,
}

func init() {
	methodsCmd.Flags().StringVar(&methodsParadigm, "paradigm", "",
		"only list methods of this paradigm (unsupervised, semisupervised, supervised)")
	rootCmd.AddCommand(methodsCmd)
}

func runMethods(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	factory := classification.NewFactory(newLogger(cfg))

	paradigm := classification.ClassifierTypeUndetermined
	if methodsParadigm != "" {
		var err error
		if paradigm, err = classification.ParseClassifierType(methodsParadigm); err != nil {
			return err
		}
	}

	names := factory.Methods(paradigm)

	if jsonOut {
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	for _, name := range names {
		p, err := factory.ParadigmOf(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", name, p)
	}
	return nil
}
