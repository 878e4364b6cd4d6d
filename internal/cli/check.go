package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marchaud/anomalykit/internal/annotations"
	"github.com/marchaud/anomalykit/internal/classification"
)

var (
	checkMulticlass bool
	checkWorking    bool
	checkNoCheck    bool
)

var checkCmd = &cobra.Command{
	Use:   "check <method> <annotations.json>",
	Short: "Check a dataset's annotations against a method's paradigm",
	Long: `Extract the supervision vector a method would train on and report whether
the dataset satisfies the paradigm's labeling rules: supervised methods need
every instance labeled with at least two classes, semi-supervised methods
permit deliberately unlabeled instances, unsupervised methods need nothing.

Examples:
  anomalykit check RandomForest dataset.json
  anomalykit check LabelPropagation dataset.json --working
  anomalykit check IsolationForest dataset.json`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkMulticlass, "multiclass", false,
		"train on the families instead of the binary labels")
	checkCmd.Flags().BoolVar(&checkWorking, "working", false,
		"use the working annotations instead of the ground truth")
	checkCmd.Flags().BoolVar(&checkNoCheck, "no-check", false,
		"skip the two-class minimum validation")
	rootCmd.AddCommand(checkCmd)
}

type checkReport struct {
	Method    string `json:"method"`
	Paradigm  string `json:"paradigm"`
	Instances int    `json:"instances"`
	Classes   int    `json:"classes,omitempty"`
	Unlabeled int    `json:"unlabeled,omitempty"`
	Vector    bool   `json:"vector"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	method, path := args[0], args[1]

	cfg := loadConfig()
	factory := classification.NewFactory(newLogger(cfg))

	conf, err := factory.Default(method,
		cfg.Classification.NumFolds, cfg.Classification.NumJobs, checkMulticlass)
	if err != nil {
		return err
	}

	dataset, err := annotations.LoadDataset(path)
	if err != nil {
		return err
	}

	sup, err := conf.Supervision(dataset, !checkWorking, !checkNoCheck)
	if err != nil {
		return fmt.Errorf("dataset is unsuitable for %s: %w", method, err)
	}

	report := checkReport{
		Method:   method,
		Paradigm: conf.Paradigm().String(),
	}
	if sup != nil {
		report.Vector = true
		report.Instances = sup.Len()
		report.Classes, report.Unlabeled = summarize(sup)
	}

	if jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if !report.Vector {
		fmt.Fprintf(cmd.OutOrStdout(),
			"%s (%s): no supervision vector needed\n", method, report.Paradigm)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(),
		"%s (%s): %d instances, %d classes, %d unlabeled\n",
		method, report.Paradigm, report.Instances, report.Classes, report.Unlabeled)
	return nil
}

// summarize counts the distinct classes and sentinel entries of a
// supervision vector.
func summarize(sup *classification.Supervision) (classes, unlabeled int) {
	if len(sup.Families) > 0 {
		distinct := make(map[string]struct{})
		for _, f := range sup.Families {
			distinct[f] = struct{}{}
		}
		return len(distinct), 0
	}
	distinct := make(map[int]struct{})
	for _, l := range sup.Labels {
		if l == classification.UnlabeledSentinel {
			unlabeled++
			continue
		}
		distinct[l] = struct{}{}
	}
	return len(distinct), unlabeled
}
