package classification

import (
	"fmt"
	"strconv"

	"github.com/marchaud/anomalykit/internal/classification/hyperparam"
)

// MethodAlreadyTrained is the pass-through method wrapping a model trained
// elsewhere. It carries no hyperparameter configuration.
const MethodAlreadyTrained = "AlreadyTrained"

// builtinMethods declares the method set shipped with the toolkit.
func builtinMethods() []MethodSpec {
	return []MethodSpec{
		{
			Name:              "LogisticRegression",
			Paradigm:          ClassifierTypeSupervised,
			Probabilist:       true,
			ScoringFunction:   "predict_proba",
			FeatureImportance: FeatureImportanceWeight,
			HyperParams: []hyperparam.Param{
				{Name: "c", Kind: hyperparam.KindFloat,
					Defaults: []string{"0.01", "0.1", "1", "10", "100"},
					Help:     "inverse regularization strength candidates"},
				{Name: "penalty", Kind: hyperparam.KindString,
					Defaults: []string{"l1", "l2"},
					Help:     "regularization norm candidates"},
			},
			CheckHyperArgs: checkPositive("c"),
		},
		{
			Name:              "Svc",
			Paradigm:          ClassifierTypeSupervised,
			Probabilist:       true,
			ScoringFunction:   "decision_function",
			FeatureImportance: FeatureImportanceWeight,
			HyperParams: []hyperparam.Param{
				{Name: "c", Kind: hyperparam.KindFloat,
					Defaults: []string{"0.01", "0.1", "1", "10", "100"},
					Help:     "regularization strength candidates"},
				{Name: "kernel", Kind: hyperparam.KindString,
					Defaults: []string{"linear"},
					Help:     "kernel candidates"},
			},
			CheckHyperArgs: checkLinearKernel,
		},
		{
			Name:              "GaussianNaiveBayes",
			Paradigm:          ClassifierTypeSupervised,
			Probabilist:       true,
			ScoringFunction:   "predict_proba",
			FeatureImportance: FeatureImportanceNone,
		},
		{
			Name:              "DecisionTree",
			Paradigm:          ClassifierTypeSupervised,
			Probabilist:       true,
			ScoringFunction:   "predict_proba",
			FeatureImportance: FeatureImportanceScore,
			HyperParams: []hyperparam.Param{
				{Name: "max-depth", Kind: hyperparam.KindInt,
					Defaults: []string{"2", "5", "10", "50"},
					Help:     "tree depth candidates"},
				{Name: "criterion", Kind: hyperparam.KindString,
					Defaults: []string{"gini", "entropy"},
					Help:     "split criterion candidates"},
			},
		},
		{
			Name:              "RandomForest",
			Paradigm:          ClassifierTypeSupervised,
			Probabilist:       true,
			ScoringFunction:   "predict_proba",
			FeatureImportance: FeatureImportanceScore,
			AcceptSparse:      true,
			HyperParams: []hyperparam.Param{
				{Name: "n-estimators", Kind: hyperparam.KindInt,
					Defaults: []string{"10", "50", "100"},
					Help:     "forest size candidates"},
				{Name: "max-depth", Kind: hyperparam.KindInt,
					Defaults: []string{"5", "10", "50"},
					Help:     "tree depth candidates"},
				{Name: "criterion", Kind: hyperparam.KindString,
					Defaults: []string{"gini", "entropy"},
					Help:     "split criterion candidates"},
			},
		},
		{
			Name:              "GradientBoosting",
			Paradigm:          ClassifierTypeSupervised,
			Probabilist:       true,
			ScoringFunction:   "predict_proba",
			FeatureImportance: FeatureImportanceScore,
			AcceptSparse:      true,
			HyperParams: []hyperparam.Param{
				{Name: "n-estimators", Kind: hyperparam.KindInt,
					Defaults: []string{"50", "100", "200"},
					Help:     "boosting stage candidates"},
				{Name: "learning-rate", Kind: hyperparam.KindFloat,
					Defaults: []string{"0.01", "0.1", "0.5"},
					Help:     "shrinkage candidates"},
				{Name: "max-depth", Kind: hyperparam.KindInt,
					Defaults: []string{"3", "5", "10"},
					Help:     "tree depth candidates"},
			},
		},
		{
			Name:              MethodAlreadyTrained,
			Paradigm:          ClassifierTypeSupervised,
			Probabilist:       true,
			ScoringFunction:   "predict_proba",
			FeatureImportance: FeatureImportanceNone,
			NoHyperparams:     true,
		},
		{
			Name:              "LabelPropagation",
			Paradigm:          ClassifierTypeSemiSupervised,
			Probabilist:       true,
			ScoringFunction:   "predict_proba",
			FeatureImportance: FeatureImportanceNone,
			HyperParams: []hyperparam.Param{
				{Name: "kernel", Kind: hyperparam.KindString,
					Defaults: []string{"knn", "rbf"},
					Help:     "kernel candidates"},
				{Name: "n-neighbors", Kind: hyperparam.KindInt,
					Defaults: []string{"3", "7", "11"},
					Help:     "neighborhood size candidates (knn kernel)"},
			},
		},
		{
			// The prediction pipeline does not expose score_samples yet, so
			// the scoring function stays unset.
			Name:              "IsolationForest",
			Paradigm:          ClassifierTypeUnsupervised,
			Probabilist:       false,
			ScoringFunction:   "",
			FeatureImportance: FeatureImportanceScore,
			AcceptSparse:      true,
			HyperParams: []hyperparam.Param{
				{Name: "n-estimators", Kind: hyperparam.KindInt,
					Defaults: []string{"50", "100", "200"},
					Help:     "forest size candidates"},
				{Name: "contamination", Kind: hyperparam.KindFloat,
					Defaults: []string{"0.05", "0.1", "0.2"},
					Help:     "expected outlier proportion candidates"},
			},
		},
		{
			// Same score_samples limitation as IsolationForest.
			Name:              "OneClassSvm",
			Paradigm:          ClassifierTypeUnsupervised,
			Probabilist:       false,
			ScoringFunction:   "",
			FeatureImportance: FeatureImportanceWeight,
			HyperParams: []hyperparam.Param{
				{Name: "kernel", Kind: hyperparam.KindString,
					Defaults: []string{"linear"},
					Help:     "kernel candidates"},
				{Name: "nu", Kind: hyperparam.KindFloat,
					Defaults: []string{"0.05", "0.1", "0.5"},
					Help:     "training error bound candidates"},
			},
			CheckHyperArgs: checkLinearKernel,
		},
	}
}

// checkPositive validates that every candidate of a numeric hyperparameter
// is strictly positive.
func checkPositive(name string) func(*hyperparam.Conf) error {
	return func(c *hyperparam.Conf) error {
		for _, v := range c.Values[name] {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("hyperparameter %s: %q must be a positive number", name, v)
			}
		}
		return nil
	}
}

// checkLinearKernel rejects non-linear kernels for methods whose feature
// importance is exposed as linear weights.
func checkLinearKernel(c *hyperparam.Conf) error {
	for _, v := range c.Values["kernel"] {
		if v != "linear" {
			return fmt.Errorf("hyperparameter kernel: %q is not supported, weight extraction requires the linear kernel", v)
		}
	}
	return nil
}
