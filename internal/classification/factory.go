package classification

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/pflag"

	"github.com/marchaud/anomalykit/internal/classification/hyperparam"
)

// MethodSpec declares a concrete classification method: its registry name,
// paradigm tag and the capability set the configuration layer needs from it.
// The paradigm tag is attached here, at registration, so it is never derived
// from the runtime type of a configuration.
type MethodSpec struct {
	Name              string
	Paradigm          ClassifierType
	Probabilist       bool
	ScoringFunction   string
	FeatureImportance FeatureImportance
	AcceptSparse      bool
	HyperParams       []hyperparam.Param

	// CheckHyperArgs validates method-specific hyperparameter arguments.
	// nil means no extra validation.
	CheckHyperArgs func(*hyperparam.Conf) error

	// NoHyperparams marks pass-through methods that carry no hyperparameter
	// configuration at all.
	NoHyperparams bool
}

// Factory resolves method names to classifier configurations. The registry
// is populated at construction and read-only afterwards, so a single
// factory is safe for concurrent use.
type Factory struct {
	logger  *slog.Logger
	methods map[string]*MethodSpec
}

// NewFactory creates a factory pre-populated with the built-in methods.
func NewFactory(logger *slog.Logger) *Factory {
	f := &Factory{
		logger:  logger,
		methods: make(map[string]*MethodSpec),
	}
	for _, spec := range builtinMethods() {
		if err := f.Register(spec); err != nil {
			// Built-in specs are validated by tests; a bad one is a bug.
			panic(err)
		}
	}
	return f
}

// Register adds a method to the registry. It fails when the paradigm tag is
// not a concrete paradigm or the name is already taken. Registration is not
// safe concurrently with lookups; register everything up front.
func (f *Factory) Register(spec MethodSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("method name cannot be empty")
	}
	if !spec.Paradigm.IsValid() {
		return &InvalidClassifierTypeError{Name: spec.Paradigm.String()}
	}
	if !spec.FeatureImportance.IsValid() {
		return fmt.Errorf("method %s: invalid feature importance %q", spec.Name, spec.FeatureImportance)
	}
	if _, exists := f.methods[spec.Name]; exists {
		return fmt.Errorf("method %s is already registered", spec.Name)
	}
	s := spec
	f.methods[spec.Name] = &s
	return nil
}

// Methods returns the registered method names, sorted. With a concrete
// paradigm it returns only the methods carrying that tag; with
// ClassifierTypeUndetermined it returns everything.
func (f *Factory) Methods(paradigm ClassifierType) []string {
	names := make([]string, 0, len(f.methods))
	for name, spec := range f.methods {
		if paradigm != ClassifierTypeUndetermined && spec.Paradigm != paradigm {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParadigmOf returns the paradigm tag of a registered method.
func (f *Factory) ParadigmOf(method string) (ClassifierType, error) {
	spec, ok := f.methods[method]
	if !ok {
		return ClassifierTypeUndetermined, &UnknownMethodError{Method: method}
	}
	return spec.Paradigm, nil
}

// GenParser contributes the CLI flags of a method to a flag set: the
// multiclass flag where the paradigm allows it, plus the hyperparameter
// flags of the method's model class.
func (f *Factory) GenParser(method string, fs *pflag.FlagSet) error {
	spec, ok := f.methods[method]
	if !ok {
		return &UnknownMethodError{Method: method}
	}
	if spec.Paradigm != ClassifierTypeUnsupervised {
		fs.Bool("multiclass", false,
			"train on the families instead of the binary labels")
	}
	if !spec.NoHyperparams {
		hyperparam.GenParser(fs, spec.HyperParams,
			spec.Paradigm == ClassifierTypeSupervised)
	}
	return nil
}

// FromArgs builds a configuration from parsed CLI flags, as contributed by
// GenParser for the same method.
func (f *Factory) FromArgs(method string, fs *pflag.FlagSet) (ClassifierConf, error) {
	spec, ok := f.methods[method]
	if !ok {
		return nil, &UnknownMethodError{Method: method}
	}

	var hyper *hyperparam.Conf
	if !spec.NoHyperparams {
		var err error
		hyper, err = hyperparam.FromArgs(fs, spec.HyperParams,
			spec.Paradigm == ClassifierTypeSupervised)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", method, err)
		}
		if spec.CheckHyperArgs != nil {
			if err := spec.CheckHyperArgs(hyper); err != nil {
				return nil, fmt.Errorf("method %s: %w", method, err)
			}
		}
	}

	multiclass := false
	if spec.Paradigm != ClassifierTypeUnsupervised {
		var err error
		if multiclass, err = fs.GetBool("multiclass"); err != nil {
			return nil, fmt.Errorf("failed to read multiclass: %w", err)
		}
	}

	conf := f.build(spec, multiclass, hyper)
	f.logger.Debug("classifier configuration built from args",
		"method", method,
		"paradigm", spec.Paradigm.String(),
		"multiclass", multiclass,
	)
	return conf, nil
}

// FromJSON rebuilds a configuration from its persisted record. A record
// produced by Export round-trips to a behaviorally equivalent
// configuration.
func (f *Factory) FromJSON(data []byte) (ClassifierConf, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse classifier record: %w", err)
	}
	return f.FromRecord(&record)
}

// FromRecord rebuilds a configuration from an already decoded record.
func (f *Factory) FromRecord(record *Record) (ClassifierConf, error) {
	spec, ok := f.methods[record.Type]
	if !ok {
		return nil, &UnknownMethodError{Method: record.Type}
	}

	var hyper *hyperparam.Conf
	if !spec.NoHyperparams {
		var err error
		hyper, err = hyperparam.FromJSON(record.HyperparamConf, spec.HyperParams)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", record.Type, err)
		}
	}

	multiclass := record.Multiclass
	conf := f.build(spec, multiclass, hyper)
	f.logger.Debug("classifier configuration restored",
		"method", record.Type,
		"paradigm", spec.Paradigm.String(),
		"multiclass", multiclass,
	)
	return conf, nil
}

// Default builds a configuration with default hyperparameter grids,
// bypassing flag parsing entirely.
func (f *Factory) Default(method string, numFolds, numJobs int, multiclass bool) (ClassifierConf, error) {
	spec, ok := f.methods[method]
	if !ok {
		return nil, &UnknownMethodError{Method: method}
	}
	var hyper *hyperparam.Conf
	if !spec.NoHyperparams {
		hyper = hyperparam.Default(numFolds, numJobs, spec.HyperParams)
	}
	return f.build(spec, multiclass, hyper), nil
}

// build constructs the paradigm variant for a method spec.
func (f *Factory) build(spec *MethodSpec, multiclass bool, hyper *hyperparam.Conf) ClassifierConf {
	switch spec.Paradigm {
	case ClassifierTypeSupervised:
		return newSupervisedConf(spec, multiclass, hyper)
	case ClassifierTypeSemiSupervised:
		return newSemiSupervisedConf(spec, multiclass, hyper)
	default:
		return newUnsupervisedConf(spec, hyper)
	}
}
