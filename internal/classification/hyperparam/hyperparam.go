package hyperparam

import (
	"fmt"
	"strconv"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/spf13/pflag"
)

const (
	// DefaultNumFolds is the cross-validation fold count used by supervised
	// hyperparameter search when none is given.
	DefaultNumFolds = 4
)

// Kind is the value type of a hyperparameter.
type Kind string

const (
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
	KindString Kind = "string"
)

// Param declares one tunable hyperparameter of a model class: its name, its
// value kind and the default candidate grid searched during optimization.
type Param struct {
	Name     string
	Kind     Kind
	Defaults []string
	Help     string
}

// Conf holds the hyperparameter search settings attached to a classifier
// configuration: the candidate grid per hyperparameter plus the
// cross-validation fold count and parallelism degree of the search.
type Conf struct {
	NumFolds int
	NumJobs  int
	Values   map[string][]string
}

// Record is the persisted shape of a Conf.
type Record struct {
	NumFolds int                 `json:"num_folds"`
	NumJobs  int                 `json:"n_jobs"`
	Values   map[string][]string `json:"values"`
}

// GenParser contributes the hyperparameter flags for the given model class
// to a flag set. The fold-count flag only exists for supervised methods
// since grid search needs labels to cross-validate against.
func GenParser(fs *pflag.FlagSet, params []Param, supervised bool) {
	if supervised {
		fs.Int("num-folds", DefaultNumFolds,
			"number of cross-validation folds for hyperparameter search")
	}
	fs.Int("n-jobs", -1,
		"parallelism degree of the hyperparameter search (-1 = all cores)")
	for _, p := range params {
		fs.StringSlice(p.Name, p.Defaults, p.Help)
	}
}

// FromArgs builds a Conf from parsed CLI flags, as contributed by GenParser
// for the same model class.
func FromArgs(fs *pflag.FlagSet, params []Param, supervised bool) (*Conf, error) {
	conf := &Conf{
		NumFolds: DefaultNumFolds,
		Values:   make(map[string][]string, len(params)),
	}
	var err error
	if supervised {
		if conf.NumFolds, err = fs.GetInt("num-folds"); err != nil {
			return nil, fmt.Errorf("failed to read num-folds: %w", err)
		}
	}
	if conf.NumJobs, err = fs.GetInt("n-jobs"); err != nil {
		return nil, fmt.Errorf("failed to read n-jobs: %w", err)
	}
	conf.NumJobs = resolveNumJobs(conf.NumJobs)
	for _, p := range params {
		values, err := fs.GetStringSlice(p.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p.Name, err)
		}
		conf.Values[p.Name] = values
	}
	if err := conf.validate(params); err != nil {
		return nil, err
	}
	return conf, nil
}

// FromJSON rebuilds a Conf from its persisted record.
func FromJSON(record *Record, params []Param) (*Conf, error) {
	if record == nil {
		return nil, fmt.Errorf("missing hyperparam_conf record")
	}
	conf := &Conf{
		NumFolds: record.NumFolds,
		NumJobs:  record.NumJobs,
		Values:   make(map[string][]string, len(params)),
	}
	for _, p := range params {
		values, ok := record.Values[p.Name]
		if !ok {
			values = p.Defaults
		}
		conf.Values[p.Name] = values
	}
	if err := conf.validate(params); err != nil {
		return nil, err
	}
	return conf, nil
}

// Default builds a Conf with the declared default grids, bypassing flag
// parsing.
func Default(numFolds, numJobs int, params []Param) *Conf {
	if numFolds < 1 {
		numFolds = DefaultNumFolds
	}
	conf := &Conf{
		NumFolds: numFolds,
		NumJobs:  resolveNumJobs(numJobs),
		Values:   make(map[string][]string, len(params)),
	}
	for _, p := range params {
		conf.Values[p.Name] = p.Defaults
	}
	return conf
}

// Export returns the persisted shape of the configuration.
func (c *Conf) Export() *Record {
	values := make(map[string][]string, len(c.Values))
	for name, grid := range c.Values {
		out := make([]string, len(grid))
		copy(out, grid)
		values[name] = out
	}
	return &Record{
		NumFolds: c.NumFolds,
		NumJobs:  c.NumJobs,
		Values:   values,
	}
}

func (c *Conf) validate(params []Param) error {
	if c.NumFolds < 1 {
		return fmt.Errorf("num-folds must be at least 1, got %d", c.NumFolds)
	}
	for _, p := range params {
		for _, v := range c.Values[p.Name] {
			if err := checkValue(p.Kind, v); err != nil {
				return fmt.Errorf("hyperparameter %s: %w", p.Name, err)
			}
		}
	}
	return nil
}

func checkValue(kind Kind, value string) error {
	switch kind {
	case KindInt:
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("%q is not an integer", value)
		}
	case KindFloat:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%q is not a number", value)
		}
	}
	return nil
}

// resolveNumJobs replaces a non-positive parallelism degree with the host
// logical CPU count.
func resolveNumJobs(n int) int {
	if n > 0 {
		return n
	}
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		return 1
	}
	return count
}
