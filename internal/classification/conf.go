package classification

import (
	"gonum.org/v1/gonum/mat"

	"github.com/marchaud/anomalykit/internal/annotations"
	"github.com/marchaud/anomalykit/internal/classification/hyperparam"
)

// FeatureImportance classifies how a trained model exposes its per-feature
// influence: not at all, as an importance score ranking, or as the weight
// vector of a linear model.
type FeatureImportance string

const (
	FeatureImportanceNone   FeatureImportance = ""
	FeatureImportanceScore  FeatureImportance = "score"
	FeatureImportanceWeight FeatureImportance = "weight"
)

// IsValid checks if the feature-importance kind is known.
func (f FeatureImportance) IsValid() bool {
	switch f {
	case FeatureImportanceNone, FeatureImportanceScore, FeatureImportanceWeight:
		return true
	}
	return false
}

// TrainedModel is the contract the modeling backend must honor for a fitted
// model handed back to the configuration layer. Coefs returns one row of
// linear weights per class; FeatureImportances returns one score per
// feature. A model only has to implement the accessor matching its
// configuration's feature-importance kind.
type TrainedModel interface {
	Coefs() mat.Matrix
	FeatureImportances() []float64
}

// Supervision is the per-instance label vector extracted from a dataset.
// Exactly one of the two slices is populated: Families for multiclass
// supervised extraction, Labels (integer-coded) otherwise.
type Supervision struct {
	Families []string
	Labels   []int
}

// Len returns the number of instances covered by the vector.
func (s *Supervision) Len() int {
	if len(s.Families) > 0 {
		return len(s.Families)
	}
	return len(s.Labels)
}

// ClassifierConf is a fully constructed classifier configuration. Instances
// are immutable after construction and safe to share across concurrent
// training tasks.
type ClassifierConf interface {
	// Method returns the registry key of the configuration.
	Method() string

	// Paradigm returns the learning paradigm tag.
	Paradigm() ClassifierType

	Multiclass() bool
	HyperparamConf() *hyperparam.Conf
	AcceptSparse() bool
	Probabilist() bool

	// ScoringFunction returns the name of the backend scoring entry point,
	// or "" when the method exposes none.
	ScoringFunction() string

	FeatureImportance() FeatureImportance

	// ExpName returns a stable experiment identifier derived from the model
	// class name and the multiclass flag.
	ExpName() string

	// Interpretable reports whether the trained model exposes per-feature
	// influence at all.
	Interpretable() bool

	// InterpretablePredictions reports whether individual predictions can be
	// explained, which requires linear weights.
	InterpretablePredictions() bool

	// Coefs extracts the influence data matching the feature-importance
	// kind from a trained model: the full weight matrix for multiclass
	// linear models, the single weight vector for binary linear models, the
	// importance vector for score-ranked models, nil otherwise.
	Coefs(model TrainedModel) mat.Matrix

	// Supervision extracts and validates the label vector the paradigm
	// needs from the dataset's annotations.
	Supervision(insts annotations.Instances, groundTruth, check bool) (*Supervision, error)

	// Export returns the persisted representation of the configuration.
	Export() *Record
}

// Record is the persisted shape of a classifier configuration, as consumed
// and produced by the factory's JSON round trip.
type Record struct {
	Type           string             `json:"__type__"`
	HyperparamConf *hyperparam.Record `json:"hyperparam_conf,omitempty"`
	Multiclass     bool               `json:"multiclass"`
	Probabilist    bool               `json:"probabilist"`
	FeatureImp     FeatureImportance  `json:"feature_importance"`
	ModelClassName string             `json:"model_class_name"`
}

// confBase carries the state shared by the three paradigm variants. The
// derived characteristics are captured once, at construction, from the
// method spec.
type confBase struct {
	spec       *MethodSpec
	multiclass bool
	hyper      *hyperparam.Conf

	// characteristics, fixed at construction
	probabilist    bool
	featureImp     FeatureImportance
	modelClassName string
}

func newConfBase(spec *MethodSpec, multiclass bool, hyper *hyperparam.Conf) confBase {
	return confBase{
		spec:           spec,
		multiclass:     multiclass,
		hyper:          hyper,
		probabilist:    spec.Probabilist,
		featureImp:     spec.FeatureImportance,
		modelClassName: spec.Name,
	}
}

func (c *confBase) Method() string { return c.spec.Name }

func (c *confBase) Paradigm() ClassifierType { return c.spec.Paradigm }

func (c *confBase) Multiclass() bool { return c.multiclass }

func (c *confBase) HyperparamConf() *hyperparam.Conf { return c.hyper }

func (c *confBase) AcceptSparse() bool { return c.spec.AcceptSparse }

func (c *confBase) Probabilist() bool { return c.probabilist }

func (c *confBase) ScoringFunction() string { return c.spec.ScoringFunction }

func (c *confBase) FeatureImportance() FeatureImportance { return c.featureImp }

// MulticlassSuffix is appended to the experiment name of multiclass
// configurations so they never collide with their binary counterparts.
const MulticlassSuffix = "__Multiclass"

func (c *confBase) ExpName() string {
	name := c.modelClassName
	if c.multiclass {
		name += MulticlassSuffix
	}
	return name
}

func (c *confBase) Interpretable() bool {
	return c.featureImp == FeatureImportanceScore || c.featureImp == FeatureImportanceWeight
}

func (c *confBase) InterpretablePredictions() bool {
	return c.featureImp == FeatureImportanceWeight
}

func (c *confBase) Coefs(model TrainedModel) mat.Matrix {
	switch c.featureImp {
	case FeatureImportanceWeight:
		coefs := model.Coefs()
		if c.multiclass {
			return coefs
		}
		row := mat.Row(nil, 0, coefs)
		return mat.NewVecDense(len(row), row)
	case FeatureImportanceScore:
		imp := model.FeatureImportances()
		return mat.NewVecDense(len(imp), imp)
	default:
		return nil
	}
}

func (c *confBase) Export() *Record {
	rec := &Record{
		Type:           c.spec.Name,
		Multiclass:     c.multiclass,
		Probabilist:    c.probabilist,
		FeatureImp:     c.featureImp,
		ModelClassName: c.modelClassName,
	}
	if c.hyper != nil {
		rec.HyperparamConf = c.hyper.Export()
	}
	return rec
}

// rawSupervision fetches the annotation vector the paradigm rules refine.
func (c *confBase) rawSupervision(insts annotations.Instances, groundTruth bool) ([]annotations.Annotation, error) {
	set, err := insts.Annotations(groundTruth)
	if err != nil {
		return nil, err
	}
	return set.Supervision(), nil
}
