package classification

import (
	"github.com/marchaud/anomalykit/internal/annotations"
	"github.com/marchaud/anomalykit/internal/classification/hyperparam"
)

// SupervisedConf configures a supervised method. Every training instance
// must carry a label, and validated extraction additionally requires at
// least two distinct classes.
type SupervisedConf struct {
	confBase
}

func newSupervisedConf(spec *MethodSpec, multiclass bool, hyper *hyperparam.Conf) *SupervisedConf {
	return &SupervisedConf{confBase: newConfBase(spec, multiclass, hyper)}
}

// Supervision implements the supervised extraction rule: fail on any
// instance without a label, and when check is set, fail unless the labels
// span at least two classes. Returns family names for multiclass
// configurations and integer-coded labels otherwise.
func (c *SupervisedConf) Supervision(insts annotations.Instances, groundTruth, check bool) (*Supervision, error) {
	raw, err := c.rawSupervision(insts, groundTruth)
	if err != nil {
		return nil, err
	}
	for _, a := range raw {
		if a.State != annotations.Labeled {
			return nil, ErrMissingAnnotations
		}
	}
	if c.multiclass {
		families := make([]string, len(raw))
		distinct := make(map[string]struct{}, 2)
		for i, a := range raw {
			families[i] = a.Family
			distinct[a.Family] = struct{}{}
		}
		if check && len(distinct) < 2 {
			return nil, ErrAtLeastTwoClasses
		}
		return &Supervision{Families: families}, nil
	}
	labels := make([]int, len(raw))
	distinct := make(map[int]struct{}, 2)
	for i, a := range raw {
		labels[i] = a.Code
		distinct[a.Code] = struct{}{}
	}
	if check && len(distinct) < 2 {
		return nil, ErrAtLeastTwoClasses
	}
	return &Supervision{Labels: labels}, nil
}
