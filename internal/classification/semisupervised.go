package classification

import (
	"github.com/marchaud/anomalykit/internal/annotations"
	"github.com/marchaud/anomalykit/internal/classification/hyperparam"
)

// SemiSupervisedConf configures a semi-supervised method. Instances an
// analyst deliberately left unlabeled are permitted and encoded with the -1
// sentinel; instances whose annotation is missing altogether remain an
// error, as in the supervised case.
type SemiSupervisedConf struct {
	confBase
}

// UnlabeledSentinel marks deliberately unlabeled instances in
// semi-supervised supervision vectors.
const UnlabeledSentinel = -1

func newSemiSupervisedConf(spec *MethodSpec, multiclass bool, hyper *hyperparam.Conf) *SemiSupervisedConf {
	return &SemiSupervisedConf{confBase: newConfBase(spec, multiclass, hyper)}
}

// Supervision implements the semi-supervised extraction rule. There is no
// two-class minimum regardless of check.
func (c *SemiSupervisedConf) Supervision(insts annotations.Instances, groundTruth, check bool) (*Supervision, error) {
	raw, err := c.rawSupervision(insts, groundTruth)
	if err != nil {
		return nil, err
	}
	labels := make([]int, len(raw))
	for i, a := range raw {
		switch a.State {
		case annotations.Missing:
			return nil, ErrMissingAnnotations
		case annotations.Unlabeled:
			labels[i] = UnlabeledSentinel
		default:
			labels[i] = a.Code
		}
	}
	return &Supervision{Labels: labels}, nil
}
