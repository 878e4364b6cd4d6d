package classification

import (
	"github.com/marchaud/anomalykit/internal/annotations"
	"github.com/marchaud/anomalykit/internal/classification/hyperparam"
)

// UnsupervisedConf configures an unsupervised method. Such configurations
// are never multiclass, and labels are advisory context only: extraction
// never fails on missing annotations.
type UnsupervisedConf struct {
	confBase
}

func newUnsupervisedConf(spec *MethodSpec, hyper *hyperparam.Conf) *UnsupervisedConf {
	return &UnsupervisedConf{confBase: newConfBase(spec, false, hyper)}
}

// Supervision implements the unsupervised extraction rule: no vector at all
// unless ground truth was explicitly requested, and no validation of any
// kind. Instances without a label are coded with the -1 sentinel rather
// than rejected.
func (c *UnsupervisedConf) Supervision(insts annotations.Instances, groundTruth, check bool) (*Supervision, error) {
	if !groundTruth {
		return nil, nil
	}
	raw, err := c.rawSupervision(insts, groundTruth)
	if err != nil {
		return nil, err
	}
	labels := make([]int, len(raw))
	for i, a := range raw {
		if a.State == annotations.Labeled {
			labels[i] = a.Code
		} else {
			labels[i] = UnlabeledSentinel
		}
	}
	return &Supervision{Labels: labels}, nil
}
