package annotations

import (
	"encoding/json"
	"fmt"
	"os"
)

// Instances is what the classifier-configuration layer sees of a dataset:
// just its annotations. Ground-truth annotations are the reference labels
// used for evaluation; working annotations are the ones accumulated during
// an analysis session.
type Instances interface {
	// Annotations returns the ground-truth or working annotation set.
	Annotations(groundTruth bool) (*Set, error)
}

// Dataset is an in-memory Instances implementation backed by two annotation
// sets. It is the store used by the CLI and by tests.
type Dataset struct {
	groundTruth *Set
	working     *Set
}

// NewDataset creates a dataset from its ground-truth and working sets.
// Either set may be nil when that side has no annotations at all.
func NewDataset(groundTruth, working *Set) *Dataset {
	return &Dataset{groundTruth: groundTruth, working: working}
}

// Annotations implements Instances.
func (d *Dataset) Annotations(groundTruth bool) (*Set, error) {
	if groundTruth {
		if d.groundTruth == nil {
			return nil, fmt.Errorf("dataset has no ground-truth annotations")
		}
		return d.groundTruth, nil
	}
	if d.working == nil {
		return nil, fmt.Errorf("dataset has no working annotations")
	}
	return d.working, nil
}

// datasetJSON is the on-disk dataset shape.
type datasetJSON struct {
	GroundTruth []Annotation `json:"ground_truth,omitempty"`
	Working     []Annotation `json:"working,omitempty"`
}

// LoadDataset reads a dataset annotation file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotations file: %w", err)
	}
	var raw datasetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse annotations file: %w", err)
	}
	d := &Dataset{}
	if raw.GroundTruth != nil {
		d.groundTruth = NewSet(raw.GroundTruth)
	}
	if raw.Working != nil {
		d.working = NewSet(raw.Working)
	}
	return d, nil
}
