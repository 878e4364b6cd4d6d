package annotations

import (
	"encoding/json"
	"fmt"
)

// State classifies an instance annotation. Missing means no analyst ever
// looked at the instance; Unlabeled means an analyst deliberately left it
// without a label (semi-supervised training data); Labeled carries a value.
type State int

const (
	Missing State = iota
	Unlabeled
	Labeled
)

// String returns string representation of the annotation state.
func (s State) String() string {
	switch s {
	case Missing:
		return "missing"
	case Unlabeled:
		return "unlabeled"
	case Labeled:
		return "labeled"
	default:
		return "unknown"
	}
}

// Annotation is the per-instance label value. Code is the integer-coded
// binary label and Family the fine-grained class name; both are meaningful
// only when State is Labeled.
type Annotation struct {
	State  State
	Code   int
	Family string
}

// annotationJSON is the on-disk shape of a single annotation.
type annotationJSON struct {
	Unlabeled bool   `json:"unlabeled,omitempty"`
	Label     int    `json:"label"`
	Family    string `json:"family,omitempty"`
}

// UnmarshalJSON decodes an annotation. JSON null maps to Missing and
// {"unlabeled": true} to Unlabeled.
func (a *Annotation) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Annotation{State: Missing}
		return nil
	}
	var raw annotationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse annotation: %w", err)
	}
	if raw.Unlabeled {
		*a = Annotation{State: Unlabeled}
		return nil
	}
	*a = Annotation{State: Labeled, Code: raw.Label, Family: raw.Family}
	return nil
}

// MarshalJSON encodes an annotation in the same shape UnmarshalJSON reads.
func (a Annotation) MarshalJSON() ([]byte, error) {
	switch a.State {
	case Missing:
		return []byte("null"), nil
	case Unlabeled:
		return json.Marshal(annotationJSON{Unlabeled: true})
	default:
		return json.Marshal(annotationJSON{Label: a.Code, Family: a.Family})
	}
}

// Set holds the annotations of every instance of a dataset, in instance
// order.
type Set struct {
	entries []Annotation
}

// NewSet creates an annotation set from per-instance values.
func NewSet(entries []Annotation) *Set {
	return &Set{entries: entries}
}

// Len returns the number of instances.
func (s *Set) Len() int {
	return len(s.entries)
}

// Supervision returns a copy of the per-instance annotation vector. Callers
// apply their own paradigm rules on top of it.
func (s *Set) Supervision() []Annotation {
	out := make([]Annotation, len(s.entries))
	copy(out, s.entries)
	return out
}

// NumLabeled returns how many instances carry a label value.
func (s *Set) NumLabeled() int {
	n := 0
	for _, a := range s.entries {
		if a.State == Labeled {
			n++
		}
	}
	return n
}
