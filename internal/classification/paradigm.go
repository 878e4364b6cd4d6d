package classification

// ClassifierType represents the learning paradigm of a classifier
// configuration. The paradigm decides what label information supervision
// extraction requires or permits.
type ClassifierType string

const (
	// ClassifierTypeUndetermined is the zero value. It is never attached to a
	// registered method; it only shows up for abstract or unregistered
	// configurations.
	ClassifierTypeUndetermined ClassifierType = ""

	ClassifierTypeUnsupervised   ClassifierType = "unsupervised"
	ClassifierTypeSemiSupervised ClassifierType = "semisupervised"
	ClassifierTypeSupervised     ClassifierType = "supervised"
)

// IsValid checks if the classifier type is a concrete paradigm.
func (t ClassifierType) IsValid() bool {
	switch t {
	case ClassifierTypeUnsupervised, ClassifierTypeSemiSupervised, ClassifierTypeSupervised:
		return true
	}
	return false
}

// String returns string representation.
func (t ClassifierType) String() string {
	if t == ClassifierTypeUndetermined {
		return "undetermined"
	}
	return string(t)
}

// ParseClassifierType parses a paradigm name as used on the CLI.
func ParseClassifierType(s string) (ClassifierType, error) {
	t := ClassifierType(s)
	if !t.IsValid() {
		return ClassifierTypeUndetermined, &InvalidClassifierTypeError{Name: s}
	}
	return t, nil
}
