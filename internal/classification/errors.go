package classification

import (
	"errors"
	"fmt"
)

// ErrMissingAnnotations is returned when supervision extraction finds an
// instance without a ground-truth label where one is mandatory.
var ErrMissingAnnotations = errors.New(
	"supervised learning models require that all the training instances are annotated")

// ErrAtLeastTwoClasses is returned when a supervised training set contains
// fewer than two distinct label values.
var ErrAtLeastTwoClasses = errors.New(
	"supervised learning models require that the training dataset contains at least two classes")

// UnknownMethodError is returned by the factory when a method name has no
// registered configuration.
type UnknownMethodError struct {
	Method string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown classification method: %s", e.Method)
}

// InvalidClassifierTypeError is returned when a name or registration does not
// denote a recognized learning paradigm. This is a programming error, not a
// data problem.
type InvalidClassifierTypeError struct {
	Name string
}

func (e *InvalidClassifierTypeError) Error() string {
	return fmt.Sprintf("%s is not a classifier paradigm (valid: unsupervised, semisupervised, supervised)", e.Name)
}
