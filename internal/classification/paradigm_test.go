package classification

import "testing"

func TestClassifierTypeIsValid(t *testing.T) {
	valid := []ClassifierType{
		ClassifierTypeUnsupervised,
		ClassifierTypeSemiSupervised,
		ClassifierTypeSupervised,
	}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("expected %s to be valid", p)
		}
	}

	if ClassifierTypeUndetermined.IsValid() {
		t.Error("expected undetermined to be invalid")
	}
	if ClassifierType("reinforcement").IsValid() {
		t.Error("expected unknown paradigm to be invalid")
	}
}

func TestClassifierTypeString(t *testing.T) {
	if ClassifierTypeUndetermined.String() != "undetermined" {
		t.Errorf("expected undetermined, got %s", ClassifierTypeUndetermined.String())
	}
	if ClassifierTypeSupervised.String() != "supervised" {
		t.Errorf("expected supervised, got %s", ClassifierTypeSupervised.String())
	}
}

func TestParseClassifierType(t *testing.T) {
	tests := []struct {
		input       string
		expected    ClassifierType
		expectError bool
	}{
		{"supervised", ClassifierTypeSupervised, false},
		{"semisupervised", ClassifierTypeSemiSupervised, false},
		{"unsupervised", ClassifierTypeUnsupervised, false},
		{"", ClassifierTypeUndetermined, true},
		{"Supervised", ClassifierTypeUndetermined, true},
		{"reinforcement", ClassifierTypeUndetermined, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClassifierType(tt.input)
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
