package classification

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

// fakeModel implements TrainedModel for coefficient extraction tests.
type fakeModel struct {
	coefs *mat.Dense
	imp   []float64
}

func (m *fakeModel) Coefs() mat.Matrix { return m.coefs }

func (m *fakeModel) FeatureImportances() []float64 { return m.imp }

func TestExpName(t *testing.T) {
	f := newTestFactory()

	binary, err := f.Default("LogisticRegression", 4, 1, false)
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	multi, err := f.Default("LogisticRegression", 4, 1, true)
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if binary.ExpName() != "LogisticRegression" {
		t.Errorf("expected LogisticRegression, got %s", binary.ExpName())
	}
	if multi.ExpName() != binary.ExpName()+MulticlassSuffix {
		t.Errorf("expected multiclass name to differ only by suffix, got %s", multi.ExpName())
	}
}

func TestInterpretability(t *testing.T) {
	f := newTestFactory()

	tests := []struct {
		method                   string
		interpretable            bool
		interpretablePredictions bool
	}{
		{"LogisticRegression", true, true},
		{"OneClassSvm", true, true},
		{"RandomForest", true, false},
		{"IsolationForest", true, false},
		{"GaussianNaiveBayes", false, false},
		{"LabelPropagation", false, false},
		{MethodAlreadyTrained, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			conf, err := f.Default(tt.method, 4, 1, false)
			if err != nil {
				t.Fatalf("Default failed: %v", err)
			}
			if conf.Interpretable() != tt.interpretable {
				t.Errorf("Interpretable() = %v, expected %v",
					conf.Interpretable(), tt.interpretable)
			}
			if conf.InterpretablePredictions() != tt.interpretablePredictions {
				t.Errorf("InterpretablePredictions() = %v, expected %v",
					conf.InterpretablePredictions(), tt.interpretablePredictions)
			}
		})
	}
}

func TestScoringFunction(t *testing.T) {
	f := newTestFactory()

	lr, _ := f.Default("LogisticRegression", 4, 1, false)
	if lr.ScoringFunction() != "predict_proba" {
		t.Errorf("expected predict_proba, got %s", lr.ScoringFunction())
	}

	// Unsupervised methods expose no scoring function for now.
	iforest, _ := f.Default("IsolationForest", 4, 1, false)
	if iforest.ScoringFunction() != "" {
		t.Errorf("expected no scoring function, got %s", iforest.ScoringFunction())
	}
	if iforest.Probabilist() {
		t.Error("expected IsolationForest not to be probabilist")
	}
}

func TestCoefsWeightBinary(t *testing.T) {
	f := newTestFactory()
	conf, _ := f.Default("LogisticRegression", 4, 1, false)

	model := &fakeModel{coefs: mat.NewDense(1, 3, []float64{0.5, -1.0, 2.0})}
	coefs := conf.Coefs(model)
	if coefs == nil {
		t.Fatal("expected coefficients")
	}

	vec, ok := coefs.(*mat.VecDense)
	if !ok {
		t.Fatalf("expected a vector for binary weights, got %T", coefs)
	}
	if vec.Len() != 3 {
		t.Fatalf("expected 3 coefficients, got %d", vec.Len())
	}
	expected := []float64{0.5, -1.0, 2.0}
	for i, want := range expected {
		if vec.AtVec(i) != want {
			t.Errorf("coefficient %d: expected %f, got %f", i, want, vec.AtVec(i))
		}
	}
}

func TestCoefsWeightMulticlass(t *testing.T) {
	f := newTestFactory()
	conf, _ := f.Default("LogisticRegression", 4, 1, true)

	model := &fakeModel{coefs: mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})}
	coefs := conf.Coefs(model)
	if coefs == nil {
		t.Fatal("expected coefficients")
	}

	rows, cols := coefs.Dims()
	if rows != 3 || cols != 2 {
		t.Errorf("expected the full 3x2 weight matrix, got %dx%d", rows, cols)
	}
	if coefs.At(2, 1) != 6 {
		t.Errorf("expected weight 6 at (2,1), got %f", coefs.At(2, 1))
	}
}

func TestCoefsScore(t *testing.T) {
	f := newTestFactory()
	conf, _ := f.Default("RandomForest", 4, 1, false)

	model := &fakeModel{imp: []float64{0.1, 0.7, 0.2}}
	coefs := conf.Coefs(model)
	if coefs == nil {
		t.Fatal("expected importance vector")
	}

	vec, ok := coefs.(*mat.VecDense)
	if !ok {
		t.Fatalf("expected a vector, got %T", coefs)
	}
	if vec.Len() != 3 {
		t.Fatalf("expected 3 importances, got %d", vec.Len())
	}
	if vec.AtVec(1) != 0.7 {
		t.Errorf("expected importance 0.7, got %f", vec.AtVec(1))
	}
}

func TestCoefsNone(t *testing.T) {
	f := newTestFactory()
	conf, _ := f.Default("GaussianNaiveBayes", 4, 1, false)

	if coefs := conf.Coefs(&fakeModel{}); coefs != nil {
		t.Errorf("expected nil coefficients, got %v", coefs)
	}
}

func TestFeatureImportanceIsValid(t *testing.T) {
	valid := []FeatureImportance{
		FeatureImportanceNone,
		FeatureImportanceScore,
		FeatureImportanceWeight,
	}
	for _, fi := range valid {
		if !fi.IsValid() {
			t.Errorf("expected %q to be valid", fi)
		}
	}
	if FeatureImportance("gradient").IsValid() {
		t.Error("expected unknown kind to be invalid")
	}
}
