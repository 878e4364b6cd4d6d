package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marchaud/anomalykit/internal/classification"
	"github.com/marchaud/anomalykit/internal/logger"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestMethodsCommand(t *testing.T) {
	out, err := execute(t, "methods")
	if err != nil {
		t.Fatalf("methods failed: %v", err)
	}

	for _, want := range []string{"LogisticRegression", "IsolationForest", "LabelPropagation"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to list %s, got:\n%s", want, out)
		}
	}
}

func TestMethodsCommandParadigmFilter(t *testing.T) {
	out, err := execute(t, "methods", "--paradigm", "unsupervised")
	if err != nil {
		t.Fatalf("methods failed: %v", err)
	}

	if !strings.Contains(out, "IsolationForest") {
		t.Errorf("expected IsolationForest, got:\n%s", out)
	}
	if strings.Contains(out, "LogisticRegression") {
		t.Errorf("supervised method listed in unsupervised subset:\n%s", out)
	}

	if _, err := execute(t, "methods", "--paradigm", "bogus"); err == nil {
		t.Error("expected error for unknown paradigm")
	}
	methodsParadigm = ""
}

func TestDescribeCommand(t *testing.T) {
	out, err := execute(t, "describe", "LogisticRegression", "--multiclass", "--c", "0.5")
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}

	start := strings.Index(out, "{")
	if start < 0 {
		t.Fatalf("expected JSON output, got:\n%s", out)
	}
	var record classification.Record
	if err := json.Unmarshal([]byte(out[start:]), &record); err != nil {
		t.Fatalf("output is not a valid record: %v\n%s", err, out)
	}

	if record.Type != "LogisticRegression" {
		t.Errorf("expected __type__ LogisticRegression, got %s", record.Type)
	}
	if !record.Multiclass {
		t.Error("expected multiclass true")
	}
	if record.HyperparamConf == nil {
		t.Fatal("expected hyperparam_conf in record")
	}
	if got := record.HyperparamConf.Values["c"]; len(got) != 1 || got[0] != "0.5" {
		t.Errorf("expected overridden c grid, got %v", got)
	}
}

func TestDescribeCommandUnknownMethod(t *testing.T) {
	if _, err := execute(t, "describe", "NoSuchMethod"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestCheckCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	content := `{"ground_truth": [{"label": 0}, {"label": 1}, {"label": 0}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	out, err := execute(t, "check", "RandomForest", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "3 instances") || !strings.Contains(out, "2 classes") {
		t.Errorf("unexpected report:\n%s", out)
	}
}

func TestCheckCommandSingleClass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.json")
	content := `{"ground_truth": [{"label": 1}, {"label": 1}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	if _, err := execute(t, "check", "RandomForest", path); err == nil {
		t.Error("expected single-class dataset to be rejected")
	}

	// The same dataset is fine for an unsupervised method.
	if _, err := execute(t, "check", "IsolationForest", path); err != nil {
		t.Errorf("unexpected error for unsupervised check: %v", err)
	}
}

func TestValidateCommand(t *testing.T) {
	factory := classification.NewFactory(logger.Discard())
	conf, err := factory.Default("GradientBoosting", 4, 2, false)
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	data, err := json.Marshal(conf.Export())
	if err != nil {
		t.Fatalf("failed to marshal record: %v", err)
	}

	path := filepath.Join(t.TempDir(), "conf.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write configuration: %v", err)
	}

	out, err := execute(t, "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "valid supervised configuration") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestValidateCommandBadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	content := `{"__type__": "NoSuchMethod", "multiclass": false}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write configuration: %v", err)
	}

	if _, err := execute(t, "validate", path); err == nil {
		t.Error("expected error for unknown method record")
	}
}
