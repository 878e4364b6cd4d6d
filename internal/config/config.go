package config

// Config is the toolkit configuration loaded from YAML.
type Config struct {
	Logging        LoggingConfig        `yaml:"logging"`
	Classification ClassificationConfig `yaml:"classification"`
	Datasets       DatasetsConfig       `yaml:"datasets"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ClassificationConfig holds the defaults used when a classifier
// configuration is built without explicit arguments.
type ClassificationConfig struct {
	// Method is the default classification method name.
	Method string `yaml:"method"`

	// Multiclass trains on the families instead of the binary labels.
	Multiclass bool `yaml:"multiclass"`

	// NumFolds is the cross-validation fold count for hyperparameter search.
	NumFolds int `yaml:"num_folds"`

	// NumJobs is the parallelism degree of the search; -1 uses all cores.
	NumJobs int `yaml:"n_jobs"`
}

// DatasetsConfig holds the locations of annotation files.
type DatasetsConfig struct {
	AnnotationsDir string `yaml:"annotations_dir"`
}
