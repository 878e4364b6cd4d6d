package config

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Classification: ClassificationConfig{
			Method:     "LogisticRegression",
			Multiclass: false,
			NumFolds:   4,
			NumJobs:    -1,
		},
		Datasets: DatasetsConfig{
			AnnotationsDir: ".",
		},
	}
}
