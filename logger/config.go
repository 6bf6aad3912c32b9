package logger

// Config controls how the service logs.
type Config struct {
	Level            string `yaml:"level"`
	Format           string `yaml:"format"` // json or console
	EnableSampling   bool   `yaml:"enable_sampling"`
	SampleInitial    int    `yaml:"sample_initial"`
	SampleThereafter int    `yaml:"sample_thereafter"`
	Development      bool   `yaml:"development"`
}

func DefaultConfig() Config {
	return Config{
		Level:            "info",
		Format:           "json",
		EnableSampling:   true,
		SampleInitial:    100,
		SampleThereafter: 1000,
	}
}

func DevelopmentConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
