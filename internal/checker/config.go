package checker

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Size        int    `envconfig:"CHECK_SIZE" default:"10000"`
	Seed        int64  `envconfig:"CHECK_SEED" default:"777"`
	Reversals   int    `envconfig:"CHECK_REVERSALS" default:"4"`
	Pops        int    `envconfig:"CHECK_POPS" default:"0"`
	MetricsFile string `envconfig:"METRICS_FILE"` // node_exporter textfile, empty to skip
}

func GetConfig() Config {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	return *cfg
}
