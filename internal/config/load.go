package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"arraybench/internal/benchmark"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults used when neither a config file nor the environment says otherwise.
const (
	DefaultRepeat = 100
	DefaultSeed   = 1234
	DefaultOutput = "./data/process_time_go.csv"
	DefaultRows   = 1024
	DefaultCols   = 1024
)

// Config is everything the command needs for one run.
type Config struct {
	Repeat      int
	Seed        uint64
	Output      string
	Shape       benchmark.Shape
	Verbose     bool
	LogFile     string
	MetricsFile string
	HistoryDB   string
}

// RunConfig returns the immutable part the driver consumes.
func (c *Config) RunConfig() benchmark.RunConfig {
	return benchmark.RunConfig{
		Repeat:     c.Repeat,
		Seed:       c.Seed,
		OutputPath: c.Output,
		Shape:      c.Shape,
	}
}

// Load reads configuration from defaults, an optional config file, a .env
// file and ARRAYBENCH_* environment variables, in increasing precedence.
// Flags in fs, when given, override all of them.
func Load(cfgFile string, fs *pflag.FlagSet) (*Config, error) {
	// A missing .env file is the common case.
	_ = godotenv.Load()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("arraybench")
	}

	v.SetEnvPrefix("ARRAYBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("repeat", DefaultRepeat)
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("shape.rows", DefaultRows)
	v.SetDefault("shape.cols", DefaultCols)
	v.SetDefault("verbose", false)
	v.SetDefault("log_file", "")
	v.SetDefault("metrics_file", "")
	v.SetDefault("history_db", "")

	if fs != nil {
		if f := fs.Lookup("verbose"); f != nil {
			if err := v.BindPFlag("verbose", f); err != nil {
				return nil, fmt.Errorf("failed to bind verbose flag: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		fmt.Fprintln(os.Stderr, "Using config file:", v.ConfigFileUsed())
	}

	return &Config{
		Repeat:      v.GetInt("repeat"),
		Seed:        v.GetUint64("seed"),
		Output:      v.GetString("output"),
		Shape:       benchmark.Shape{Rows: v.GetInt("shape.rows"), Cols: v.GetInt("shape.cols")},
		Verbose:     v.GetBool("verbose"),
		LogFile:     v.GetString("log_file"),
		MetricsFile: v.GetString("metrics_file"),
		HistoryDB:   v.GetString("history_db"),
	}, nil
}
