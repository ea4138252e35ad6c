package config

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/limaJavier/classplanner/pkg/archive"
	"github.com/limaJavier/classplanner/pkg/generator"
	"github.com/spf13/viper"
)

const (
	MemoryBackend = "memory"
	RedisBackend  = "redis"

	dateLayout = "2006-01-02"
)

var validBackends = []string{MemoryBackend, RedisBackend}

type Config struct {
	Log       LogConfig           `mapstructure:"log"`
	Archive   ArchiveConfig       `mapstructure:"archive"`
	Redis     archive.RedisConfig `mapstructure:"redis"`
	Generator GeneratorConfig     `mapstructure:"generator"`
	Export    ExportConfig        `mapstructure:"export"`
	Metrics   MetricsConfig       `mapstructure:"metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ArchiveConfig struct {
	// Backend is "memory" or "redis"
	Backend string `mapstructure:"backend"`
}

type GeneratorConfig struct {
	Name     string `mapstructure:"name"`
	Users    int    `mapstructure:"users"`
	Subjects int    `mapstructure:"subjects"`
	// Seed makes generation reproducible; 0 picks a random seed
	Seed         uint64   `mapstructure:"seed"`
	Labs         []string `mapstructure:"labs"`
	LectureHalls []string `mapstructure:"lecture_halls"`
}

type ExportConfig struct {
	TermStart string `mapstructure:"term_start"`
	Weeks     int    `mapstructure:"weeks"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from defaults, then the config file, then PLANNER_* environment variables
func Load(path string) (*Config, error) {
	v := viper.New()

	//** Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("archive.backend", MemoryBackend)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "classplanner:")

	v.SetDefault("generator.name", generator.DefaultName)
	v.SetDefault("generator.users", generator.DefaultUsers)
	v.SetDefault("generator.subjects", generator.DefaultSubjects)
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.labs", []string{})
	v.SetDefault("generator.lecture_halls", []string{})

	v.SetDefault("export.term_start", "2026-09-07")
	v.SetDefault("export.weeks", 15)

	v.SetDefault("metrics.addr", ":9090")

	//** Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("planner")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	//** Environment
	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(validBackends, c.Archive.Backend) {
		return fmt.Errorf("invalid config: archive.backend must be one of %v, got %q", validBackends, c.Archive.Backend)
	}
	if c.Generator.Users < 0 || c.Generator.Subjects < 0 {
		return fmt.Errorf("invalid config: generator counts cannot be negative")
	}
	if c.Export.Weeks <= 0 {
		return fmt.Errorf("invalid config: export.weeks must be positive, got %d", c.Export.Weeks)
	}
	if _, err := c.Export.Start(); err != nil {
		return fmt.Errorf("invalid config: export.term_start: %w", err)
	}
	return nil
}

// Options turns the generator section into generator options. The random source is seeded from Seed when set
func (c GeneratorConfig) Options() generator.Options {
	options := generator.Options{
		Name:         c.Name,
		Users:        c.Users,
		Subjects:     c.Subjects,
		Labs:         c.Labs,
		LectureHalls: c.LectureHalls,
	}
	if c.Seed != 0 {
		options.Random = rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return options
}

func (c ExportConfig) Start() (time.Time, error) {
	return time.ParseInLocation(dateLayout, c.TermStart, time.Local)
}
