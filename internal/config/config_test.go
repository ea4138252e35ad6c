package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limaJavier/classplanner/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Act
	cfg, err := Load("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, MemoryBackend, cfg.Archive.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "classplanner:", cfg.Redis.Prefix)
	assert.Equal(t, generator.DefaultUsers, cfg.Generator.Users)
	assert.Equal(t, generator.DefaultSubjects, cfg.Generator.Subjects)
	assert.Equal(t, 15, cfg.Export.Weeks)

	start, err := cfg.Export.Start()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, start.Weekday())
}

func TestLoadFileAndEnvironment(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "planner.yaml")
	content := `
log:
  level: debug
archive:
  backend: redis
redis:
  addr: cache:6379
  db: 2
generator:
  users: 4
  subjects: 9
  seed: 17
  labs: ["Lab A", "Lab B"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	t.Setenv("PLANNER_GENERATOR_SUBJECTS", "12")
	t.Setenv("PLANNER_REDIS_PASSWORD", "secret")

	// Act
	cfg, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, RedisBackend, cfg.Archive.Backend)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "secret", cfg.Redis.Password)
	assert.Equal(t, 4, cfg.Generator.Users)
	assert.Equal(t, 12, cfg.Generator.Subjects)
	assert.Equal(t, []string{"Lab A", "Lab B"}, cfg.Generator.Labs)

	options := cfg.Generator.Options()
	assert.Equal(t, 4, options.Users)
	assert.NotNil(t, options.Random)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"Unknown backend", map[string]string{"PLANNER_ARCHIVE_BACKEND": "disk"}},
		{"Negative users", map[string]string{"PLANNER_GENERATOR_USERS": "-2"}},
		{"No weeks", map[string]string{"PLANNER_EXPORT_WEEKS": "0"}},
		{"Bad term start", map[string]string{"PLANNER_EXPORT_TERM_START": "september"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for key, value := range test.env {
				t.Setenv(key, value)
			}

			_, err := Load("")

			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestOptionsWithoutSeed(t *testing.T) {
	options := GeneratorConfig{Users: 3}.Options()

	assert.Nil(t, options.Random)
	assert.Equal(t, 3, options.Users)
}
