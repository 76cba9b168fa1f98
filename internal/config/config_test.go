package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TALLY_TEST_DIR", "/var/lib/tally")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty path",
			input: "",
			want:  "",
		},
		{
			name:  "plain absolute path",
			input: "/tmp/tally.db",
			want:  "/tmp/tally.db",
		},
		{
			name:  "bare tilde",
			input: "~",
			want:  home,
		},
		{
			name:  "tilde prefix",
			input: "~/.local/share/tally/tally.db",
			want:  filepath.Join(home, ".local", "share", "tally", "tally.db"),
		},
		{
			name:  "environment variable",
			input: "$TALLY_TEST_DIR/tally.db",
			want:  "/var/lib/tally/tally.db",
		},
		{
			name:  "tilde in the middle is untouched",
			input: "/data/~backup/tally.db",
			want:  "/data/~backup/tally.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)

	SetDefaults()
	cfg := Load()

	assert.Equal(t, filepath.Join(home, ".local", "share", "tally", "tally.db"), cfg.Database.Path)
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.Origins)
	assert.Equal(t, filepath.Join(home, ".config", "tally", "categories.json"), cfg.Categories.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetDefaults()
	viper.Set("database.path", "/srv/tally/records.db")
	viper.Set("server.addr", "127.0.0.1:9090")
	viper.Set("server.origins", []string{"https://tally.example.com"})

	cfg := Load()

	assert.Equal(t, "/srv/tally/records.db", cfg.Database.Path)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://tally.example.com"}, cfg.Server.Origins)
}
