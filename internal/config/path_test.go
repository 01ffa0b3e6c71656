package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("POCKETWISE_TEST_DIR", "/tmp/pw")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty stays empty", path: "", want: ""},
		{name: "plain path unchanged", path: "/var/data/db", want: "/var/data/db"},
		{name: "bare tilde", path: "~", want: home},
		{name: "tilde prefix", path: "~/data.db", want: filepath.Join(home, "data.db")},
		{name: "env var", path: "$POCKETWISE_TEST_DIR/data.db", want: "/tmp/pw/data.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.path))
		})
	}
}
