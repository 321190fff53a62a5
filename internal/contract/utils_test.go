package contract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanInputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain path",
			input:    "data/stats.csv",
			expected: "data/stats.csv",
		},
		{
			name:     "trailing newline",
			input:    "data/stats.csv\n",
			expected: "data/stats.csv",
		},
		{
			name:     "windows copy as path",
			input:    `"C:\Games\stats.csv"` + "\r\n",
			expected: `C:\Games\stats.csv`,
		},
		{
			name:     "single quotes with spaces",
			input:    "  '/tmp/my stats.csv'  ",
			expected: "/tmp/my stats.csv",
		},
		{
			name:     "mixed quote characters",
			input:    `'"stats.csv"'`,
			expected: "stats.csv",
		},
		{
			name:     "inner quotes are kept",
			input:    `it's.csv`,
			expected: `it's.csv`,
		},
		{
			name:     "empty",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanInputPath(tt.input))
		})
	}
}

func TestReadInputPath(t *testing.T) {
	t.Run("reads one line and prompts", func(t *testing.T) {
		var out strings.Builder
		got, err := ReadInputPath(strings.NewReader("\"stats.csv\"\nignored\n"), &out)
		require.NoError(t, err)
		assert.Equal(t, "stats.csv", got)
		assert.Equal(t, InputPrompt, out.String())
	})

	t.Run("accepts input without newline", func(t *testing.T) {
		var out strings.Builder
		got, err := ReadInputPath(strings.NewReader("stats.csv"), &out)
		require.NoError(t, err)
		assert.Equal(t, "stats.csv", got)
	})

	t.Run("empty stdin is an error", func(t *testing.T) {
		var out strings.Builder
		_, err := ReadInputPath(strings.NewReader(""), &out)
		require.Error(t, err)
	})

	t.Run("prompt write failure", func(t *testing.T) {
		_, err := ReadInputPath(strings.NewReader("x\n"), failingWriter{})
		require.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "output")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is a no-op
	require.NoError(t, EnsureDir(dir))
}

func TestEnsureDirOverFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := EnsureDir(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not create output directory")
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "short.csv", TruncatePath("short.csv", 20))
	assert.Equal(t, "...stats.csv", TruncatePath("/very/long/dir/stats.csv", 12))
	assert.Equal(t, "abcdef", TruncatePath("abcdef", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1", " yes "} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestPaint(t *testing.T) {
	c := color.New(color.FgRed)
	c.EnableColor()

	assert.Equal(t, "plain", Paint(c, "plain", false))
	painted := Paint(c, "red", true)
	assert.Contains(t, painted, "red")
	assert.NotEqual(t, "red", painted)
}
