package input_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/internal/input"
)

func TestReadLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"NoTrailingNewline", "a\nb", []string{"a", "b"}},
		{"TrailingNewline", "a\nb\n", []string{"a", "b"}},
		{"CRLF", "#S#\r\n#E#\r\n", []string{"#S#", "#E#"}},
		{"InnerBlank", "1,2\n\n3,4\n", []string{"1,2", "", "3,4"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := input.ReadLines(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte("#####\n#S.E#\n#####\n"), 0o644))

	got, err := input.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"#####", "#S.E#", "#####"}, got)

	got, err = input.Load("-", strings.NewReader("x\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got)

	_, err = input.Load(filepath.Join(t.TempDir(), "missing"), nil)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
