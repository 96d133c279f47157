package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRingtones(t *testing.T) {
	input := strings.Join([]string{
		"# my ringtones",
		"Barbie Girl:d=8,o=5,b=125:g#,e",
		"",
		"   ",
		"  Axel F:d=4,o=5,b=125:g,8a#.  ",
	}, "\n")

	tunes, err := ReadRingtones(strings.NewReader(input))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"Barbie Girl:d=8,o=5,b=125:g#,e", "Axel F:d=4,o=5,b=125:g,8a#."}, tunes)
}

func TestGatherRingtonePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	for _, name := range []string{"a.rtttl", "b.TXT", "nested/c.rtx", "d.mid", "e"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("t::c"), 0644))
	}

	paths, err := GatherRingtonePaths(dir, 0)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.ElementsMatch([]string{
		filepath.Join(dir, "a.rtttl"),
		filepath.Join(dir, "b.TXT"),
		filepath.Join(dir, "nested", "c.rtx"),
	}, paths)

	limited, err := GatherRingtonePaths(dir, 2)
	assert.NoError(err)
	assert.Len(limited, 2)
}

func TestGatherRingtonePathsMissingDir(t *testing.T) {
	_, err := GatherRingtonePaths(filepath.Join(t.TempDir(), "missing"), 0)
	assert.Error(t, err)
}
