package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionNames(content string) []string {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			names = append(names, m[1])
		}
	}
	return names
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# fontify configuration"))

	names := sectionNames(string(content))
	assert.Equal(t, []string{"engine", "fetch", "logging", "proxy", "server", "storage"}, names)
	assert.True(t, sort.StringsAreSorted(names))

	again := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), again))
	second, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, string(content), string(second))
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[storage]
backend = 'sqlite'

[engine]
debounce_ms = 100

[storage.redis]
url = ''
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"engine", "storage", "storage.redis"}, sectionNames(result))
	assert.True(t, strings.HasPrefix(result, "title = 'x'\n\n[engine]"))
	assert.True(t, strings.HasSuffix(result, "url = ''\n"))
}
