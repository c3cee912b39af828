package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/domain/build"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command against a fresh sqlite store in dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	cfgFile := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		content := "[storage]\nsqlite_path = \"" + filepath.ToSlash(filepath.Join(dir, "fontify.sqlite")) + "\"\n"
		require.NoError(t, os.WriteFile(cfgFile, []byte(content), 0o644))
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", cfgFile, "--log-level", "disabled"}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc", BuildDate: "today", GoVersion: "go1.25"})

	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fontify 1.2.3 (commit abc")
}

func TestSettings_ToggleAndShow(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "settings", "disable")
	require.NoError(t, err)
	assert.Contains(t, out, "disabled")

	out, err = run(t, dir, "--json", "settings")
	require.NoError(t, err)
	doc := gjson.Parse(out)
	assert.False(t, doc.Get("isEnabled").Bool())
	assert.Equal(t, 1.5, doc.Get("lineHeight").Float())

	out, err = run(t, dir, "--json", "settings", "toggle")
	require.NoError(t, err)
	assert.True(t, gjson.Get(out, "isEnabled").Bool())
}

func TestFont_SetSkipValidationAndReset(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "--json", "font", "set", "https://example.com/fira.woff2",
		"--scale", "1.25", "--weight", "600", "--skip-validation")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/fira.woff2", gjson.Get(out, "fontUrl").String())
	assert.Equal(t, 1.25, gjson.Get(out, "fontSizeScale").Float())
	assert.Equal(t, "600", gjson.Get(out, "fontWeight").String())

	_, err = run(t, dir, "font", "reset")
	require.NoError(t, err)

	out, err = run(t, dir, "--json", "settings")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/fira.woff2", gjson.Get(out, "fontUrl").String())
	assert.Equal(t, 1.0, gjson.Get(out, "fontSizeScale").Float())
	assert.Equal(t, "normal", gjson.Get(out, "fontWeight").String())
}

func TestFont_ValidateUnsupported(t *testing.T) {
	_, err := run(t, t.TempDir(), "font", "validate", "not a url")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrInvalidFontURL)
}

func TestExclude_Lifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "--json", "exclude", "add", "https://docs.example.com/api/v2", "--current", "--type", "prefix")
	require.NoError(t, err)
	assert.Equal(t, "prefix", gjson.Get(out, "type").String())

	_, err = run(t, dir, "exclude", "add", "https://news.example.org", "--type", "domain")
	require.NoError(t, err)

	_, err = run(t, dir, "exclude", "add", "https://news.example.org", "--type", "domain")
	assert.ErrorIs(t, err, usecase.ErrExclusionExists)

	out, err = run(t, dir, "--json", "exclude", "check", "https://news.example.org/today")
	require.NoError(t, err)
	assert.True(t, gjson.Get(out, "excluded").Bool())

	out, err = run(t, dir, "exclude", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "news.example.org")

	_, err = run(t, dir, "exclude", "remove", "https://news.example.org")
	require.NoError(t, err)

	out, err = run(t, dir, "--json", "exclude", "list")
	require.NoError(t, err)
	assert.Len(t, gjson.Parse(out).Array(), 1)
}

func TestExclude_BadType(t *testing.T) {
	_, err := run(t, t.TempDir(), "exclude", "add", "https://example.com", "--type", "regex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown exclusion kind")
}

func TestPreset_SaveApplyDelete(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "preset", "save", "Reading",
		"--font-url", "https://fonts.googleapis.com/css2?family=Merriweather", "--line-height", "1.8")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved preset Reading")

	out, err = run(t, dir, "--json", "preset", "apply", "Reading")
	require.NoError(t, err)
	assert.Equal(t, "Reading", gjson.Get(out, "preset.name").String())

	out, err = run(t, dir, "--json", "preset", "list")
	require.NoError(t, err)
	assert.Equal(t, "Reading", gjson.Get(out, "activePreset").String())

	out, err = run(t, dir, "--json", "settings")
	require.NoError(t, err)
	assert.Equal(t, 1.8, gjson.Get(out, "lineHeight").Float())

	_, err = run(t, dir, "preset", "delete", "Reading")
	require.NoError(t, err)

	_, err = run(t, dir, "preset", "show", "Reading")
	assert.ErrorIs(t, err, usecase.ErrPresetNotFound)
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	exportFile := filepath.Join(dir, "export.json")

	_, err := run(t, dir, "font", "set", "https://example.com/a.woff2", "--skip-validation")
	require.NoError(t, err)
	_, err = run(t, dir, "export", "-o", exportFile)
	require.NoError(t, err)

	other := t.TempDir()
	out, err := run(t, other, "--json", "import", exportFile)
	require.NoError(t, err)
	assert.Contains(t, strs(gjson.Get(out, "keys")), "fontUrl")

	out, err = run(t, other, "--json", "settings")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.woff2", gjson.Get(out, "fontUrl").String())
}

func TestRenderFile_Excluded(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte("<html><head></head><body><p>hi</p></body></html>"), 0o644))

	_, err := run(t, dir, "font", "set", "https://fonts.googleapis.com/css2?family=Inter", "--skip-validation")
	require.NoError(t, err)
	_, err = run(t, dir, "exclude", "add", "https://example.com", "--type", "domain")
	require.NoError(t, err)

	out, err := run(t, dir, "render", "--file", page, "--url", "https://example.com/post")
	require.NoError(t, err)
	assert.Contains(t, out, "<p>hi</p>")
	assert.NotContains(t, out, "family=Inter")
}

func TestRender_NeedsInput(t *testing.T) {
	_, err := run(t, t.TempDir(), "render")
	require.Error(t, err)
}

func TestSchema(t *testing.T) {
	out, err := run(t, t.TempDir(), "schema", "config")
	require.NoError(t, err)
	assert.Equal(t, "fontify configuration", gjson.Get(out, "title").String())

	_, err = run(t, t.TempDir(), "schema", "yaml")
	require.Error(t, err)
}

func TestMigrateAndCache(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	out, err = run(t, dir, "--json", "cache", "clear")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gjson.Get(out, "cleared").Int())
}

func strs(r gjson.Result) []string {
	var out []string
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	return out
}
