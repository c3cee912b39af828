package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const fileHeader = "# fontify configuration. Environment variables prefixed with FONTIFY_ override these values.\n\n"

var sectionHeader = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg as TOML with its tables sorted by name so
// repeated saves produce identical files.
func WriteConfigOrdered(cfg *Config, path string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	content := fileHeader + sortTOMLSections(buf.String())
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders [table] blocks alphabetically. Keys before the
// first table stay on top.
func sortTOMLSections(content string) string {
	type section struct {
		name  string
		lines []string
	}

	var (
		preamble []string
		sections []section
	)
	for _, line := range strings.Split(content, "\n") {
		if m := sectionHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, section{name: m[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool { return sections[i].name < sections[j].name })

	blocks := make([]string, 0, len(sections)+1)
	if top := strings.TrimSpace(strings.Join(preamble, "\n")); top != "" {
		blocks = append(blocks, top)
	}
	for _, s := range sections {
		blocks = append(blocks, strings.TrimRight(strings.Join(s.lines, "\n"), "\n "))
	}

	out := strings.Join(blocks, "\n\n")
	if out != "" {
		out += "\n"
	}
	return out
}
