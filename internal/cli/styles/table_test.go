package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/fontify/internal/domain/entity"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}

func TestExclusionRows(t *testing.T) {
	rows := ExclusionRows([]entity.ExclusionRule{
		{Pattern: "example.com", Kind: entity.ExclusionKindDomain},
		entity.NewLegacyRule("docs.example.com/*"),
	})

	assert.Equal(t, "domain", rows[0][1])
	assert.Equal(t, "site", rows[0][2])
	assert.Equal(t, "legacy", rows[1][1])
}

func TestPresetRows_MarksActive(t *testing.T) {
	scale := 1.2
	rows := PresetRows([]entity.Preset{
		{Name: "Reading", FontSizeScale: &scale},
		{Name: "Code"},
	}, "Code")

	assert.Equal(t, "", rows[0][0])
	assert.Equal(t, "1.2", rows[0][3])
	assert.Equal(t, "-", rows[0][4])
	assert.Equal(t, "*", rows[1][0])
}

func TestPresetItem_Description(t *testing.T) {
	weight := "bold"
	item := PresetItem{Preset: entity.Preset{Name: "Bold", FontWeight: &weight}}
	assert.Equal(t, "default font · weight bold", item.Description())
}
