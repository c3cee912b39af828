package exclusion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fontify/internal/domain/entity"
	"github.com/bnema/fontify/internal/domain/exclusion"
)

func TestSuggest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want entity.ExclusionRule
	}{
		{
			name: "page",
			url:  "https://a.com/blog/post?x=1#top",
			want: entity.ExclusionRule{Pattern: "https://a.com/blog/post", Kind: entity.ExclusionKindExact},
		},
		{
			name: "section",
			url:  "https://a.com/docs/",
			want: entity.ExclusionRule{Pattern: "https://a.com/docs/", Kind: entity.ExclusionKindPrefix},
		},
		{
			name: "site root",
			url:  "https://a.com/",
			want: entity.ExclusionRule{Pattern: "https://a.com/", Kind: entity.ExclusionKindDomain},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exclusion.Suggest(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, exclusion.Matches(tt.url, got))
		})
	}
}

func TestSuggest_RejectsRelative(t *testing.T) {
	_, err := exclusion.Suggest("a.com/blog")
	assert.Error(t, err)
}

func TestForKind(t *testing.T) {
	u := "https://a.com/docs/intro"

	exact, err := exclusion.ForKind(u, entity.ExclusionKindExact)
	require.NoError(t, err)
	assert.Equal(t, "https://a.com/docs/intro", exact.Pattern)

	prefix, err := exclusion.ForKind(u, entity.ExclusionKindPrefix)
	require.NoError(t, err)
	assert.Equal(t, "https://a.com/docs/", prefix.Pattern)
	assert.True(t, exclusion.Matches("https://a.com/docs/other", prefix))

	domain, err := exclusion.ForKind(u, entity.ExclusionKindDomain)
	require.NoError(t, err)
	assert.Equal(t, "https://a.com/", domain.Pattern)
	assert.True(t, exclusion.Matches("https://www.a.com/", domain))
}
