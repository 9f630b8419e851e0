package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownTemplate(t *testing.T) {
	cfg, err := Get("software_developer")
	require.NoError(t, err)
	assert.Equal(t, "software_developer", cfg.Key)
	assert.Equal(t, "modern-tech", cfg.Layout.HeaderType)
}

func TestGet_CaseInsensitive(t *testing.T) {
	cfg, err := Get("  Government_Job ")
	require.NoError(t, err)
	assert.Equal(t, "government_job", cfg.Key)
}

func TestGet_UnknownTemplateEnumeratesValid(t *testing.T) {
	_, err := Get("does_not_exist")
	require.Error(t, err)
	var notFound *ErrTemplateNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "does_not_exist", notFound.ID)
	assert.Contains(t, notFound.Valid, "government_job")
	assert.Contains(t, notFound.Valid, "software_developer")
	assert.IsIncreasing(t, notFound.Valid)
}

func TestDefault_IsGovernmentJob(t *testing.T) {
	assert.Equal(t, DefaultKey, Default().Key)
}

func TestIDs_Sorted(t *testing.T) {
	ids := IDs()
	assert.GreaterOrEqual(t, len(ids), 8)
	assert.IsIncreasing(t, ids)
}

func TestAllTemplatesValidate(t *testing.T) {
	// buildRegistry panics on invalid configs; rebuilding here surfaces that
	// as a test failure with a usable message.
	assert.NotPanics(t, func() { buildRegistry() })
	assert.NotPanics(t, func() { buildCoverLetterRegistry() })
}

func TestHasHeader(t *testing.T) {
	withHeader, err := Get("corporate_classic")
	require.NoError(t, err)
	assert.True(t, withHeader.Layout.HasHeader())

	plain, err := Get("academic_minimal")
	require.NoError(t, err)
	assert.False(t, plain.Layout.HasHeader())
}

func TestWithColors_OverlayDoesNotMutateRegistry(t *testing.T) {
	cfg, err := Get("government_job")
	require.NoError(t, err)
	original := cfg.Styles.Colors.Primary

	overlaid := cfg.Styles.WithColors(map[string]string{"primary": "#ff0000", "accent": ""})
	assert.Equal(t, "#ff0000", overlaid.Colors.Primary)
	assert.Equal(t, cfg.Styles.Colors.Accent, overlaid.Colors.Accent)

	again, err := Get("government_job")
	require.NoError(t, err)
	assert.Equal(t, original, again.Styles.Colors.Primary)
}

func TestWithColors_NilOverridesReturnsCopy(t *testing.T) {
	cfg := Default()
	copied := cfg.Styles.WithColors(nil)
	assert.Equal(t, cfg.Styles.Colors, copied.Colors)
	assert.NotSame(t, &cfg.Styles, copied)
}

func TestGetCoverLetter_DefaultOnEmpty(t *testing.T) {
	cfg, err := GetCoverLetter("")
	require.NoError(t, err)
	assert.Equal(t, "classic", cfg.Key)
}

func TestGetCoverLetter_Unknown(t *testing.T) {
	_, err := GetCoverLetter("bogus")
	var notFound *ErrTemplateNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Valid, "sleek")
}

func TestCoverLetterDefaultsCarryPlaceholders(t *testing.T) {
	for _, id := range CoverLetterIDs() {
		cfg, err := GetCoverLetter(id)
		require.NoError(t, err)
		assert.Contains(t, cfg.DefaultData.Intro, "[jobTitle]", "template %s", id)
		assert.Contains(t, cfg.DefaultData.Intro, "[company]", "template %s", id)
	}
}
