package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	require.NoError(t, Initialize("en"))

	assert.Equal(t, "Product not found", T("en", KeyProductNotFound))
	assert.Equal(t, "找不到商品", T("zh_TW", KeyProductNotFound))
	assert.Equal(t, "Invalid input", T("en", KeyValidationInvalid, "input"))

	// unknown languages fall back to the default, unknown keys to the key
	assert.Equal(t, "Product not found", T("de", KeyProductNotFound))
	assert.Equal(t, "product.unknown", T("en", "product.unknown"))
}

func TestLocalesCoverSameKeys(t *testing.T) {
	require.NoError(t, Initialize("en"))

	instance.mu.RLock()
	defer instance.mu.RUnlock()

	en := instance.translations["en"]
	require.NotEmpty(t, en)
	for lang, translations := range instance.translations {
		for key := range en {
			assert.Contains(t, translations, key, "%s is missing %s", lang, key)
		}
	}
}

func TestSupportedLanguages(t *testing.T) {
	require.NoError(t, Initialize("en"))

	assert.Equal(t, "en", DefaultLanguage())
	assert.True(t, IsSupported("en"))
	assert.True(t, IsSupported("zh_TW"))
	assert.False(t, IsSupported("fr"))
}
