package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	require.NoError(t, Initialize())

	assert.Equal(t, "Product not found", T("en", KeyProductNotFound))
	assert.Equal(t, "Producto no encontrado", T("es", KeyProductNotFound))
	assert.Equal(t, "Invalid product id: abc", T("en", KeyProductInvalidID, "abc"))
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, "Product not found", T("fr", KeyProductNotFound))
	assert.Equal(t, "missing.key", T("en", "missing.key"))
}

func TestSupportedLanguages(t *testing.T) {
	assert.ElementsMatch(t, []string{"en", "es"}, GetSupportedLanguages())
	assert.True(t, IsSupported("es"))
	assert.False(t, IsSupported("zh_TW"))
}

func TestLocalesShareKeys(t *testing.T) {
	require.NoError(t, Initialize())

	en := instance.translations["en"]
	es := instance.translations["es"]
	require.NotEmpty(t, en)
	for key := range en {
		assert.Contains(t, es, key)
	}
	assert.Len(t, es, len(en))
}
