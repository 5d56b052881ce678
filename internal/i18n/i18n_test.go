package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/invfacade/internal/model"
)

func TestTranslator_English(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "Bag", tr.Instant("INVENTORY.BAG.Bag"))
	assert.Equal(t, "Market", tr.Instant("INVENTORY.BAG.RetainerMarket"))
	assert.Equal(t, "Unknown", tr.Instant("COMMON.Unknown"))
}

func TestTranslator_OtherLanguages(t *testing.T) {
	tests := []struct {
		lang string
		key  string
		want string
	}{
		{"fr", "COMMON.Unknown", "Inconnu"},
		{"de", "INVENTORY.BAG.SaddleBag", "Satteltasche"},
		{"ja", "INVENTORY.BAG.Armory", "アーマリーチェスト"},
	}
	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			tr, err := New(tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tr.Instant(tt.key))
		})
	}
}

func TestTranslator_EveryContainerLabelTranslated(t *testing.T) {
	for _, lang := range []string{"en", "fr", "de", "ja"} {
		tr, err := New(lang)
		require.NoError(t, err)
		for _, label := range model.ContainerLabels {
			key := "INVENTORY.BAG." + label
			got := tr.Instant(key)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, key, got, "%s: missing %s", lang, key)
		}
	}
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "INVENTORY.BAG.Nope", tr.Instant("INVENTORY.BAG.Nope"))
}

func TestTranslator_FallbackToDefaultLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("COMMON:\n  Unknown: Unknown\n  Yes: \"Yes\"\n")},
		"locales/fr.yaml": {Data: []byte("COMMON:\n  Unknown: Inconnu\n")},
	}
	tr, err := NewFromFS(fsys, "fr")
	require.NoError(t, err)

	assert.Equal(t, "Inconnu", tr.Instant("COMMON.Unknown"))
	assert.Equal(t, "Yes", tr.Instant("COMMON.Yes"))
}

func TestNewFromFS_Errors(t *testing.T) {
	_, err := NewFromFS(fstest.MapFS{}, "en")
	assert.Error(t, err)

	_, err = New("not a language tag!")
	assert.Error(t, err)

	_, err = NewFromFS(fstest.MapFS{
		"locales/en.yaml": {Data: []byte("COMMON:\n  - a\n  - b\n")},
	}, "en")
	assert.Error(t, err)
}

func TestTranslator_ResolvesClosestLanguage(t *testing.T) {
	tr, err := New("fr-CA")
	require.NoError(t, err)
	assert.Equal(t, "fr", tr.Language().String())

	tr, err = New("es")
	require.NoError(t, err)
	assert.Equal(t, "en", tr.Language().String())
	assert.Equal(t, "Unknown", tr.Instant("COMMON.Unknown"))
}

func TestTranslator_PercentSignIsLiteral(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("INVENTORY:\n  Progress: \"100% complete\"\n  Slot: \"Slot %d\"\n")},
	}
	tr, err := NewFromFS(fsys, "en")
	require.NoError(t, err)

	assert.Equal(t, "100% complete", tr.Instant("INVENTORY.Progress"))
	assert.Equal(t, "Slot %d", tr.Instant("INVENTORY.Slot"))
}
