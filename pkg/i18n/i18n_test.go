package i18n_test

import (
	"testing"

	"agroflow-backend/pkg/i18n"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := map[string]i18n.Language{
		"":      i18n.PT,
		"pt":    i18n.PT,
		"pt-BR": i18n.PT,
		"PT":    i18n.PT,
		"en":    i18n.EN,
		"en-GB": i18n.EN,
		"fr":    i18n.EN,
		"??":    i18n.EN,
	}
	for raw, want := range cases {
		assert.Equal(t, want, i18n.Parse(raw), "raw=%q", raw)
	}
}

func TestTranslate(t *testing.T) {
	t.Run("Should serve the requested language", func(t *testing.T) {
		assert.Equal(t, "Email inválido", i18n.Translate(i18n.KeyInvalidEmail, i18n.PT))
		assert.Equal(t, "Invalid email address", i18n.Translate(i18n.KeyInvalidEmail, i18n.EN))
	})

	t.Run("Should fall back to English for unsupported languages", func(t *testing.T) {
		assert.Equal(t,
			i18n.Translate(i18n.KeyContactSent, i18n.EN),
			i18n.Translate(i18n.KeyContactSent, i18n.Language("fr")),
		)
	})

	t.Run("Should return the key when no table has it", func(t *testing.T) {
		assert.Equal(t, "does.not.exist", i18n.Translate(i18n.Key("does.not.exist"), i18n.PT))
	})

	t.Run("Every Portuguese key has an English counterpart", func(t *testing.T) {
		for _, key := range []i18n.Key{
			i18n.KeyContactSent, i18n.KeyErrAuth, i18n.KeyErrConnRefused,
			i18n.KeyErrTimeout, i18n.KeyErrUnknown, i18n.KeyAckSubject,
		} {
			assert.NotEqual(t, string(key), i18n.Translate(key, i18n.EN))
		}
	})
}

func TestFromAcceptLanguage(t *testing.T) {
	assert.Equal(t, i18n.PT, i18n.FromAcceptLanguage(""))
	assert.Equal(t, i18n.PT, i18n.FromAcceptLanguage("pt-PT,pt;q=0.9,en;q=0.8"))
	assert.Equal(t, i18n.EN, i18n.FromAcceptLanguage("en-US,en;q=0.9"))
	assert.Equal(t, i18n.EN, i18n.FromAcceptLanguage("fr-FR"))
}
