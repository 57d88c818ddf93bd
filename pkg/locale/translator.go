package locale

import (
	"fmt"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/el"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

// Translator renders message keys for one language.
type Translator interface {
	Language() string
	Message(key string) string
}

type Catalog struct {
	uni      *ut.UniversalTranslator
	fallback ut.Translator
}

// NewCatalog registers every supported language. Missing keys in a language
// fall back to defaultLang, and then to the key itself.
func NewCatalog(defaultLang string) (*Catalog, error) {
	supported := map[string]locales.Translator{
		LangEnglish: en.New(),
		LangGreek:   el.New(),
	}
	fallbackLocale, ok := supported[defaultLang]
	if !ok {
		return nil, fmt.Errorf("unsupported default language: %q", defaultLang)
	}

	uni := ut.New(fallbackLocale, en.New(), el.New())
	for lang, messages := range catalog {
		trans, found := uni.GetTranslator(lang)
		if !found {
			return nil, fmt.Errorf("translator for %q not registered", lang)
		}
		for key, text := range messages {
			if err := trans.Add(key, text, false); err != nil {
				return nil, fmt.Errorf("add %s/%s: %w", lang, key, err)
			}
		}
	}

	fallback, _ := uni.GetTranslator(defaultLang)
	return &Catalog{uni: uni, fallback: fallback}, nil
}

func (c *Catalog) Supports(lang string) bool {
	_, found := c.uni.GetTranslator(lang)
	return found
}

// Translator picks the first supported language among langs.
func (c *Catalog) Translator(langs ...string) Translator {
	trans, found := c.uni.FindTranslator(langs...)
	if !found {
		trans = c.fallback
	}
	return &translator{trans: trans, fallback: c.fallback}
}

type translator struct {
	trans    ut.Translator
	fallback ut.Translator
}

func (t *translator) Language() string {
	return t.trans.Locale()
}

func (t *translator) Message(key string) string {
	if s, err := t.trans.T(key); err == nil {
		return s
	}
	if s, err := t.fallback.T(key); err == nil {
		return s
	}
	return key
}
