package viewmodel

import "github.com/dmitrijs2005/empdir/internal/i18n"

// Texts resolves UI strings; *i18n.Translator implements it.
type Texts interface {
	T(key i18n.Key) string
}

// rawKeys renders every key as itself.
type rawKeys struct{}

func (rawKeys) T(key i18n.Key) string { return string(key) }

func textsOrRaw(t Texts) Texts {
	if t == nil {
		return rawKeys{}
	}
	return t
}
