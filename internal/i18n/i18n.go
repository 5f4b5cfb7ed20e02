// Package i18n resolves UI strings in English or Turkish. Dictionaries are
// YAML files embedded in the binary; the chosen language is remembered in
// local storage and listeners hear about every change.
package i18n

import (
	"context"
	"embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/logging"
	"github.com/dmitrijs2005/empdir/internal/repositories/localstore"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	Turkish Language = "tr"
)

// Supported lists the UI languages; the first is the fallback.
var Supported = []Language{English, Turkish}

//go:embed locales/*.yaml
var locales embed.FS

var matcher = language.NewMatcher([]language.Tag{language.English, language.Turkish})

// Normalize maps any BCP 47 tag (tr-TR, en_GB, TR...) to a supported
// language. Anything unrecognised becomes English.
func Normalize(s string) Language {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if s == "" {
		return English
	}
	tag, err := language.Parse(s)
	if err != nil {
		return English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return English
	}
	return Supported[idx]
}

type listener struct {
	id int
	fn func(Language)
}

// Translator is safe for concurrent use.
type Translator struct {
	dicts  map[Language]map[Key]string
	repo   localstore.Repository
	logger logging.Logger

	mu        sync.RWMutex
	lang      Language
	listeners []listener
	nextID    int
}

// LoadDictionaries parses the embedded locale files.
func LoadDictionaries() (map[Language]map[Key]string, error) {
	out := make(map[Language]map[Key]string, len(Supported))
	for _, l := range Supported {
		raw, err := locales.ReadFile(path.Join("locales", string(l)+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s dictionary: %w", l, err)
		}
		var d map[Key]string
		if err := yaml.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to parse %s dictionary: %w", l, err)
		}
		out[l] = d
	}
	return out, nil
}

// New builds a Translator. The language is preferred if not empty,
// otherwise the one stored under the "lang" key, otherwise English. repo
// may be nil, in which case the choice is not remembered.
func New(ctx context.Context, repo localstore.Repository, logger logging.Logger, preferred string) (*Translator, error) {
	dicts, err := LoadDictionaries()
	if err != nil {
		return nil, err
	}
	t := &Translator{dicts: dicts, repo: repo, logger: logger.With("component", "i18n"), lang: English}

	switch {
	case preferred != "":
		t.lang = Normalize(preferred)
	case repo != nil:
		raw, err := repo.Get(ctx, common.StorageKeyLanguage)
		if err != nil {
			t.logger.Warn(ctx, "failed to read stored language", "error", err)
		} else if len(raw) > 0 {
			t.lang = Normalize(string(raw))
		}
	}
	return t, nil
}

// T returns the text for key in the current language. A key missing from
// the dictionary renders as the key itself.
func (t *Translator) T(key Key) string {
	t.mu.RLock()
	lang := t.lang
	t.mu.RUnlock()

	if s, ok := t.dicts[lang][key]; ok {
		return s
	}
	return string(key)
}

// Language returns the current language.
func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLanguage switches language, remembers it and notifies listeners. The
// switch takes effect even when saving fails; the error is a
// *common.PersistenceError.
func (t *Translator) SetLanguage(ctx context.Context, lang string) error {
	l := Normalize(lang)

	t.mu.Lock()
	t.lang = l
	ls := make([]listener, len(t.listeners))
	copy(ls, t.listeners)
	t.mu.Unlock()

	var perr error
	if t.repo != nil {
		if err := t.repo.Set(ctx, common.StorageKeyLanguage, []byte(l)); err != nil {
			t.logger.Error(ctx, "failed to persist language", "error", err)
			perr = &common.PersistenceError{Op: "set", Key: common.StorageKeyLanguage, Err: err}
		}
	}

	for _, x := range ls {
		x.fn(l)
	}
	return perr
}

// OnChange registers fn for language changes and returns its unsubscribe
// function.
func (t *Translator) OnChange(fn func(Language)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.listeners = append(t.listeners, listener{id: id, fn: fn})

	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		for i, x := range t.listeners {
			if x.id == id {
				t.listeners = append(t.listeners[:i:i], t.listeners[i+1:]...)
				return
			}
		}
	}
}
