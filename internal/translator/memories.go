package translator

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

var (
	ErrLangUndetected  = errors.New("no language detected")
	ErrLangUnsupported = errors.New("language not supported")
)

// languageMemories maps a detected base language to the id of the memory
// pre-provisioned on the service for that source→target pair. The set is
// fixed at build time and mirrors what the account has configured.
var languageMemories = map[string]int{
	"de": 21,
	"es": 22,
	"fr": 23,
	"it": 24,
	"ja": 25,
	"nl": 26,
	"pl": 27,
	"pt": 28,
	"ru": 29,
	"uk": 30,
	"zh": 31,
}

// ResolveMemory maps a detected language code to its memory id. The code is
// canonicalized first, so "FR" and "fr-CA" both resolve to the "fr" memory.
// An empty code or the "und" sentinel yields ErrLangUndetected; anything the
// map does not cover yields ErrLangUnsupported.
func ResolveMemory(detected string) (int, error) {
	if detected == "" || detected == LangUndetermined {
		return 0, ErrLangUndetected
	}

	tag, err := language.Parse(detected)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrLangUnsupported, detected)
	}

	base, _ := tag.Base()
	id, ok := languageMemories[base.String()]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrLangUnsupported, detected)
	}
	return id, nil
}

// SupportedLanguages returns the detectable languages that have a memory,
// sorted for stable output.
func SupportedLanguages() []string {
	langs := make([]string, 0, len(languageMemories))
	for lang := range languageMemories {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// MemoryID returns the memory id for a supported base language code.
func MemoryID(lang string) (int, bool) {
	id, ok := languageMemories[lang]
	return id, ok
}
