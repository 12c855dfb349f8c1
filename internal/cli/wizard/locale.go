package wizard

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/modu-ai/flutter-scaffold/pkg/models"
)

var supportedTags = func() []language.Tag {
	langs := models.SupportedLanguages()
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}
	return tags
}()

var localeMatcher = language.NewMatcher(supportedTags)

// MatchLocale returns the first supported language code matching one of the
// candidates, checked in order. Candidates may be BCP 47 tags ("tr-TR") or
// POSIX locale values ("tr_TR.UTF-8"). Empty, "C" and "POSIX" values are
// ignored. Falls back to models.DefaultLanguage.
func MatchLocale(candidates ...string) string {
	for _, c := range candidates {
		tag, ok := parseLocale(c)
		if !ok {
			continue
		}
		_, idx, conf := localeMatcher.Match(tag)
		if conf == language.No {
			continue
		}
		base, _ := supportedTags[idx].Base()
		return base.String()
	}
	return models.DefaultLanguage
}

func parseLocale(s string) (language.Tag, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
