package dictionary

import (
	"strings"
)

type Limits struct {
	MaxDefinitions int
	MaxSynonyms    int
}

func DefaultLimits() Limits {
	return Limits{
		MaxDefinitions: 3,
		MaxSynonyms:    5,
	}
}

func (l Limits) orDefault() Limits {
	defaults := DefaultLimits()
	if l.MaxDefinitions <= 0 {
		l.MaxDefinitions = defaults.MaxDefinitions
	}
	if l.MaxSynonyms <= 0 {
		l.MaxSynonyms = defaults.MaxSynonyms
	}
	return l
}

// Format renders the meanings of the first entry.
// It returns false when nothing is left to show.
func Format(entries []Entry, limits Limits) (string, bool) {
	limits = limits.orDefault()
	if len(entries) == 0 || len(entries[0].Meanings) == 0 {
		return "", false
	}

	lines := make([]string, 0)
	for _, meaning := range entries[0].Meanings {
		if len(meaning.Definitions) == 0 {
			continue
		}

		lines = append(lines, "  "+meaning.PartOfSpeech)
		for _, definition := range head(meaning.Definitions, limits.MaxDefinitions) {
			lines = append(lines, "    • "+definition.Definition)
			if definition.Example != "" {
				lines = append(lines, `      Example: "`+definition.Example+`"`)
			}
			if len(definition.Synonyms) > 0 {
				synonyms := strings.Join(head(definition.Synonyms, limits.MaxSynonyms), ", ")
				if len(definition.Synonyms) > limits.MaxSynonyms {
					synonyms += ", ..."
				}
				lines = append(lines, "      Synonyms: "+synonyms)
			}
		}
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
