package dictionary

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func definitions(n int, synonyms []string) []Definition {
	result := make([]Definition, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, Definition{
			Definition: fmt.Sprintf("definition %d", i),
			Synonyms:   synonyms,
		})
	}
	return result
}

func TestFormat(t *testing.T) {
	sevenSynonyms := []string{"a", "b", "c", "d", "e", "f", "g"}

	tests := []struct {
		name    string
		entries []Entry
		limits  Limits
		want    string
		wantOK  bool
	}{
		{
			name: "single definition with example and synonyms",
			entries: []Entry{
				{
					Word: "apple",
					Meanings: []Meaning{
						{
							PartOfSpeech: "noun",
							Definitions: []Definition{
								{
									Definition: "A common, round fruit.",
									Example:    "An apple a day keeps the doctor away.",
									Synonyms:   []string{"pome"},
								},
							},
						},
					},
				},
			},
			limits: DefaultLimits(),
			want: strings.Join([]string{
				"  noun",
				"    • A common, round fruit.",
				`      Example: "An apple a day keeps the doctor away."`,
				"      Synonyms: pome",
			}, "\n"),
			wantOK: true,
		},
		{
			name: "definitions are capped per meaning and synonyms are truncated",
			entries: []Entry{
				{
					Meanings: []Meaning{
						{PartOfSpeech: "noun", Definitions: definitions(5, sevenSynonyms)},
						{PartOfSpeech: "verb", Definitions: definitions(5, nil)},
					},
				},
			},
			limits: DefaultLimits(),
			want: strings.Join([]string{
				"  noun",
				"    • definition 1",
				"      Synonyms: a, b, c, d, e, ...",
				"    • definition 2",
				"      Synonyms: a, b, c, d, e, ...",
				"    • definition 3",
				"      Synonyms: a, b, c, d, e, ...",
				"  verb",
				"    • definition 1",
				"    • definition 2",
				"    • definition 3",
			}, "\n"),
			wantOK: true,
		},
		{
			name: "exactly five synonyms have no ellipsis",
			entries: []Entry{
				{
					Meanings: []Meaning{
						{PartOfSpeech: "adjective", Definitions: definitions(1, []string{"a", "b", "c", "d", "e"})},
					},
				},
			},
			limits: DefaultLimits(),
			want: strings.Join([]string{
				"  adjective",
				"    • definition 1",
				"      Synonyms: a, b, c, d, e",
			}, "\n"),
			wantOK: true,
		},
		{
			name: "meanings without definitions are skipped",
			entries: []Entry{
				{
					Meanings: []Meaning{
						{PartOfSpeech: "noun"},
						{PartOfSpeech: "verb", Definitions: definitions(1, nil)},
					},
				},
			},
			limits: DefaultLimits(),
			want: strings.Join([]string{
				"  verb",
				"    • definition 1",
			}, "\n"),
			wantOK: true,
		},
		{
			name: "only the first entry is used",
			entries: []Entry{
				{Meanings: []Meaning{{PartOfSpeech: "noun", Definitions: definitions(1, nil)}}},
				{Meanings: []Meaning{{PartOfSpeech: "verb", Definitions: definitions(1, nil)}}},
			},
			limits: DefaultLimits(),
			want: strings.Join([]string{
				"  noun",
				"    • definition 1",
			}, "\n"),
			wantOK: true,
		},
		{
			name: "custom limits",
			entries: []Entry{
				{
					Meanings: []Meaning{
						{PartOfSpeech: "noun", Definitions: definitions(3, []string{"a", "b", "c"})},
					},
				},
			},
			limits: Limits{MaxDefinitions: 1, MaxSynonyms: 2},
			want: strings.Join([]string{
				"  noun",
				"    • definition 1",
				"      Synonyms: a, b, ...",
			}, "\n"),
			wantOK: true,
		},
		{
			name: "zero limits fall back to defaults",
			entries: []Entry{
				{
					Meanings: []Meaning{
						{PartOfSpeech: "noun", Definitions: definitions(4, nil)},
					},
				},
			},
			limits: Limits{},
			want: strings.Join([]string{
				"  noun",
				"    • definition 1",
				"    • definition 2",
				"    • definition 3",
			}, "\n"),
			wantOK: true,
		},
		{
			name:    "no entries",
			entries: []Entry{},
			limits:  DefaultLimits(),
			wantOK:  false,
		},
		{
			name:    "first entry without meanings",
			entries: []Entry{{Word: "apple"}},
			limits:  DefaultLimits(),
			wantOK:  false,
		},
		{
			name: "all meanings have empty definitions",
			entries: []Entry{
				{
					Meanings: []Meaning{
						{PartOfSpeech: "noun", Definitions: []Definition{}},
						{PartOfSpeech: "verb"},
					},
				},
			},
			limits: DefaultLimits(),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Format(tt.entries, tt.limits)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
