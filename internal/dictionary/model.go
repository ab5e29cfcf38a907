// Package dictionary looks up definitions on the Free Dictionary API.
//
// https://dictionaryapi.dev/
package dictionary

// Entry is one element of the API response array, one per etymology.
type Entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic,omitempty"`
	Phonetics []Phonetic `json:"phonetics,omitempty"`
	Meanings  []Meaning  `json:"meanings"`
}

type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

// Meaning groups definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}
