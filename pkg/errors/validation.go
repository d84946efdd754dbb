package errors

import (
	"strings"
	"unicode"
)

// maxNounLength bounds a single noun. The longest entries in published
// WordNet releases are well under 100 bytes.
const maxNounLength = 256

// ValidateNoun validates a noun taken from a synset record.
//
// Nouns are single tokens: multi-word collocations are joined with
// underscores ("American_dog_tick"), which is why whitespace is rejected.
// The validation rules are:
//   - No empty nouns
//   - Maximum length of 256 bytes
//   - No commas (the synset field separator)
//   - No whitespace or control characters
func ValidateNoun(noun string) error {
	if noun == "" {
		return New(ErrCodeInvalidInput, "noun cannot be empty")
	}

	if len(noun) > maxNounLength {
		return New(ErrCodeInvalidInput, "noun too long (max %d characters)", maxNounLength)
	}

	if strings.Contains(noun, ",") {
		return New(ErrCodeInvalidInput, "noun contains a comma: %q", noun)
	}

	for _, r := range noun {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "noun contains invalid control characters: %q", noun)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "noun contains whitespace: %q", noun)
		}
	}

	return nil
}
