// Package name derives the canonical file and identifier names for a feature
// page from a free-form phrase.
package name

import (
	"strings"

	oerrors "github.com/getpage/cli/internal/errors"
)

// Name holds the two canonical renderings of an input phrase.
type Name struct {
	// Snake is the lowercase underscore-joined form used for files and
	// directories (e.g. "forgot_password").
	Snake string

	// Pascal is the concatenated capitalized form used for identifiers,
	// with acronym words kept verbatim (e.g. "MyHTTPPage").
	Pascal string
}

// Normalize tokenizes raw into words and renders both canonical forms.
// It fails when the phrase contains no letters or digits.
func Normalize(raw string) (Name, error) {
	words := tokenize(raw)
	if len(words) == 0 {
		return Name{}, oerrors.NewEmptyNameError(raw)
	}

	return Name{
		Snake:  joinSnake(words),
		Pascal: joinPascal(words),
	}, nil
}

// tokenizer states.
type state int

const (
	stateStart    state = iota // no token in progress
	stateWord                  // token whose latest letter is lowercase
	stateAcronym               // token that is an uppercase run so far
	stateDigitRun              // token whose latest rune is a digit
)

// tokenize splits raw into ordered word tokens.
//
// Boundaries are explicit delimiters (any rune that is not an ASCII letter or
// digit), the transition from an uppercase run into a capitalized word
// ("HTTPPage" -> "HTTP", "Page"), and the transition from a lowercase letter
// or digit to an uppercase letter ("myPage" -> "my", "Page"). Digits never
// force a boundary on their own, so "my2nd" stays one token.
func tokenize(raw string) []string {
	var (
		words []string
		cur   strings.Builder
		st    = stateStart
	)

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
		st = stateStart
	}

	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			if st == stateWord || st == stateDigitRun {
				flush()
			}
			cur.WriteRune(r)
			st = stateAcronym

		case r >= 'a' && r <= 'z':
			if st == stateAcronym && cur.Len() >= 2 {
				// An uppercase run followed by a lowercase letter: the run's
				// last letter is the start of the next word.
				run := cur.String()
				cur.Reset()
				cur.WriteString(run[:len(run)-1])
				flush()
				cur.WriteByte(run[len(run)-1])
			}
			cur.WriteRune(r)
			st = stateWord

		case r >= '0' && r <= '9':
			cur.WriteRune(r)
			st = stateDigitRun

		default:
			// delimiter: whitespace, '_', '-', or any other punctuation
			flush()
		}
	}
	flush()

	return words
}

// isAcronym reports whether word is two or more consecutive ASCII uppercase
// letters and nothing else. A single uppercase letter is a plain word.
func isAcronym(word string) bool {
	if len(word) < 2 {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return true
}

// joinSnake renders the lowercase underscore-joined form.
func joinSnake(words []string) string {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return strings.Join(lowered, "_")
}

// joinPascal renders the concatenated capitalized form, keeping acronym
// words verbatim.
func joinPascal(words []string) string {
	var b strings.Builder
	for _, w := range words {
		if isAcronym(w) {
			b.WriteString(w)
			continue
		}
		w = strings.ToLower(w)
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}
