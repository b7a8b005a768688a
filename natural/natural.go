// Package natural tags the words of a human-entered date phrase ("3rd
// wednesday in november", "tomorrow at 5pm"). Scanners classify each token as
// ordinal, scalar, repeater (month name, day name, day portion, time, unit),
// separator, pointer, grabber or timezone. Combining the tags into an
// instant is left to the caller.
package natural

// Result is the outcome of Parse.
type Result struct {
	// Text is the normalized phrase the tokens were split from.
	Text   string
	Tokens []Token
}

// Tagged returns only the tokens that carry at least one tag.
func (r Result) Tagged() []Token {
	var res []Token
	for _, t := range r.Tokens {
		if t.Tagged() {
			res = append(res, t)
		}
	}
	return res
}

// Untagged returns the words no scanner recognised.
func (r Result) Untagged() []string {
	var res []string
	for _, t := range r.Tokens {
		if !t.Tagged() {
			res = append(res, t.Word)
		}
	}
	return res
}

// Parse normalizes phrase, splits it into tokens and runs every scanner over them.
func Parse(phrase string) Result {
	text := Normalize(phrase)
	tokens := Tokenize(text)
	Scan(tokens)
	return Result{Text: text, Tokens: tokens}
}

// Scan runs the scanners over already tokenized words, in order: ordinals,
// scalars, repeaters, separators, pointers, grabbers and timezones.
func Scan(tokens []Token) {
	for _, scan := range scanners {
		scan(tokens)
	}
}
