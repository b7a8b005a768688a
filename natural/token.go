package natural

import (
	"strings"
)

// Token is a single word of a phrase together with the tags scanners attached to it.
type Token struct {
	Word string
	Tags []Tag
}

// Tagged reports whether any scanner recognised the token.
func (t Token) Tagged() bool {
	return len(t.Tags) > 0
}

// Tag returns the first tag of the given type, e.g. "scalar_day".
func (t Token) Tag(typ string) (Tag, bool) {
	for _, tag := range t.Tags {
		if tag.Type() == typ {
			return tag, true
		}
	}
	return nil, false
}

// Has reports whether the token carries a tag of the given type.
func (t Token) Has(typ string) bool {
	_, ok := t.Tag(typ)
	return ok
}

func (t *Token) tag(tag Tag) {
	t.Tags = append(t.Tags, tag)
}

func (t Token) String() string {
	if !t.Tagged() {
		return t.Word
	}
	tags := make([]string, len(t.Tags))
	for i, tag := range t.Tags {
		tags[i] = tag.String()
	}
	return t.Word + "[" + strings.Join(tags, ", ") + "]"
}

// Tokenize splits text on runs of whitespace.
func Tokenize(text string) []Token {
	words := strings.Fields(text)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Word: w}
	}
	return tokens
}
