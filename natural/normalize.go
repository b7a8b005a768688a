package natural

import (
	"regexp"
	"strconv"
	"strings"
)

type rewrite struct {
	re   *regexp.Regexp
	repl string
}

// Idioms are rewritten to the vocabulary the scanners understand. Order matters:
// "before now" has to go before "now", "this past" after "ago".
var idioms = []rewrite{
	{regexp.MustCompile(`['"\.]`), ""},
	{regexp.MustCompile(`([/\-,@])`), " $1 "},
	{regexp.MustCompile(`\btoday\b`), "this day"},
	{regexp.MustCompile(`\btomm?orr?ow\b`), "next day"},
	{regexp.MustCompile(`\byesterday\b`), "last day"},
	{regexp.MustCompile(`\bnoon\b`), "12:00"},
	{regexp.MustCompile(`\bmidnight\b`), "24:00"},
	{regexp.MustCompile(`\bbefore now\b`), "past"},
	{regexp.MustCompile(`\bnow\b`), "this second"},
	{regexp.MustCompile(`\b(ago|before)\b`), "past"},
	{regexp.MustCompile(`\bthis past\b`), "last"},
	{regexp.MustCompile(`\bthis last\b`), "last"},
	{regexp.MustCompile(`\b(?:in|during) the (morning)\b`), "$1"},
	{regexp.MustCompile(`\b(?:in the|during the|at) (afternoon|evening|night)\b`), "$1"},
	{regexp.MustCompile(`\btonight\b`), "this night"},
	{regexp.MustCompile(`(\d)([ap]m|oclock)\b`), "$1 $2"},
	{regexp.MustCompile(`\b(hence|after|from)\b`), "future"},
}

var numbers = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var ordinals = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20, "thirtieth": 30,
}

var tens = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// Normalize lowercases text, turns number and ordinal words into digits and
// rewrites idioms ("tomorrow", "3 days ago", "5pm") into scanner vocabulary.
func Normalize(text string) string {
	text = strings.ToLower(text)
	for _, r := range idioms {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return numerize(text)
}

// numerize rewrites "three" to "3", "twenty one" to "21" and "third" to
// "3rd". "second" is left alone because it is far more often the unit.
func numerize(text string) string {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		w := words[i]
		if t, ok := tens[w]; ok && i+1 < len(words) {
			next := words[i+1]
			if n, ok := numbers[next]; ok && n > 0 && n < 10 {
				out = append(out, strconv.Itoa(t+n))
				i++
				continue
			}
			if n, ok := ordinals[next]; ok && n < 10 && next != "second" {
				out = append(out, ordinalSuffix(t+n))
				i++
				continue
			}
		}
		if n, ok := numbers[w]; ok {
			out = append(out, strconv.Itoa(n))
			continue
		}
		if n, ok := ordinals[w]; ok && w != "second" {
			out = append(out, ordinalSuffix(n))
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

func ordinalSuffix(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
