package natural

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	cron "github.com/kaiserkarel/cronrule"
)

// scanner attaches tags to tokens in place.
type scanner func(tokens []Token)

// scanners run in this order. A token may collect tags from several of them.
var scanners = []scanner{
	scanOrdinals,
	scanScalars,
	scanRepeaters,
	scanSeparators,
	scanPointers,
	scanGrabbers,
	scanTimezones,
}

var (
	ordinalWord = regexp.MustCompile(`^(\d+)(st|nd|rd|th)$`)
	scalarWord  = regexp.MustCompile(`^\d+$`)
	dayWord     = regexp.MustCompile(`^\d\d?$`)
	yearWord    = regexp.MustCompile(`^([1-9]\d)?\d\d$`)
	timeWord    = regexp.MustCompile(`^\d{1,2}(:?\d{2})?([.:]?\d{2})?$`)
	zoneWord    = regexp.MustCompile(`^([pmce][ds]t|utc|gmt)$`)
)

// words that turn a preceding number into a time of day rather than a scalar
var dayPortionWords = map[string]bool{
	"am": true, "pm": true, "morning": true, "afternoon": true, "evening": true, "night": true,
}

func scanOrdinals(tokens []Token) {
	for i := range tokens {
		m := ordinalWord.FindStringSubmatch(tokens[i].Word)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		tokens[i].tag(Ordinal{N: n})
		if n >= 1 && n <= 31 {
			tokens[i].tag(OrdinalDay{N: n})
		}
	}
}

func scanScalars(tokens []Token) {
	for i := range tokens {
		word := tokens[i].Word
		if i+1 < len(tokens) && dayPortionWords[tokens[i+1].Word] {
			continue
		}
		if !scalarWord.MatchString(word) {
			continue
		}
		n, err := strconv.Atoi(word)
		if err != nil {
			continue
		}
		tokens[i].tag(Scalar{N: n})
		if dayWord.MatchString(word) && n >= 1 && n <= 31 {
			tokens[i].tag(ScalarDay{N: n})
		}
		if dayWord.MatchString(word) && n >= 1 && n <= 12 {
			tokens[i].tag(ScalarMonth{N: n})
		}
		if yearWord.MatchString(word) {
			tokens[i].tag(ScalarYear{N: expandYear(n)})
		}
	}
}

// expandYear maps two digit years onto 1938-2037.
func expandYear(n int) int {
	switch {
	case n >= 100:
		return n
	case n > 37:
		return n + 1900
	default:
		return n + 2000
	}
}

// repeaterScanners recognise the repeater kinds. The table is closed; every
// kind of repeater tag has exactly one scanner here.
var repeaterScanners = []func(word string) (Tag, bool){
	scanMonthName,
	scanDayName,
	scanDayPortion,
	scanTime,
	scanUnit,
}

func scanRepeaters(tokens []Token) {
	for i := range tokens {
		for _, scan := range repeaterScanners {
			if tag, ok := scan(tokens[i].Word); ok {
				tokens[i].tag(tag)
			}
		}
	}
}

type pattern[T any] struct {
	re    *regexp.Regexp
	value T
}

var monthNames = []pattern[time.Month]{
	{regexp.MustCompile(`^jan\.?(uary)?$`), time.January},
	{regexp.MustCompile(`^feb\.?(ruary)?$`), time.February},
	{regexp.MustCompile(`^mar\.?(ch)?$`), time.March},
	{regexp.MustCompile(`^apr\.?(il)?$`), time.April},
	{regexp.MustCompile(`^may$`), time.May},
	{regexp.MustCompile(`^jun\.?e?$`), time.June},
	{regexp.MustCompile(`^jul\.?y?$`), time.July},
	{regexp.MustCompile(`^aug\.?(ust)?$`), time.August},
	{regexp.MustCompile(`^sep\.?(t\.?|tember)?$`), time.September},
	{regexp.MustCompile(`^oct\.?(ober)?$`), time.October},
	{regexp.MustCompile(`^nov\.?(ember)?$`), time.November},
	{regexp.MustCompile(`^dec\.?(ember)?$`), time.December},
}

var dayNames = []pattern[cron.Weekday]{
	{regexp.MustCompile(`^m[ou]n(day)?$`), cron.Monday},
	{regexp.MustCompile(`^t(ue|eu|oo|u|)s(day)?$`), cron.Tuesday},
	{regexp.MustCompile(`^tue$`), cron.Tuesday},
	{regexp.MustCompile(`^we(dnes|nds|nns)day$`), cron.Wednesday},
	{regexp.MustCompile(`^wed$`), cron.Wednesday},
	{regexp.MustCompile(`^th(urs|ers)day$`), cron.Thursday},
	{regexp.MustCompile(`^thu(rs?)?$`), cron.Thursday},
	{regexp.MustCompile(`^fr[iy](day)?$`), cron.Friday},
	{regexp.MustCompile(`^sat(t?[ue]rday)?$`), cron.Saturday},
	{regexp.MustCompile(`^su[nm](day)?$`), cron.Sunday},
}

var dayPortions = []pattern[Portion]{
	{regexp.MustCompile(`^ams?$`), AM},
	{regexp.MustCompile(`^pms?$`), PM},
	{regexp.MustCompile(`^mornings?$`), Morning},
	{regexp.MustCompile(`^afternoons?$`), Afternoon},
	{regexp.MustCompile(`^evenings?$`), Evening},
	{regexp.MustCompile(`^(night|nite)s?$`), Night},
}

var units = []pattern[Unit]{
	{regexp.MustCompile(`^years?$`), Year},
	{regexp.MustCompile(`^seasons?$`), Season},
	{regexp.MustCompile(`^months?$`), Month},
	{regexp.MustCompile(`^fortnights?$`), Fortnight},
	{regexp.MustCompile(`^weeks?$`), Week},
	{regexp.MustCompile(`^weekends?$`), Weekend},
	{regexp.MustCompile(`^(week|business)days?$`), Weekday},
	{regexp.MustCompile(`^days?$`), Day},
	{regexp.MustCompile(`^(hours?|hrs?)$`), Hour},
	{regexp.MustCompile(`^(minutes?|mins?)$`), Minute},
	{regexp.MustCompile(`^(seconds?|secs?)$`), Second},
}

func lookup[T any](table []pattern[T], word string) (T, bool) {
	for _, p := range table {
		if p.re.MatchString(word) {
			return p.value, true
		}
	}
	var zero T
	return zero, false
}

func scanMonthName(word string) (Tag, bool) {
	if m, ok := lookup(monthNames, word); ok {
		return MonthName{Month: m}, true
	}
	return nil, false
}

func scanDayName(word string) (Tag, bool) {
	if d, ok := lookup(dayNames, word); ok {
		return DayName{Day: d}, true
	}
	return nil, false
}

func scanDayPortion(word string) (Tag, bool) {
	if p, ok := lookup(dayPortions, word); ok {
		return DayPortion{Portion: p}, true
	}
	return nil, false
}

func scanUnit(word string) (Tag, bool) {
	if u, ok := lookup(units, word); ok {
		return TimeUnit{Unit: u}, true
	}
	return nil, false
}

// scanTime reads "5", "0530", "5:30", "17:30:15" or "5:32.19". One and two
// digit hours are ambiguous, as are colon separated times up to 12:59.
func scanTime(word string) (Tag, bool) {
	if !timeWord.MatchString(word) {
		return nil, false
	}
	digits := strings.NewReplacer(":", "", ".", "").Replace(word)
	colon := strings.Contains(word, ":")

	var t Time
	switch len(digits) {
	case 1, 2:
		t.Hour = atoi(digits)
		t.Ambiguous = true
	case 3:
		t.Hour, t.Minute = atoi(digits[:1]), atoi(digits[1:])
		t.Ambiguous = true
	case 4:
		t.Hour, t.Minute = atoi(digits[:2]), atoi(digits[2:])
		t.Ambiguous = colon && digits[0] != '0' && t.Hour <= 12
	case 5:
		t.Hour, t.Minute, t.Second = atoi(digits[:1]), atoi(digits[1:3]), atoi(digits[3:])
		t.Ambiguous = true
	case 6:
		t.Hour, t.Minute, t.Second = atoi(digits[:2]), atoi(digits[2:4]), atoi(digits[4:])
		t.Ambiguous = colon && digits[0] != '0' && t.Hour <= 12
	default:
		return nil, false
	}

	if t.Hour > 24 || t.Minute > 59 || t.Second > 59 {
		return nil, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func scanSeparators(tokens []Token) {
	for i := range tokens {
		switch tokens[i].Word {
		case ",":
			tokens[i].tag(Separator{Kind: Comma})
		case "/", "-":
			tokens[i].tag(Separator{Kind: SlashOrDash})
		case "at", "@":
			tokens[i].tag(Separator{Kind: At})
		case "in":
			tokens[i].tag(Separator{Kind: In})
		}
	}
}

func scanPointers(tokens []Token) {
	for i := range tokens {
		switch tokens[i].Word {
		case "past":
			tokens[i].tag(Pointer{Direction: Past})
		case "future", "in":
			tokens[i].tag(Pointer{Direction: Future})
		}
	}
}

func scanGrabbers(tokens []Token) {
	for i := range tokens {
		switch tokens[i].Word {
		case "last":
			tokens[i].tag(Grabber{Grab: Last})
		case "this":
			tokens[i].tag(Grabber{Grab: This})
		case "next":
			tokens[i].tag(Grabber{Grab: Next})
		}
	}
}

func scanTimezones(tokens []Token) {
	for i := range tokens {
		word := strings.ToLower(tokens[i].Word)
		if zoneWord.MatchString(word) {
			tokens[i].tag(Timezone{Zone: strings.ToUpper(word)})
		}
	}
}
