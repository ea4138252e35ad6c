package generator

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	digits       = "0123456789"
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" + digits
)

var (
	leadingArticle = regexp.MustCompile(`(?i)^(la|las|el|los) `)
	stopWords      = regexp.MustCompile(`(?i)( (y|a|o|de|del|por|para|con|la|las|el|los|en))+ `)
	trailingRoman  = []struct {
		pattern *regexp.Regexp
		arabic  string
	}{
		{regexp.MustCompile(` V$`), " 5"},
		{regexp.MustCompile(` IV$`), " 4"},
		{regexp.MustCompile(` III$`), " 3"},
		{regexp.MustCompile(` II$`), " 2"},
		{regexp.MustCompile(` I$`), " 1"},
	}
	numberedName = regexp.MustCompile(`^(.*) ([0-9]+)$`)
)

// FoldAccents strips combining marks, turning "Álgebra" into "Algebra" and "Muñoz" into "Munoz"
func FoldAccents(value string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, value)
	if err != nil {
		return value
	}
	return folded
}

// Initials builds the short code of a subject name: articles and connectives are skipped, a trailing roman
// numeral becomes a digit, and the first letter of every remaining word is kept. "Ampliación de Redes II" is "AR2"
func Initials(name string) string {
	words := leadingArticle.ReplaceAllString(name, "")
	words = stopWords.ReplaceAllString(words, " ")
	for _, suffix := range trailingRoman {
		if suffix.pattern.MatchString(words) {
			words = suffix.pattern.ReplaceAllString(words, suffix.arabic)
			break
		}
	}

	fields := strings.FieldsFunc(words, func(r rune) bool { return r == ' ' || r == '-' })
	if len(fields) == 0 {
		return "?"
	}
	letters := lo.Map(fields, func(word string, _ int) string {
		first, _ := firstRune(word)
		return string(first)
	})
	return strings.ToUpper(FoldAccents(strings.Join(letters, "")))
}

func firstRune(word string) (rune, bool) {
	for _, r := range word {
		return r, true
	}
	return 0, false
}

// Roman renders n in roman numerals
func Roman(n int) string {
	values := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	letters := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
	var builder strings.Builder
	for i, value := range values {
		for n >= value {
			n -= value
			builder.WriteString(letters[i])
		}
	}
	return builder.String()
}

// namer hands out unique names: the first request for a base returns it as is, later ones append 1, 2, ...
type namer struct {
	separator string
	seen      map[string]int
}

func newNamer(separator string) *namer {
	return &namer{separator: separator, seen: make(map[string]int)}
}

func (namer *namer) unique(base string) string {
	count, found := namer.seen[base]
	namer.seen[base] = count + 1
	if !found {
		return base
	}
	return base + namer.separator + strconv.Itoa(count)
}

// repeated lists the bases requested more than once
func (namer *namer) repeated() []string {
	return lo.Keys(lo.PickBy(namer.seen, func(_ string, count int) bool { return count > 1 }))
}

// romanize renames a numbered duplicate of one of bases: "X" becomes "X I" and "X n" becomes "X" plus the
// roman numeral of n+1. Other names are returned unchanged
func romanize(name string, bases []string) (string, bool) {
	if lo.Contains(bases, name) {
		return name + " I", true
	}
	match := numberedName.FindStringSubmatch(name)
	if match == nil || !lo.Contains(bases, match[1]) {
		return name, false
	}
	n, err := strconv.Atoi(match[2])
	if err != nil {
		return name, false
	}
	return fmt.Sprintf("%v %v", match[1], Roman(n+1)), true
}

// UserName derives a login from the initials of the first name and the first surname, e.g. "Jose Luis" +
// "Muñoz Ortega" gives "jlmunoz"
func UserName(firstName, lastName string) string {
	initials := lo.Map(strings.Fields(firstName), func(word string, _ int) string {
		first, _ := firstRune(word)
		return string(first)
	})
	surname, _, _ := strings.Cut(lastName, " ")
	return strings.ToLower(FoldAccents(strings.Join(initials, "") + surname))
}

func randomString(random *rand.Rand, length int, alphabet string) string {
	bytes := make([]byte, length)
	for i := range bytes {
		bytes[i] = alphabet[random.IntN(len(alphabet))]
	}
	return string(bytes)
}

func randomChoice[T any](random *rand.Rand, values []T) T {
	return values[random.IntN(len(values))]
}

// randomInRange returns an integer in [low, high], both inclusive
func randomInRange(random *rand.Rand, low, high int) int {
	return low + random.IntN(high-low+1)
}
