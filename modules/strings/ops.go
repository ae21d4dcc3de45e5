package strmod

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rubiojr/pyproto/modules"
)

// Offsets and widths are counted in runes. Optional start/end bounds follow
// slice semantics: negative values count from the end and both are clamped.

func span(n int, bounds []int) (start, end int) {
	start, end = 0, n
	if len(bounds) > 0 {
		start = bounds[0]
	}
	if len(bounds) > 1 {
		end = bounds[1]
	}
	if end > n {
		end = n
	} else if end < 0 {
		end += n
		if end < 0 {
			end = 0
		}
	}
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	return start, end
}

// window returns the [start,end) slice of s and its rune offset, or ok=false
// when start lies past the end of s or past end.
func window(s string, bounds []int) (hay string, start int, ok bool) {
	r := []rune(s)
	start, end := span(len(r), bounds)
	if start > len(r) || start > end {
		return "", 0, false
	}
	return string(r[start:end]), start, true
}

func runeOffset(s string, byteIdx int) int {
	return utf8.RuneCountInString(s[:byteIdx])
}

func fill(op string, fillchar []string) (string, error) {
	if len(fillchar) == 0 {
		return " ", nil
	}
	if utf8.RuneCountInString(fillchar[0]) != 1 {
		return "", modules.Errorf(modules.ErrInvalidArgument, op, "fillchar must be exactly one character, got %q", fillchar[0])
	}
	return fillchar[0], nil
}

// Capitalize uppercases the first character and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(s[:size]) + strings.ToLower(s[size:])
}

// Center pads s on both sides to width. When the padding is odd the extra
// fill character goes to the right.
func Center(s string, width int, fillchar ...string) (string, error) {
	f, err := fill("strings.center", fillchar)
	if err != nil {
		return "", err
	}
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s, nil
	}
	left := pad / 2
	return strings.Repeat(f, left) + s + strings.Repeat(f, pad-left), nil
}

// Count returns the number of non-overlapping occurrences of sub in s[start:end].
func Count(s, sub string, bounds ...int) int {
	hay, _, ok := window(s, bounds)
	if !ok {
		return 0
	}
	if sub == "" {
		return utf8.RuneCountInString(hay) + 1
	}
	return strings.Count(hay, sub)
}

func EndsWith(s, suffix string, bounds ...int) bool {
	hay, _, ok := window(s, bounds)
	return ok && strings.HasSuffix(hay, suffix)
}

func StartsWith(s, prefix string, bounds ...int) bool {
	hay, _, ok := window(s, bounds)
	return ok && strings.HasPrefix(hay, prefix)
}

// Find returns the lowest index of sub within s[start:end], or -1.
func Find(s, sub string, bounds ...int) int {
	hay, start, ok := window(s, bounds)
	if !ok {
		return -1
	}
	i := strings.Index(hay, sub)
	if i < 0 {
		return -1
	}
	return start + runeOffset(hay, i)
}

// RFind returns the highest index of sub within s[start:end], or -1. An
// empty sub matches at end.
func RFind(s, sub string, bounds ...int) int {
	hay, start, ok := window(s, bounds)
	if !ok {
		return -1
	}
	i := strings.LastIndex(hay, sub)
	if i < 0 {
		return -1
	}
	return start + runeOffset(hay, i)
}

// Index is Find returning ErrNotFound instead of -1.
func Index(s, sub string, bounds ...int) (int, error) {
	if i := Find(s, sub, bounds...); i >= 0 {
		return i, nil
	}
	return -1, modules.Errorf(modules.ErrNotFound, "strings.index", "substring %q not found", sub)
}

// RIndex is RFind returning ErrNotFound instead of -1.
func RIndex(s, sub string, bounds ...int) (int, error) {
	if i := RFind(s, sub, bounds...); i >= 0 {
		return i, nil
	}
	return -1, modules.Errorf(modules.ErrNotFound, "strings.rindex", "substring %q not found", sub)
}

// Format replaces every {key} placeholder that args can resolve with the
// stringified value. Unresolved placeholders stay as they are. Doubled
// braces are not an escape: "{{x}}" renders as "{" + value + "}".
func Format[T any](s string, args modules.Keyed[T]) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '{' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		j := strings.IndexByte(s[i+1:], '}')
		if j < 0 {
			sb.WriteString(s[i:])
			break
		}
		key := s[i+1 : i+1+j]
		if key == "" || strings.ContainsRune(key, '{') {
			sb.WriteByte('{')
			i++
			continue
		}
		v, ok := args.Lookup(key)
		if !ok {
			sb.WriteString(s[i : i+j+2])
		} else {
			sb.WriteString(modules.Stringify(v))
		}
		i += j + 2
	}
	return sb.String()
}

func all(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func isASCIIAlpha(r rune) bool { return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func IsAlnum(s string) bool {
	return all(s, func(r rune) bool { return isASCIIAlpha(r) || isASCIIDigit(r) })
}

func IsAlpha(s string) bool { return all(s, isASCIIAlpha) }
func IsDigit(s string) bool { return all(s, isASCIIDigit) }
func IsSpace(s string) bool { return all(s, unicode.IsSpace) }

func isUpperCased(r rune) bool { return unicode.IsUpper(r) || unicode.IsTitle(r) }

// IsLower reports whether s has at least one lowercase letter and no
// uppercase ones.
func IsLower(s string) bool {
	cased := false
	for _, r := range s {
		if isUpperCased(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// IsUpper reports whether s has at least one uppercase letter and no
// lowercase ones.
func IsUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if isUpperCased(r) {
			cased = true
		}
	}
	return cased
}

// IsTitle reports whether every run of cased letters in s starts with an
// uppercase letter followed only by lowercase ones.
func IsTitle(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case isUpperCased(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// Join concatenates the stringified items with sep between them.
func Join[T any](sep string, items modules.Iterable[T]) string {
	vals := items.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = modules.Stringify(v)
	}
	return strings.Join(parts, sep)
}

func LJust(s string, width int, fillchar ...string) (string, error) {
	f, err := fill("strings.ljust", fillchar)
	if err != nil {
		return "", err
	}
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s, nil
	}
	return s + strings.Repeat(f, pad), nil
}

func RJust(s string, width int, fillchar ...string) (string, error) {
	f, err := fill("strings.rjust", fillchar)
	if err != nil {
		return "", err
	}
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s, nil
	}
	return strings.Repeat(f, pad) + s, nil
}

// ZFill left-pads s with zeros to width.
func ZFill(s string, width int) string {
	out, _ := RJust(s, width, "0")
	return out
}

func Lower(s string) string { return strings.ToLower(s) }
func Upper(s string) string { return strings.ToUpper(s) }

// stripSet returns the removal predicate: whitespace when chars is omitted,
// otherwise membership in chars[0]. An explicit "" removes nothing.
func stripSet(chars []string) func(rune) bool {
	if len(chars) == 0 {
		return unicode.IsSpace
	}
	set := chars[0]
	return func(r rune) bool { return strings.ContainsRune(set, r) }
}

// LStrip removes the longest prefix made only of characters in chars
// (whitespace when omitted).
func LStrip(s string, chars ...string) string {
	return strings.TrimLeftFunc(s, stripSet(chars))
}

func RStrip(s string, chars ...string) string {
	return strings.TrimRightFunc(s, stripSet(chars))
}

func Strip(s string, chars ...string) string {
	return RStrip(LStrip(s, chars...), chars...)
}

// Partition splits s at the first occurrence of sep into head, sep, tail.
// When sep is absent the result is [s, "", ""].
func Partition(s, sep string) ([3]string, error) {
	if sep == "" {
		return [3]string{}, modules.Errorf(modules.ErrInvalidArgument, "strings.partition", "empty separator")
	}
	head, tail, found := strings.Cut(s, sep)
	if !found {
		return [3]string{s, "", ""}, nil
	}
	return [3]string{head, sep, tail}, nil
}

// RPartition splits s at the last occurrence of sep.
func RPartition(s, sep string) ([3]string, error) {
	if sep == "" {
		return [3]string{}, modules.Errorf(modules.ErrInvalidArgument, "strings.rpartition", "empty separator")
	}
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return [3]string{s, "", ""}, nil
	}
	return [3]string{s[:i], sep, s[i+len(sep):]}, nil
}

// SplitLines splits s at \n, \r, \r\n and \f. A terminal line break does not
// start a new line, and the empty string has no lines.
func SplitLines(s string, keepends bool) []string {
	lines := []string{}
	start := 0
	for start < len(s) {
		end, eol := start, len(s)
		for ; end < len(s); end++ {
			c := s[end]
			if c == '\n' || c == '\f' {
				eol = end + 1
				break
			}
			if c == '\r' {
				eol = end + 1
				if eol < len(s) && s[eol] == '\n' {
					eol++
				}
				break
			}
		}
		if keepends {
			lines = append(lines, s[start:eol])
		} else {
			lines = append(lines, s[start:end])
		}
		start = eol
	}
	return lines
}

// SwapCase inverts the case of every cased character in a single pass.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case isUpperCased(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}

// Title capitalizes every word. A word starts at an ASCII letter and runs
// over ASCII letters plus any character in joiners (e.g. "'" or "-").
func Title(s string, joiners ...string) string {
	extra := strings.Join(joiners, "")
	var sb strings.Builder
	sb.Grow(len(s))
	inWord := false
	for _, r := range s {
		switch {
		case !inWord && isASCIIAlpha(r):
			inWord = true
			sb.WriteRune(unicode.ToUpper(r))
		case inWord && (isASCIIAlpha(r) || strings.ContainsRune(extra, r)):
			sb.WriteRune(unicode.ToLower(r))
		default:
			inWord = false
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
