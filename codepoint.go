package textedit

import (
	"unicode"
	"unicode/utf8"
)

// Newline is the logical newline codepoint. "\r\n" and "\r" decode to it.
const Newline rune = '\n'

// Decode converts UTF-8 text into codepoints, normalizing line endings.
// A malformed sequence returns a *DecodeError and no codepoints.
func Decode(s string) ([]rune, error) {
	runes := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, &DecodeError{Offset: i, Byte: s[i]}
		}
		i += size
		if r == '\r' {
			if i < len(s) && s[i] == '\n' {
				i++
			}
			r = Newline
		}
		runes = append(runes, r)
	}
	return runes, nil
}

// Encode converts codepoints back to UTF-8.
func Encode(runes []rune) string {
	buf := make([]byte, 0, len(runes))
	for _, r := range runes {
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf)
}

// isNewline reports whether r ends a line.
func isNewline(r rune) bool {
	return r == Newline
}

// isSpace reports whether r is a space separator or a tab.
func isSpace(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Zs, r)
}

// isWhitespace reports whether r is whitespace other than a newline.
func isWhitespace(r rune) bool {
	return !isNewline(r) && unicode.IsSpace(r)
}

// isAlphanumeric reports whether r is a letter or a digit.
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isBreak reports whether r separates words.
func isBreak(r rune) bool {
	return isNewline(r) || isWhitespace(r)
}
