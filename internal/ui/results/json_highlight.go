package results

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// jsonTokenType identifies the kind of JSON token for syntax coloring.
type jsonTokenType int

const (
	jsonTokenKey jsonTokenType = iota
	jsonTokenString
	jsonTokenNumber
	jsonTokenBool
	jsonTokenNull
	jsonTokenPunct
	jsonTokenWhitespace
)

// tokenColorName maps token types to Fyne theme color names.
var tokenColorName = map[jsonTokenType]fyne.ThemeColorName{
	jsonTokenKey:        theme.ColorNamePrimary,
	jsonTokenString:     theme.ColorNameSuccess,
	jsonTokenNumber:     theme.ColorNameWarning,
	jsonTokenBool:       theme.ColorNameError,
	jsonTokenNull:       theme.ColorNameDisabled,
	jsonTokenPunct:      theme.ColorNameForeground,
	jsonTokenWhitespace: theme.ColorNameForeground,
}

// highlightJSON converts a pretty-printed JSON string into colored RichText
// segments. The input is assumed to be valid JSON; anything unexpected is
// rendered as plain punctuation so display never fails.
func highlightJSON(input string) []widget.RichTextSegment {
	if input == "" {
		return nil
	}

	lex := &jsonLexer{input: input}
	segments := make([]widget.RichTextSegment, 0, 128)

	for {
		typ, value := lex.next()
		if value == "" {
			break
		}
		segments = append(segments, &widget.TextSegment{
			Style: widget.RichTextStyle{
				ColorName: tokenColorName[typ],
				Inline:    true,
				SizeName:  theme.SizeNameText,
				TextStyle: fyne.TextStyle{Monospace: true},
			},
			Text: value,
		})
	}

	return segments
}

// jsonLexer walks the input byte by byte, emitting typed tokens.
type jsonLexer struct {
	input string
	pos   int
}

// next returns the next token, or ("", whitespace) at end of input.
func (l *jsonLexer) next() (jsonTokenType, string) {
	if l.pos >= len(l.input) {
		return jsonTokenWhitespace, ""
	}

	start := l.pos
	ch := l.input[l.pos]

	switch {
	case ch == '"':
		l.scanString()
		value := l.input[start:l.pos]
		if l.colonFollows() {
			return jsonTokenKey, value
		}
		return jsonTokenString, value

	case ch == '-' || (ch >= '0' && ch <= '9'):
		l.pos++
		for l.pos < len(l.input) && isNumberByte(l.input[l.pos]) {
			l.pos++
		}
		return jsonTokenNumber, l.input[start:l.pos]

	case l.literalAt("true"):
		return jsonTokenBool, "true"

	case l.literalAt("false"):
		return jsonTokenBool, "false"

	case l.literalAt("null"):
		return jsonTokenNull, "null"

	case isSpaceByte(ch):
		l.pos++
		for l.pos < len(l.input) && isSpaceByte(l.input[l.pos]) {
			l.pos++
		}
		return jsonTokenWhitespace, l.input[start:l.pos]

	default:
		// Structural characters, and anything unexpected, pass through.
		l.pos++
		return jsonTokenPunct, l.input[start:l.pos]
	}
}

// scanString advances past a quoted string, honoring backslash escapes.
func (l *jsonLexer) scanString() {
	l.pos++ // opening quote
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case '\\':
			l.pos += 2
		case '"':
			l.pos++
			return
		default:
			l.pos++
		}
	}
}

// colonFollows reports whether the next non-space byte is a colon, which
// marks the just-scanned string as an object key.
func (l *jsonLexer) colonFollows() bool {
	for i := l.pos; i < len(l.input); i++ {
		if isSpaceByte(l.input[i]) {
			continue
		}
		return l.input[i] == ':'
	}
	return false
}

// literalAt consumes the literal if it appears at the current position.
func (l *jsonLexer) literalAt(lit string) bool {
	if l.pos+len(lit) <= len(l.input) && l.input[l.pos:l.pos+len(lit)] == lit {
		l.pos += len(lit)
		return true
	}
	return false
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
