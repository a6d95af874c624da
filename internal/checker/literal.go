package checker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

var errEmptyChar = errors.New("empty character literal")

// IntValue parses a decimal integer literal as a 32-bit int. negated
// applies a leading unary minus so that -2147483648 is accepted.
func IntValue(raw string, negated bool) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("integer literal %s: %w", raw, err)
	}
	if negated {
		v = -v
	}
	n, err := safecast.Convert[int32](v)
	if err != nil {
		if negated {
			raw = "-" + raw
		}
		return 0, fmt.Errorf("integer literal %s does not fit in int: %w", raw, err)
	}
	return n, nil
}

// CharValue decodes a quoted character literal such as 'a' or '\n'
func CharValue(raw string) (uint16, error) {
	body, err := unquoteBody(raw, '\'')
	if err != nil {
		return 0, err
	}
	runes := []rune(body)
	if len(runes) == 0 {
		return 0, errEmptyChar
	}
	if len(runes) > 1 {
		return 0, fmt.Errorf("character literal %s holds more than one character", raw)
	}
	c, err := safecast.Convert[uint16](runes[0])
	if err != nil {
		return 0, fmt.Errorf("character literal %s is outside the char range: %w", raw, err)
	}
	return c, nil
}

// StringValue decodes a quoted string literal
func StringValue(raw string) (string, error) {
	return unquoteBody(raw, '"')
}

// unquoteBody strips the surrounding quotes of raw and decodes its escape
// sequences. Both quote characters may be escaped in either kind of
// literal.
func unquoteBody(raw string, quote byte) (string, error) {
	if len(raw) < 2 || raw[0] != quote || raw[len(raw)-1] != quote {
		return "", fmt.Errorf("malformed literal %s", raw)
	}
	s := raw[1 : len(raw)-1]

	var sb strings.Builder
	for len(s) > 0 {
		if strings.HasPrefix(s, `\'`) || strings.HasPrefix(s, `\"`) {
			sb.WriteByte(s[1])
			s = s[2:]
			continue
		}
		r, _, tail, err := strconv.UnquoteChar(s, quote)
		if err != nil {
			return "", fmt.Errorf("invalid escape in literal %s: %w", raw, err)
		}
		sb.WriteRune(r)
		s = tail
	}
	return sb.String(), nil
}
