package airp

import (
	"strconv"
)

// MaxDepth bounds how deeply arrays and objects may nest.
const MaxDepth = 10000

// parse reads one value from the start of s.
// It returns the value and how many bytes of s belong to it, surrounding
// whitespace included. Container productions call parse again on the
// unconsumed rest of their input and advance by the returned length; error
// offsets are relative to s. depth counts the containers enclosing s.
func parse(s string, depth int) (*Value, int, error) {
	p := skipSpace(s)
	if p == len(s) {
		return nil, 0, nil
	}
	var (
		v   *Value
		n   int
		err error
	)
	switch rest := s[p:]; leadToken(rest) {
	case stringToken:
		v, n, err = parseString(rest)
	case numberToken:
		v, n, err = parseNumber(rest)
	case trueToken:
		v, n = NewBool(true), len(litTrue)
	case falseToken:
		v, n = NewBool(false), len(litFalse)
	case nullToken:
		v, n = NewNull(), len(litNull)
	case objectOToken, arrayOToken:
		if depth >= MaxDepth {
			return nil, 0, newParseError(UnrecognizedToken, rest, p, "nesting too deep")
		}
		if rest[0] == '{' {
			v, n, err = parseObject(rest, depth+1)
		} else {
			v, n, err = parseArray(rest, depth+1)
		}
	default:
		return nil, 0, newParseError(UnrecognizedToken, rest, p, "")
	}
	if err != nil {
		return nil, 0, rebase(err, p)
	}
	p += n
	p += skipSpace(s[p:])
	return v, p, nil
}

// parseString reads a string delimited by the quote s starts with.
func parseString(s string) (*Value, int, error) {
	text, end, ok := readUntil(s[1:], s[0])
	if !ok {
		return nil, 0, newParseError(UnterminatedString, s, 0, "")
	}
	return NewString(text), end + 2, nil
}

func parseNumber(s string) (*Value, int, error) {
	n, float := scanNumber(s)
	if n == 0 {
		return nil, 0, newParseError(InvalidNumber, s, 0, "")
	}
	num := s[:n]
	if !float {
		if i, err := strconv.ParseInt(num, 10, 64); err == nil {
			return NewInt(i), n, nil
		}
		// out of int64 range, keep it as float
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, 0, newParseError(InvalidNumber, s, 0, "out of range")
	}
	return NewFloat(f), n, nil
}

// parseKey reads an object key, either quoted or bare up to the next
// unescaped colon. The returned length does not include the colon.
func parseKey(s string) (string, int, error) {
	if q := s[0]; q == '"' || q == '\'' {
		key, end, ok := readUntil(s[1:], q)
		if !ok {
			return "", 0, newParseError(UnterminatedString, s, 0, "in key")
		}
		return key, end + 2, nil
	}
	key, end, ok := readUntil(s, ':')
	if !ok {
		return "", 0, newParseError(MissingColon, "", len(s), "")
	}
	for len(key) > 0 && isSpace(key[len(key)-1]) {
		key = key[:len(key)-1]
	}
	return key, end, nil
}

func parseObject(s string, depth int) (*Value, int, error) {
	m := make(map[string]*Value)
	p := 1
	for {
		p += skipSpace(s[p:])
		if p == len(s) {
			return nil, 0, newParseError(UnterminatedContainer, "", p, "'}' expected")
		}
		if s[p] == '}' {
			return NewObject(m), p + 1, nil
		}
		key, n, err := parseKey(s[p:])
		if err != nil {
			return nil, 0, rebase(err, p)
		}
		p += n
		p += skipSpace(s[p:])
		if p == len(s) || s[p] != ':' {
			return nil, 0, newParseError(MissingColon, s[p:], p, "")
		}
		p++
		val, n, err := parseMember(s[p:], depth)
		if err != nil {
			return nil, 0, rebase(err, p)
		}
		p += n
		m[key] = val
	}
}

func parseArray(s string, depth int) (*Value, int, error) {
	vv := []*Value{}
	p := 1
	for {
		p += skipSpace(s[p:])
		if p == len(s) {
			return nil, 0, newParseError(UnterminatedContainer, "", p, "']' expected")
		}
		if s[p] == ']' {
			return NewArray(vv...), p + 1, nil
		}
		val, n, err := parseMember(s[p:], depth)
		if err != nil {
			return nil, 0, rebase(err, p)
		}
		p += n
		vv = append(vv, val)
	}
}

// parseMember parses one container entry value from s, followed by an
// optional comma. Running out of input is an unterminated container.
func parseMember(s string, depth int) (*Value, int, error) {
	p := skipSpace(s)
	if p == len(s) {
		return nil, 0, newParseError(UnterminatedContainer, "", p, "value expected")
	}
	val, n, err := parse(s[p:], depth)
	if err != nil {
		return nil, 0, rebase(err, p)
	}
	p += n
	if p < len(s) && s[p] == ',' {
		p++
	}
	return val, p, nil
}
