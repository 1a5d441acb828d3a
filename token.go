package airp

// tokenType is the production selected by the first non-space byte of a
// value.
type tokenType uint8

const (
	errToken tokenType = iota
	nullToken
	trueToken
	falseToken
	numberToken
	stringToken
	arrayOToken
	objectOToken
)

const (
	litNull  = "null"
	litTrue  = "true"
	litFalse = "false"
)

// leadToken looks at the start of s and decides which production parses it.
// s must not be empty or start with whitespace.
func leadToken(s string) tokenType {
	switch b := s[0]; {
	case b == '"' || b == '\'':
		return stringToken
	case isDigit(b) || b == '.' || b == '-':
		return numberToken
	case b == '{':
		return objectOToken
	case b == '[':
		return arrayOToken
	case hasLiteral(s, litTrue):
		return trueToken
	case hasLiteral(s, litFalse):
		return falseToken
	case hasLiteral(s, litNull):
		return nullToken
	default:
		return errToken
	}
}

// String generates a readable form of a token meant for debuging.
func (t tokenType) String() string {
	switch t {
	case errToken:
		return "unknown"
	case nullToken:
		return "'null'"
	case trueToken:
		return "'true'"
	case falseToken:
		return "'false'"
	case numberToken:
		return "number"
	case stringToken:
		return "string"
	case arrayOToken:
		return "'['"
	case objectOToken:
		return "'{'"
	default:
		return "lex-unknown"
	}
}
