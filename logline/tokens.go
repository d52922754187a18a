package logline

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	identifierCode
	integerCode
	equalsCode
	openBracketCode
	closeBracketCode
	slashCode
	colonCode
	commaCode
	arrowCode
)

// Token definitions
var (
	whitespaceToken   = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	identifierToken   = parsly.NewToken(identifierCode, "Identifier", newIdentifierMatcher())
	integerToken      = parsly.NewToken(integerCode, "Integer", newIntegerMatcher())
	equalsToken       = parsly.NewToken(equalsCode, "=", matcher.NewByte('='))
	openBracketToken  = parsly.NewToken(openBracketCode, "[", matcher.NewByte('['))
	closeBracketToken = parsly.NewToken(closeBracketCode, "]", matcher.NewByte(']'))
	slashToken        = parsly.NewToken(slashCode, "/", matcher.NewByte('/'))
	colonToken        = parsly.NewToken(colonCode, ":", matcher.NewByte(':'))
	commaToken        = parsly.NewToken(commaCode, ",", matcher.NewByte(','))
	arrowToken        = parsly.NewToken(arrowCode, "->", newArrowMatcher())
)

// Custom matchers
func newIdentifierMatcher() parsly.Matcher {
	return &identifierMatcher{}
}

func newIntegerMatcher() parsly.Matcher {
	return &integerMatcher{}
}

func newArrowMatcher() parsly.Matcher {
	return &arrowMatcher{}
}

// identifierMatcher matches queue/task/item identifiers and grammar keywords:
// a letter, digit or underscore followed by letters, digits, underscores or
// hyphens (task ids embed the queue id and a hyphen).
type identifierMatcher struct{}

func (m *identifierMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}

	if !isLetter(input[pos]) && !isDigit(input[pos]) && input[pos] != '_' {
		return 0
	}

	matched := 1
	for i := pos + 1; i < size; i++ {
		if isLetter(input[i]) || isDigit(input[i]) || input[i] == '_' || input[i] == '-' {
			matched++
			continue
		}
		break
	}

	return matched
}

// integerMatcher matches a run of decimal digits.
type integerMatcher struct{}

func (m *integerMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		if !isDigit(input[i]) {
			break
		}
		matched++
	}

	return matched
}

// arrowMatcher matches the literal "->".
type arrowMatcher struct{}

func (m *arrowMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos

	if pos+1 >= cursor.InputSize {
		return 0
	}
	if input[pos] == '-' && input[pos+1] == '>' {
		return 2
	}
	return 0
}

// Helper functions
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
