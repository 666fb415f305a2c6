// Package lexer turns LOLCODE source text into tokens, one physical line at a
// time.
package lexer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrUnterminatedString = errors.New("string literal not closed")
	ErrUnrecognizedToken  = errors.New("unrecognized token")
)

// LexError reports the first position the lexer could not classify.
type LexError struct {
	Err    error
	Line   int
	Column int
}

func (e *LexError) Error() string {
	msg := "lexing failed"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s at line %d, col %d", capitalize(msg), e.Line, e.Column)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

type keywordPattern struct {
	kind    Kind
	pattern *regexp.Regexp

	// wordStart keywords never continue a preceding word or number.
	wordStart bool
}

// Multi-word keywords come before any keyword that could be a prefix of one
// of their words.
var keywordPatterns = []keywordPattern{
	keyword(KindIHasA, `I\s+HAS\s+A`),
	keyword(KindSumOf, `SUM\s+OF`),
	keyword(KindDiffOf, `DIFF\s+OF`),
	keyword(KindProduktOf, `PRODUKT\s+OF`),
	keyword(KindQuoshuntOf, `QUOSHUNT\s+OF`),
	keyword(KindModOf, `MOD\s+OF`),
	keyword(KindBiggrOf, `BIGGR\s+OF`),
	keyword(KindSmallrOf, `SMALLR\s+OF`),
	keyword(KindBothSaem, `BOTH\s+SAEM`),
	keyword(KindBothOf, `BOTH\s+OF`),
	keyword(KindEitherOf, `EITHER\s+OF`),
	keyword(KindORly, `O\s+RLY\?`),
	keyword(KindYaRly, `YA\s+RLY`),
	keyword(KindNoWai, `NO\s+WAI`),
	keyword(KindOic, `OIC`),
	keyword(KindHai, `HAI`),
	keyword(KindKthxbye, `KTHXBYE`),
	keyword(KindItz, `ITZ`),
	keyword(KindVisible, `VISIBLE`),
	keyword(KindGimmeh, `GIMMEH`),
	keyword(KindDiffrint, `DIFFRINT`),
	keyword(KindNot, `NOT`),
	keyword(KindAn, `AN`),
	wordStartKeyword(KindR, `R`),
}

var (
	numberPattern     = regexp.MustCompile(`\A-?[0-9]+(\.[0-9]+)?`)
	identifierPattern = regexp.MustCompile(`\A[A-Za-z][A-Za-z0-9_]*`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// keyword anchors the pattern at the scan position and, for keywords ending
// in a letter, at a word boundary so keywords never match inside identifiers.
func keyword(kind Kind, pattern string) keywordPattern {
	expr := `(?i)\A` + pattern
	if last := pattern[len(pattern)-1]; isASCIILetter(last) {
		expr += `\b`
	}
	return keywordPattern{kind: kind, pattern: regexp.MustCompile(expr)}
}

func wordStartKeyword(kind Kind, pattern string) keywordPattern {
	kw := keyword(kind, pattern)
	kw.wordStart = true
	return kw
}

// Tokenize converts source text into tokens. It stops at the first error.
func Tokenize(source string) ([]Token, error) {
	tokens := make([]Token, 0)
	for idx, line := range splitLines(source) {
		lineTokens, err := tokenizeLine(line, idx+1)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
	}
	return tokens, nil
}

func splitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	return strings.Split(source, "\n")
}

type lineScanner struct {
	raw    string
	text   string
	offset int
	line   int
	pos    int
	tokens []Token
}

func tokenizeLine(raw string, line int) ([]Token, error) {
	trimmedLeft := strings.TrimLeftFunc(raw, unicode.IsSpace)
	s := &lineScanner{
		raw:    raw,
		text:   strings.TrimRightFunc(trimmedLeft, unicode.IsSpace),
		offset: len(raw) - len(trimmedLeft),
		line:   line,
	}
	if err := s.scan(); err != nil {
		return nil, err
	}
	return s.tokens, nil
}

func (s *lineScanner) scan() error {
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		if unicode.IsSpace(r) {
			s.pos += size
			continue
		}
		if s.scanKeyword() {
			continue
		}
		if r == '"' {
			if err := s.scanString(); err != nil {
				return err
			}
			continue
		}
		if s.scanNumber() {
			continue
		}
		if s.scanIdentifier() {
			continue
		}
		return &LexError{Err: ErrUnrecognizedToken, Line: s.line, Column: s.column(s.pos)}
	}
	return nil
}

func (s *lineScanner) scanKeyword() bool {
	rest := s.text[s.pos:]
	for _, kw := range keywordPatterns {
		if kw.wordStart && s.pos > 0 && isWordByte(s.text[s.pos-1]) {
			continue
		}
		match := kw.pattern.FindString(rest)
		if match == "" {
			continue
		}
		text := strings.ToUpper(whitespaceRun.ReplaceAllString(match, " "))
		s.emit(kw.kind, text, s.pos)
		s.pos += len(match)
		return true
	}
	return false
}

func (s *lineScanner) scanString() error {
	start := s.pos
	end := strings.IndexByte(s.text[start+1:], '"')
	if end < 0 {
		return &LexError{Err: ErrUnterminatedString, Line: s.line, Column: s.column(start)}
	}
	value := s.text[start+1 : start+1+end]
	s.emit(KindYarn, value, start)
	s.pos = start + 1 + end + 1
	return nil
}

func (s *lineScanner) scanNumber() bool {
	match := numberPattern.FindStringSubmatch(s.text[s.pos:])
	if match == nil {
		return false
	}
	kind := KindNumbr
	if match[1] != "" {
		kind = KindNumbar
	}
	s.emit(kind, match[0], s.pos)
	s.pos += len(match[0])
	return true
}

func (s *lineScanner) scanIdentifier() bool {
	match := identifierPattern.FindString(s.text[s.pos:])
	if match == "" {
		return false
	}
	switch upper := strings.ToUpper(match); upper {
	case "WIN", "FAIL":
		s.emit(KindTroof, upper, s.pos)
	default:
		s.emit(KindIdentifier, match, s.pos)
	}
	s.pos += len(match)
	return true
}

func (s *lineScanner) emit(kind Kind, text string, at int) {
	s.tokens = append(s.tokens, Token{
		Kind:   kind,
		Text:   text,
		Line:   s.line,
		Column: s.column(at),
	})
}

// column maps a byte offset in the trimmed text to a 1-based rune column in
// the physical line.
func (s *lineScanner) column(at int) int {
	return utf8.RuneCountInString(s.raw[:s.offset+at]) + 1
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordByte(c byte) bool {
	return isASCIILetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
