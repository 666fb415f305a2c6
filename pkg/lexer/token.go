package lexer

import "fmt"

// Kind identifies the category of a lexed token.
type Kind int

const (
	// Keywords, in recognition priority order.
	KindIHasA Kind = iota
	KindSumOf
	KindDiffOf
	KindProduktOf
	KindQuoshuntOf
	KindModOf
	KindBiggrOf
	KindSmallrOf
	KindBothSaem
	KindBothOf
	KindEitherOf
	KindORly
	KindYaRly
	KindNoWai
	KindOic
	KindHai
	KindKthxbye
	KindItz
	KindVisible
	KindGimmeh
	KindDiffrint
	KindNot
	KindAn
	KindR

	// Literals and names.
	KindYarn
	KindNumbr
	KindNumbar
	KindTroof
	KindIdentifier
)

func (k Kind) String() string {
	switch k {
	case KindIHasA:
		return "I_HAS_A"
	case KindSumOf:
		return "SUM_OF"
	case KindDiffOf:
		return "DIFF_OF"
	case KindProduktOf:
		return "PRODUKT_OF"
	case KindQuoshuntOf:
		return "QUOSHUNT_OF"
	case KindModOf:
		return "MOD_OF"
	case KindBiggrOf:
		return "BIGGR_OF"
	case KindSmallrOf:
		return "SMALLR_OF"
	case KindBothSaem:
		return "BOTH_SAEM"
	case KindBothOf:
		return "BOTH_OF"
	case KindEitherOf:
		return "EITHER_OF"
	case KindORly:
		return "O_RLY"
	case KindYaRly:
		return "YA_RLY"
	case KindNoWai:
		return "NO_WAI"
	case KindOic:
		return "OIC"
	case KindHai:
		return "HAI"
	case KindKthxbye:
		return "KTHXBYE"
	case KindItz:
		return "ITZ"
	case KindVisible:
		return "VISIBLE"
	case KindGimmeh:
		return "GIMMEH"
	case KindDiffrint:
		return "DIFFRINT"
	case KindNot:
		return "NOT"
	case KindAn:
		return "AN"
	case KindR:
		return "R"
	case KindYarn:
		return "YARN"
	case KindNumbr:
		return "NUMBR"
	case KindNumbar:
		return "NUMBAR"
	case KindTroof:
		return "TROOF"
	case KindIdentifier:
		return "IDENTIFIER"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// IsBinaryOperator reports whether the kind opens a two-operand expression.
func (k Kind) IsBinaryOperator() bool {
	switch k {
	case KindSumOf, KindDiffOf, KindProduktOf, KindQuoshuntOf, KindModOf,
		KindBiggrOf, KindSmallrOf, KindBothSaem, KindBothOf, KindEitherOf, KindDiffrint:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the kind carries a literal value.
func (k Kind) IsLiteral() bool {
	switch k {
	case KindYarn, KindNumbr, KindNumbar, KindTroof:
		return true
	default:
		return false
	}
}

// Token is a classified lexical unit. Line and Column are 1-based.
type Token struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Text   string `json:"text" yaml:"text"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %s, line=%d, col=%d)", t.Kind, t.Text, t.Line, t.Column)
}

// MarshalText lets encoders render the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
