package regexparse

import "fmt"

// ErrorKind は、パース失敗の種類を表します。すべてのエラーはソース範囲を
// 伴う構造化された値であり、単なる文字列ではありません。
type ErrorKind int

const (
	ErrUnexpectedEndOfInput ErrorKind = iota
	ErrExpected
	ErrExpectedSequence
	ErrExpectedNonEmptyContents
	ErrExpectedASCII
	ErrExpectedNumber
	ErrExpectedNumDigits
	ErrNumberOverflow
	ErrInvalidScalar
	ErrExpectedGroupSpecifier
	ErrUnknownGroupKind
	ErrInvalidMatchingOption
	ErrCannotRemoveMatchingOptionsAfterCaret
	ErrCannotRemoveTextSegmentOptions
	ErrQuantifierCannotFollow
	ErrQuantifierWithoutOperand
	ErrMisc
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedEndOfInput:
		return "unexpected_end_of_input"
	case ErrExpected:
		return "expected"
	case ErrExpectedSequence:
		return "expected_sequence"
	case ErrExpectedNonEmptyContents:
		return "expected_non_empty_contents"
	case ErrExpectedASCII:
		return "expected_ascii"
	case ErrExpectedNumber:
		return "expected_number"
	case ErrExpectedNumDigits:
		return "expected_num_digits"
	case ErrNumberOverflow:
		return "number_overflow"
	case ErrInvalidScalar:
		return "invalid_scalar"
	case ErrExpectedGroupSpecifier:
		return "expected_group_specifier"
	case ErrUnknownGroupKind:
		return "unknown_group_kind"
	case ErrInvalidMatchingOption:
		return "invalid_matching_option"
	case ErrCannotRemoveMatchingOptionsAfterCaret:
		return "cannot_remove_matching_options_after_caret"
	case ErrCannotRemoveTextSegmentOptions:
		return "cannot_remove_text_segment_options"
	case ErrQuantifierCannotFollow:
		return "quantifier_cannot_follow"
	case ErrQuantifierWithoutOperand:
		return "quantifier_without_operand"
	default:
		return "misc"
	}
}

// ParseError は、パース中に検出されたエラーです。Kind によって付随するフィールドの
// 意味が変わります（タグ付きユニオン的な扱い）。
type ParseError struct {
	Kind  ErrorKind
	Range Location

	Literal  string   // ErrExpected
	Literals []string // ErrExpectedSequence
	Char     rune     // ErrExpectedASCII, ErrInvalidMatchingOption
	Text     string   // ErrExpectedNumber, ErrExpectedNumDigits, ErrNumberOverflow
	Radix    int      // ErrExpectedNumber
	N        int      // ErrExpectedNumDigits
	Value    rune     // ErrInvalidScalar
	Message  string   // ErrMisc, ErrUnknownGroupKind
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrUnexpectedEndOfInput:
		return fmt.Sprintf("unexpected end of input at %s", e.Range)
	case ErrExpected:
		return fmt.Sprintf("expected %q at %s", e.Literal, e.Range)
	case ErrExpectedSequence:
		return fmt.Sprintf("expected one of %v at %s", e.Literals, e.Range)
	case ErrExpectedNonEmptyContents:
		return fmt.Sprintf("expected non-empty contents at %s", e.Range)
	case ErrExpectedASCII:
		return fmt.Sprintf("expected ASCII character, got %q at %s", e.Char, e.Range)
	case ErrExpectedNumber:
		return fmt.Sprintf("expected a base-%d number, got %q at %s", e.Radix, e.Text, e.Range)
	case ErrExpectedNumDigits:
		return fmt.Sprintf("expected %d digits, got %q at %s", e.N, e.Text, e.Range)
	case ErrNumberOverflow:
		return fmt.Sprintf("number overflow: %q at %s", e.Text, e.Range)
	case ErrInvalidScalar:
		return fmt.Sprintf("invalid Unicode scalar value U+%04X at %s", e.Value, e.Range)
	case ErrExpectedGroupSpecifier:
		return fmt.Sprintf("expected group specifier at %s", e.Range)
	case ErrUnknownGroupKind:
		return fmt.Sprintf("unknown group kind %q at %s", e.Message, e.Range)
	case ErrInvalidMatchingOption:
		return fmt.Sprintf("invalid matching option %q at %s", e.Char, e.Range)
	case ErrCannotRemoveMatchingOptionsAfterCaret:
		return fmt.Sprintf("cannot remove matching options after ^ at %s", e.Range)
	case ErrCannotRemoveTextSegmentOptions:
		return fmt.Sprintf("cannot remove text segment options at %s", e.Range)
	case ErrQuantifierCannotFollow:
		return fmt.Sprintf("quantifier cannot follow this construct at %s", e.Range)
	case ErrQuantifierWithoutOperand:
		return fmt.Sprintf("quantifier without operand at %s", e.Range)
	default:
		return fmt.Sprintf("%s at %s", e.Message, e.Range)
	}
}

func errUnexpectedEndOfInput(loc Location) error {
	return &ParseError{Kind: ErrUnexpectedEndOfInput, Range: loc}
}

func errExpected(literal string, loc Location) error {
	return &ParseError{Kind: ErrExpected, Range: loc, Literal: literal}
}

func errExpectedSequence(literals []string, loc Location) error {
	return &ParseError{Kind: ErrExpectedSequence, Range: loc, Literals: literals}
}

func errExpectedNonEmptyContents(loc Location) error {
	return &ParseError{Kind: ErrExpectedNonEmptyContents, Range: loc}
}

func errExpectedASCII(ch rune, loc Location) error {
	return &ParseError{Kind: ErrExpectedASCII, Range: loc, Char: ch}
}

func errExpectedNumber(text string, radix int, loc Location) error {
	return &ParseError{Kind: ErrExpectedNumber, Range: loc, Text: text, Radix: radix}
}

func errExpectedNumDigits(text string, n int, loc Location) error {
	return &ParseError{Kind: ErrExpectedNumDigits, Range: loc, Text: text, N: n}
}

func errNumberOverflow(text string, loc Location) error {
	return &ParseError{Kind: ErrNumberOverflow, Range: loc, Text: text}
}

func errInvalidScalar(value rune, loc Location) error {
	return &ParseError{Kind: ErrInvalidScalar, Range: loc, Value: value}
}

func errExpectedGroupSpecifier(loc Location) error {
	return &ParseError{Kind: ErrExpectedGroupSpecifier, Range: loc}
}

func errUnknownGroupKind(text string, loc Location) error {
	return &ParseError{Kind: ErrUnknownGroupKind, Range: loc, Message: text}
}

func errInvalidMatchingOption(ch rune, loc Location) error {
	return &ParseError{Kind: ErrInvalidMatchingOption, Range: loc, Char: ch}
}

func errCannotRemoveMatchingOptionsAfterCaret(loc Location) error {
	return &ParseError{Kind: ErrCannotRemoveMatchingOptionsAfterCaret, Range: loc}
}

func errCannotRemoveTextSegmentOptions(loc Location) error {
	return &ParseError{Kind: ErrCannotRemoveTextSegmentOptions, Range: loc}
}

func errQuantifierCannotFollow(loc Location) error {
	return &ParseError{Kind: ErrQuantifierCannotFollow, Range: loc}
}

func errQuantifierWithoutOperand(loc Location) error {
	return &ParseError{Kind: ErrQuantifierWithoutOperand, Range: loc}
}

func errMisc(message string, loc Location) error {
	return &ParseError{Kind: ErrMisc, Range: loc, Message: message}
}
