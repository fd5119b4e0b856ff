package internal

import (
	"strings"

	"go.uber.org/zap"
)

// SegmentType identifies the kind of a tokenized segment.
type SegmentType int

// Segment type constants
const (
	SegmentLiteral SegmentType = iota
	SegmentPlaceholder
)

// Segment type string names for debugging
const (
	SegmentTypeNameLiteral     = "LITERAL"
	SegmentTypeNamePlaceholder = "PLACEHOLDER"
)

// String returns the string representation of the segment type.
func (s SegmentType) String() string {
	if s == SegmentPlaceholder {
		return SegmentTypeNamePlaceholder
	}
	return SegmentTypeNameLiteral
}

// Segment is a single piece of tokenized input: either a run of literal
// text or a placeholder. Segments are immutable once produced.
type Segment struct {
	Type SegmentType

	// Text is the literal content with escape sequences resolved.
	// Only set for SegmentLiteral.
	Text string

	// Identifier is the trimmed placeholder identifier.
	// Only set for SegmentPlaceholder.
	Identifier string

	// Params is the optional parameter section of a placeholder,
	// with escape sequences resolved.
	Params Params

	// Raw is the original source span of a placeholder including the
	// surrounding braces, exactly as written (escapes untouched).
	Raw string
}

// TokenizerConfig holds tokenizer configuration.
type TokenizerConfig struct {
	// EscapeChar suppresses the special meaning of the following
	// brace or pipe character. Zero value falls back to backslash.
	EscapeChar byte
}

// DefaultTokenizerConfig returns the default tokenizer configuration.
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{EscapeChar: DefaultEscapeChar}
}

// Tokenizer scans an input string into a sequence of segments.
// It performs a single left-to-right pass, never fails, and has no side
// effects: malformed placeholders degrade to literal text. Call Next
// until it reports false; Reset restarts the same input from the top.
type Tokenizer struct {
	input  string
	escape byte
	pos    int
	logger *zap.Logger
}

// NewTokenizer creates a tokenizer with the default configuration.
func NewTokenizer(input string, logger *zap.Logger) *Tokenizer {
	return NewTokenizerWithConfig(input, DefaultTokenizerConfig(), logger)
}

// NewTokenizerWithConfig creates a tokenizer with a custom configuration.
func NewTokenizerWithConfig(input string, config TokenizerConfig, logger *zap.Logger) *Tokenizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	escape := config.EscapeChar
	if escape == 0 {
		escape = DefaultEscapeChar
	}
	logger.Debug(LogMsgTokenizerCreated, zap.Int(LogFieldInput, len(input)))
	return &Tokenizer{
		input:  input,
		escape: escape,
		logger: logger,
	}
}

// Tokenize runs a tokenizer over input and collects all segments.
func Tokenize(input string, config TokenizerConfig, logger *zap.Logger) []Segment {
	t := NewTokenizerWithConfig(input, config, logger)
	var segments []Segment
	for {
		seg, ok := t.Next()
		if !ok {
			return segments
		}
		segments = append(segments, seg)
	}
}

// Reset restarts the tokenizer at the beginning of its input.
func (t *Tokenizer) Reset() {
	t.pos = 0
}

// Next returns the next segment, or a zero segment and false at end of
// input. An empty input yields no segments.
func (t *Tokenizer) Next() (Segment, bool) {
	if t.pos >= len(t.input) {
		return Segment{}, false
	}

	if t.input[t.pos] == CharOpenBrace {
		if seg, ok := t.scanPlaceholder(); ok {
			return seg, true
		}
		// Invalid candidate: the opening brace reverts to literal text.
	}

	return t.scanLiteral(), true
}

// scanLiteral consumes literal text up to (but excluding) the next
// unescaped opening brace. When called with the cursor on an opening
// brace that failed to form a placeholder, that brace is consumed as
// literal text so scanning can make progress.
func (t *Tokenizer) scanLiteral() Segment {
	var sb strings.Builder

	if t.input[t.pos] == CharOpenBrace {
		sb.WriteByte(CharOpenBrace)
		t.pos++
	}

	for t.pos < len(t.input) {
		ch := t.input[t.pos]

		if ch == t.escape && t.pos+1 < len(t.input) && isSpecial(t.input[t.pos+1]) {
			sb.WriteByte(t.input[t.pos+1])
			t.pos += 2
			continue
		}

		if ch == CharOpenBrace {
			break
		}

		sb.WriteByte(ch)
		t.pos++
	}

	return Segment{Type: SegmentLiteral, Text: sb.String()}
}

// scanPlaceholder attempts to scan a placeholder starting at the current
// opening brace. On success the cursor moves past the closing brace; on
// failure (unterminated, nested brace, or empty identifier) the cursor
// is left untouched and the caller falls back to literal scanning.
func (t *Tokenizer) scanPlaceholder() (Segment, bool) {
	start := t.pos
	i := start + 1

	var identifier, params strings.Builder
	sawPipe := false
	current := &identifier

	for i < len(t.input) {
		ch := t.input[i]

		if ch == t.escape && i+1 < len(t.input) && isSpecial(t.input[i+1]) {
			current.WriteByte(t.input[i+1])
			i += 2
			continue
		}

		switch ch {
		case CharOpenBrace:
			// No nesting: an inner brace invalidates the candidate.
			return Segment{}, false

		case CharCloseBrace:
			id := strings.TrimSpace(identifier.String())
			if id == "" {
				// Bare {} or whitespace-only identifier is literal text.
				return Segment{}, false
			}
			seg := Segment{
				Type:       SegmentPlaceholder,
				Identifier: id,
				Raw:        t.input[start : i+1],
			}
			if sawPipe {
				seg.Params = NewParams(params.String())
			}
			t.pos = i + 1
			return seg, true

		case CharPipe:
			if !sawPipe {
				sawPipe = true
				current = &params
				i++
				continue
			}
			// Later pipes belong to the params section.
			current.WriteByte(ch)
			i++

		default:
			current.WriteByte(ch)
			i++
		}
	}

	// Unterminated candidate.
	return Segment{}, false
}

// isSpecial reports whether ch has special meaning in the grammar and
// can therefore be escaped.
func isSpecial(ch byte) bool {
	return ch == CharOpenBrace || ch == CharCloseBrace || ch == CharPipe
}
