package geostyle

// Palette is a fixed ordered sequence of high-contrast color tokens.
//
// The greedy colorer walks the palette in order and picks the first token
// not already used by a neighbor, so the order is part of the coloring
// contract: reordering tokens changes assignments.
type Palette struct {
	tokens []string
}

// defaultTokens are ten high-contrast fill colors.
var defaultTokens = []string{
	"#e6194b", // red
	"#3cb44b", // green
	"#ffe119", // yellow
	"#4363d8", // blue
	"#f58231", // orange
	"#911eb4", // purple
	"#46f0f0", // cyan
	"#f032e6", // magenta
	"#bcf60c", // lime
	"#fabebe", // pink
}

// NewPalette creates a palette from the given ordered tokens.
//
// Returns ErrEmptyPalette when tokens is empty; a palette always holds at
// least one color. The token slice is copied.
func NewPalette(tokens []string) (*Palette, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyPalette
	}

	copied := make([]string, len(tokens))
	copy(copied, tokens)
	return &Palette{tokens: copied}, nil
}

// DefaultPalette returns the built-in ten-color high-contrast palette.
func DefaultPalette() *Palette {
	p, _ := NewPalette(defaultTokens)
	return p
}

// Tokens returns a copy of the palette's tokens in order.
func (p *Palette) Tokens() []string {
	out := make([]string, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Len returns the number of tokens in the palette.
func (p *Palette) Len() int {
	return len(p.tokens)
}

// Pick returns the first token not present in used.
//
// Returns ("", false) when every token is already used; the caller decides
// how to handle exhaustion (the colorer falls back to a random color).
func (p *Palette) Pick(used map[string]struct{}) (string, bool) {
	for _, token := range p.tokens {
		if _, taken := used[token]; !taken {
			return token, true
		}
	}
	return "", false
}
