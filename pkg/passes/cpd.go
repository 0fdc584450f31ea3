package passes

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/leapcss/pkg/token"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// DefaultMinimumTokens is the smallest duplicated sequence reported.
const DefaultMinimumTokens = 70

// CPDToken is one token image fed to copy-paste detection.
type CPDToken struct {
	Image string
	Span  token.Span
}

// CPDOptions controls token normalisation.
type CPDOptions struct {
	// NormalizeNumbers replaces every number with the same image.
	NormalizeNumbers bool
	// NormalizeStrings replaces every string with the same image.
	NormalizeStrings bool
}

// Normalised images.
const (
	numberImage = "$number"
	stringImage = "$string"
)

// CPDTokens returns the images of the non-trivia tokens of sheet in source
// order. The byte order mark and the end of input are skipped.
func CPDTokens(sheet *tree.StyleSheet, opts CPDOptions) []CPDToken {
	var out []CPDToken
	for _, t := range tree.Tokens(sheet) {
		image := t.Literal
		switch t.Type {
		case token.EOF, token.BOM:
			continue
		case token.NUMBER:
			if opts.NormalizeNumbers {
				image = numberImage
			}
		case token.STRING:
			if opts.NormalizeStrings {
				image = stringImage
			}
		}
		out = append(out, CPDToken{Image: image, Span: t.Span})
	}
	return out
}

// CPDFile is the token sequence of one file.
type CPDFile struct {
	Path   string
	Tokens []CPDToken
}

// Occurrence locates one copy of a duplicated sequence.
type Occurrence struct {
	Path  string
	Start token.Position
	End   token.Position
}

// Duplication is a token sequence found in more than one place.
type Duplication struct {
	Tokens      int
	Occurrences []Occurrence
}

type tokenLoc struct {
	file, index int
}

// FindDuplicates reports the sequences of at least minTokens identical
// images that occur more than once across files. Each duplication is
// maximal: it cannot be extended backwards or forwards. Results are
// ordered by decreasing length, then by the first occurrence.
func FindDuplicates(files []CPDFile, minTokens int) []Duplication {
	if minTokens <= 0 {
		minTokens = DefaultMinimumTokens
	}

	index := make(map[string][]tokenLoc)
	var keys []string
	for fi, f := range files {
		for i := 0; i+minTokens <= len(f.Tokens); i++ {
			key := windowKey(f.Tokens[i : i+minTokens])
			if _, ok := index[key]; !ok {
				keys = append(keys, key)
			}
			index[key] = append(index[key], tokenLoc{fi, i})
		}
	}

	type group struct {
		first  tokenLoc
		length int
	}
	groups := make(map[group][]tokenLoc)
	var order []group

	for _, key := range keys {
		locs := index[key]
		if len(locs) < 2 {
			continue
		}
		first := locs[0]
		for _, other := range locs[1:] {
			if extendsBackwards(files, first, other) {
				continue
			}
			n := matchLength(files, first, other)
			if n < minTokens {
				continue
			}
			g := group{first, n}
			if _, ok := groups[g]; !ok {
				order = append(order, g)
			}
			groups[g] = append(groups[g], other)
		}
	}

	out := make([]Duplication, 0, len(order))
	for _, g := range order {
		d := Duplication{Tokens: g.length}
		d.Occurrences = append(d.Occurrences, occurrence(files, g.first, g.length))
		for _, loc := range groups[g] {
			d.Occurrences = append(d.Occurrences, occurrence(files, loc, g.length))
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Tokens > out[j].Tokens })
	return out
}

func windowKey(toks []CPDToken) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Image)
		b.WriteByte(0)
	}
	return b.String()
}

func imageAt(files []CPDFile, loc tokenLoc) (string, bool) {
	toks := files[loc.file].Tokens
	if loc.index < 0 || loc.index >= len(toks) {
		return "", false
	}
	return toks[loc.index].Image, true
}

// extendsBackwards reports whether the match at a and b is the tail of a
// longer match that starts earlier.
func extendsBackwards(files []CPDFile, a, b tokenLoc) bool {
	x, ok1 := imageAt(files, tokenLoc{a.file, a.index - 1})
	y, ok2 := imageAt(files, tokenLoc{b.file, b.index - 1})
	return ok1 && ok2 && x == y
}

// matchLength returns the number of identical images from a and b. Two
// copies in the same file never overlap.
func matchLength(files []CPDFile, a, b tokenLoc) int {
	limit := -1
	if a.file == b.file {
		limit = b.index - a.index
	}
	n := 0
	for {
		if n == limit {
			return n
		}
		x, ok1 := imageAt(files, tokenLoc{a.file, a.index + n})
		y, ok2 := imageAt(files, tokenLoc{b.file, b.index + n})
		if !ok1 || !ok2 || x != y {
			return n
		}
		n++
	}
}

func occurrence(files []CPDFile, loc tokenLoc, length int) Occurrence {
	toks := files[loc.file].Tokens
	return Occurrence{
		Path:  files[loc.file].Path,
		Start: toks[loc.index].Span.Start,
		End:   toks[loc.index+length-1].Span.End,
	}
}
