package search

import "strings"

// Markers of the query mini-language. These are owned by this package;
// transport layers pass raw tokens through untouched.
const (
	excludeMarker     = "-"
	exactMarker       = "="
	alternativeMarker = "/"
)

// TermMode says whether a term narrows the candidate set or carves from it.
type TermMode string

const (
	ModeInclude TermMode = "INCLUDE"
	ModeExclude TermMode = "EXCLUDE"
)

// MatchKind distinguishes case-insensitive substring matching from literal,
// case-sensitive containment.
type MatchKind string

const (
	MatchFuzzy MatchKind = "FUZZY"
	MatchExact MatchKind = "EXACT"
)

// Term is one parsed unit of search input. When Alternatives is non-empty the
// term is an OR-group and Text holds the first alternative; a document matches
// if any alternative matches.
type Term struct {
	Text         string
	Mode         TermMode
	Kind         MatchKind
	Alternatives []string
}

// alternatives returns the strings to match against: the OR-group members,
// or the term text itself for a plain term.
func (t Term) alternatives() []string {
	if len(t.Alternatives) > 0 {
		return t.Alternatives
	}
	return []string{t.Text}
}

// Parse turns raw user tokens into typed terms, preserving input order.
//
// Per token: a leading "-" flips the term to Exclude and is stripped; a
// leading "=" (checked after the exclusion marker) makes the term Exact and
// is stripped with no further trimming, so exact terms keep their whitespace
// exactly as typed. Fuzzy tokens are trimmed, and a "/" inside one splits it
// into OR-group alternatives (empty pieces dropped). Tokens that end up empty
// contribute no term.
func Parse(rawTerms []string) []Term {
	terms := make([]Term, 0, len(rawTerms))

	for _, raw := range rawTerms {
		mode := ModeInclude
		if strings.HasPrefix(raw, excludeMarker) {
			mode = ModeExclude
			raw = strings.TrimPrefix(raw, excludeMarker)
		}

		if strings.HasPrefix(raw, exactMarker) {
			// Not trimmed: exact means literal fidelity, whitespace included.
			text := strings.TrimPrefix(raw, exactMarker)
			if strings.TrimSpace(text) == "" {
				continue
			}
			terms = append(terms, Term{Text: text, Mode: mode, Kind: MatchExact})
			continue
		}

		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		if strings.Contains(text, alternativeMarker) {
			alts := make([]string, 0, 2)
			for _, piece := range strings.Split(text, alternativeMarker) {
				piece = strings.TrimSpace(piece)
				if piece != "" {
					alts = append(alts, piece)
				}
			}
			switch len(alts) {
			case 0:
				continue
			case 1:
				// "a/" degrades to a plain fuzzy term.
				terms = append(terms, Term{Text: alts[0], Mode: mode, Kind: MatchFuzzy})
			default:
				terms = append(terms, Term{Text: alts[0], Mode: mode, Kind: MatchFuzzy, Alternatives: alts})
			}
			continue
		}

		terms = append(terms, Term{Text: text, Mode: mode, Kind: MatchFuzzy})
	}

	return terms
}
