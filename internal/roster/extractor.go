// Package roster extracts chair "role(name)" tokens from the free-text
// chair column and builds deduplicated rosters per grouping key.
package roster

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches one "role(name)" token: a role made of Hangul with
// optional slashes and spacing (co-roles like "의장/부의장" appear), followed
// by a parenthesized name of 2 to 4 Hangul syllables.
const tokenPattern = `[가-힣][가-힣/\s]*\([가-힣]{2,4}\)`

// Extractor parses "role(name)" tokens out of semi-structured chair text.
type Extractor struct {
	token *regexp.Regexp
}

// NewExtractor creates an extractor with the standard token pattern.
func NewExtractor() *Extractor {
	return &Extractor{token: regexp.MustCompile(tokenPattern)}
}

// Tokens returns the deduplicated, sorted "role(name)" tokens found in the
// text. Deduplication is exact: tokens differing in case or internal
// whitespace stay distinct. Text without a parenthesized name yields nothing.
func (e *Extractor) Tokens(text string) []string {
	seen := make(map[string]bool)
	for _, match := range e.token.FindAllString(text, -1) {
		token := strings.TrimSpace(match)
		if token != "" {
			seen[token] = true
		}
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
