package search

import (
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// Flatten renders one precedent row as the text unit the index tokenizes:
// every searchable field joined into a single whitespace-normalized line.
// Numeric fields (importance, citation counts) deliberately stay out; they
// influence ranking as tie-breaks, not as match material.
func Flatten(p domain.Precedent) string {
	parts := make([]string, 0, 7)
	for _, s := range []string{
		p.CaseName,
		p.Citation,
		p.LegalIssue,
		p.Holding,
		strings.Join(SplitKeywords(p.Keywords), " "),
		p.PracticeArea,
		p.Jurisdiction,
	} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return normalizeWhitespace(strings.Join(parts, " "))
}

// SplitKeywords splits a stored keyword string on commas and semicolons,
// trimming each entry and dropping blanks. Both separators appear in seeded
// and imported library data.
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// normalizeWhitespace collapses runs of spaces, tabs and carriage returns to
// a single space so token boundaries are stable across data sources.
func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
