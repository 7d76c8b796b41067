// Package search ranks precedents against free-text queries with an
// in-memory index. The index is a startup snapshot: built once from the
// precedent library, immutable afterwards, and therefore safe for
// concurrent readers without locking. Scoring is Jaccard similarity over
// token sets, which is deterministic, cheap, and good enough to surface
// the handful of precedents the research agents weave into their analysis.
// The package does no logging of its own.
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lexcraft/go-legal-backend/internal/domain"
)

// Result is a ranked precedent with its similarity score.
type Result struct {
	Precedent domain.Precedent
	Score     float64
}

// Index is the minimal interface implemented by precedent indices.
type Index interface {
	TopK(query string, k int) []Result
}

// Option configures index construction.
type Option func(*config)

type config struct {
	stopwords map[string]struct{}
	maxDocs   int
}

func defaultConfig() config {
	return config{}
}

// WithStopwords excludes the given words from tokenization, in both indexed
// text and queries. Blank entries are ignored; an effectively empty list is
// a no-op.
func WithStopwords(words []string) Option {
	return func(c *config) {
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
				m[w] = struct{}{}
			}
		}
		if len(m) > 0 {
			c.stopwords = m
		}
	}
}

// WithMaxDocs caps how many precedents are indexed. Non-positive values are
// ignored.
func WithMaxDocs(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDocs = n
		}
	}
}

// doc is one indexed precedent with its precomputed token set.
type doc struct {
	precedent domain.Precedent
	tokens    map[string]struct{}
	tLen      int
}

type index struct {
	cfg  config
	docs []doc
}

// NewIndex builds an Index from precedent rows. Rows whose searchable text
// tokenizes to nothing are skipped; the rest are held verbatim so results
// can be returned without a database round-trip.
func NewIndex(precedents []domain.Precedent, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	docs := make([]doc, 0, len(precedents))
	for _, p := range precedents {
		toks := tokenize(Flatten(p), cfg.stopwords)
		if len(toks) == 0 {
			continue
		}
		docs = append(docs, doc{precedent: p, tokens: toks, tLen: len(toks)})
		if cfg.maxDocs > 0 && len(docs) >= cfg.maxDocs {
			break
		}
	}
	return &index{cfg: cfg, docs: docs}
}

// TopK returns up to k best-matching precedents by Jaccard similarity:
// |Q ∩ P| / |Q ∪ P| over token sets. k <= 0 defaults to 3. Ties break on
// importance score (higher first) and then ID, so equal-scoring queries
// always rank the same way. A blank or fully-stopworded query matches
// nothing.
func (i *index) TopK(q string, k int) []Result {
	if len(i.docs) == 0 || strings.TrimSpace(q) == "" {
		return nil
	}
	if k <= 0 {
		k = 3
	}

	qTokens := tokenize(q, i.cfg.stopwords)
	if len(qTokens) == 0 {
		return nil
	}

	matched := make([]Result, 0, min(k*4, len(i.docs)))
	for _, d := range i.docs {
		shared := overlap(qTokens, d.tokens)
		if shared == 0 {
			continue
		}
		union := float64(len(qTokens) + d.tLen - shared)
		if union <= 0 {
			continue
		}
		matched = append(matched, Result{
			Precedent: d.precedent,
			Score:     float64(shared) / union,
		})
	}
	if len(matched) == 0 {
		return nil
	}

	sort.SliceStable(matched, func(a, b int) bool {
		ra, rb := matched[a], matched[b]
		if ra.Score != rb.Score {
			return ra.Score > rb.Score
		}
		if ra.Precedent.ImportanceScore != rb.Precedent.ImportanceScore {
			return ra.Precedent.ImportanceScore > rb.Precedent.ImportanceScore
		}
		return ra.Precedent.ID < rb.Precedent.ID
	})

	return matched[:min(k, len(matched))]
}

// wordRE matches letter runs with optional trailing digits. Punctuation and
// standalone numbers drop out, which keeps citation noise ("(2014)", "573")
// from dominating the token sets.
var wordRE = regexp.MustCompile(`\p{L}+\p{N}*`)

// tokenize lowercases s and returns its unique tokens minus stopwords.
func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := wordRE.FindAllString(strings.ToLower(s), -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

// overlap counts tokens present in both sets, iterating the smaller one.
func overlap(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}
