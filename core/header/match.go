package header

import "roster-manager/core/schema"

// Rule identifies which resolution rule produced a match.
type Rule string

const (
	RuleNone       Rule = "none"
	RuleExact      Rule = "exact"
	RuleAlias      Rule = "alias"
	RuleNormalized Rule = "normalized"
	RuleFuzzy      Rule = "fuzzy"
)

// Resolution is the outcome of matching one header against a schema.
type Resolution struct {
	// Key is the canonical key, empty when Rule is RuleNone.
	Key string `json:"key,omitempty"`
	// Rule is the rule that fired.
	Rule Rule `json:"rule"`
	// Distance is the edit distance for fuzzy matches.
	Distance int `json:"distance,omitempty"`
}

// Matched reports whether the header resolved to a key.
func (r Resolution) Matched() bool {
	return r.Rule != RuleNone
}

// candidate is a normalized key or alias together with the key it resolves to.
type candidate struct {
	key        string
	normalized string
}

// Match resolves header to a canonical key of s.
func Match(h string, s *schema.Schema) (string, bool) {
	r := Resolve(h, s)
	return r.Key, r.Matched()
}

// Resolve resolves header against s and reports which rule fired.
// When several candidates tie, the lexicographically first canonical key wins.
func Resolve(h string, s *schema.Schema) Resolution {
	if s.HasKey(h) {
		return Resolution{Key: h, Rule: RuleExact}
	}
	if k, ok := s.Alias(h); ok {
		return Resolution{Key: k, Rule: RuleAlias}
	}

	n := Normalize(h)
	if n == "" {
		return Resolution{Rule: RuleNone}
	}
	cands := candidates(s)

	best := ""
	for _, c := range cands {
		if c.normalized == n && (best == "" || c.key < best) {
			best = c.key
		}
	}
	if best != "" {
		return Resolution{Key: best, Rule: RuleNormalized}
	}

	bestDist := -1
	for _, c := range cands {
		d := Distance(n, c.normalized)
		if d > MaxDistance(c.normalized) {
			continue
		}
		if bestDist < 0 || d < bestDist || (d == bestDist && c.key < best) {
			best, bestDist = c.key, d
		}
	}
	if bestDist < 0 {
		return Resolution{Rule: RuleNone}
	}
	return Resolution{Key: best, Rule: RuleFuzzy, Distance: bestDist}
}

func candidates(s *schema.Schema) []candidate {
	keys := s.Keys()
	aliases := s.Aliases()
	out := make([]candidate, 0, len(keys)+len(aliases))
	for _, k := range keys {
		out = append(out, candidate{key: k, normalized: Normalize(k)})
	}
	for _, a := range aliases {
		k, _ := s.Alias(a)
		out = append(out, candidate{key: k, normalized: Normalize(a)})
	}
	return out
}
