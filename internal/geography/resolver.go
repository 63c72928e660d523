package geography

import (
	"sort"
	"strings"
)

// stripRules removes trailing locative/descriptive suffixes and
// predicates that prose generation tends to append to place names
// ("王都の入り口" → "王都"). Ordered, first match wins, applied at most
// once per normalization. Longer variants of a suffix must precede
// shorter ones.
var stripRules = []string{
	"の入り口",
	"の入口",
	"の出入り口",
	"の周辺",
	"のあたり",
	"の辺り",
	"の近く",
	"のそば",
	"の中心",
	"の中",
	"の外れ",
	"の外",
	"の前",
	"の奥",
	"にいる",
	"にある",
	"である",
	"です",
	"へ向かう道",
}

// Normalize trims outer whitespace, removes internal whitespace
// (including full-width spaces) and strips the first matching trailing
// suffix from the rule table. Normalizing an already-normalized name is
// a no-op.
func Normalize(raw string) string {
	s := strings.Join(strings.Fields(raw), "")
	for _, suffix := range stripRules {
		if strings.HasSuffix(s, suffix) && len(s) > len(suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	return s
}

// descriptiveSuffixes strip a trailing generic-scene phrase to extract
// a probable subject noun ("火を囲んでいる場所" → "火").
var descriptiveSuffixes = []string{
	"を囲んでいる場所",
	"を囲む場所",
	"のまわり",
	"の周り",
	"がある場所",
	"のいる場所",
}

// descriptiveKeywords flag names that are themselves scene descriptions
// rather than proper place names.
var descriptiveKeywords = []string{
	"キャンプファイヤー",
	"焚き火",
	"焚火",
	"野営地",
	"露営地",
	"野宿",
}

// DetectDescriptive reports whether a (normalized) name describes a
// generic scene, and the subject noun to match against the map instead.
// The flag lowers validation severity; it never suppresses resolution.
func DetectDescriptive(name string) (subject string, ok bool) {
	for _, suffix := range descriptiveSuffixes {
		if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
			return strings.TrimSuffix(name, suffix), true
		}
	}
	for _, kw := range descriptiveKeywords {
		if strings.Contains(name, kw) {
			return name, true
		}
	}
	return "", false
}

// Resolve matches a free-text location name against the snapshot.
// Matching order: exact raw name, exact normalized name, then partial
// (either side contains the other), with partial ties broken by
// shortest candidate name and then declaration order. Absence is a
// normal outcome, not an error.
func (ix *Index) Resolve(raw string) (ResolvedLocation, bool) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return ResolvedLocation{}, false
	}

	for _, e := range ix.entries {
		if e.loc.Name == query {
			return e.loc, true
		}
	}

	norm := Normalize(query)
	if subject, descriptive := DetectDescriptive(norm); descriptive {
		if loc, ok := ix.matchNormalized(Normalize(subject)); ok {
			loc.Descriptive = true
			return loc, true
		}
		return ResolvedLocation{}, false
	}

	return ix.matchNormalized(norm)
}

// matchNormalized runs the exact-normalized and partial passes.
func (ix *Index) matchNormalized(norm string) (ResolvedLocation, bool) {
	for _, e := range ix.entries {
		if e.normName == norm {
			return e.loc, true
		}
	}

	best := -1
	for i, e := range ix.entries {
		if e.normName == "" {
			continue
		}
		if !strings.Contains(e.normName, norm) && !strings.Contains(norm, e.normName) {
			continue
		}
		if best < 0 || len(e.normName) < len(ix.entries[best].normName) {
			best = i
		}
	}
	if best >= 0 {
		return ix.entries[best].loc, true
	}
	return ResolvedLocation{}, false
}

// Suggest ranks all location names by similarity to the query and
// returns up to limit of them, best first. Substring containment
// outranks any amount of prefix/character overlap; within each band
// the ranking is monotonic in overlap length.
func (ix *Index) Suggest(raw string, limit int) []string {
	norm := Normalize(strings.TrimSpace(raw))
	if norm == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score int
		order int
	}
	var ranked []scored
	for _, e := range ix.entries {
		s := similarity(norm, e.normName)
		if s <= 0 {
			continue
		}
		ranked = append(ranked, scored{name: e.loc.Name, score: s, order: e.order})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.name
	}
	return names
}

// containmentBase puts any containment match strictly above any
// overlap-only match, regardless of overlap length.
const containmentBase = 1 << 16

// similarity scores a candidate against a normalized query. Zero means
// no relation worth suggesting.
func similarity(query, candidate string) int {
	if candidate == "" {
		return 0
	}
	if query == candidate {
		return containmentBase * 2
	}
	if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
		// Prefer the shorter containing name.
		score := containmentBase - len(candidate)
		if score < 1 {
			score = 1
		}
		return score
	}

	qr, cr := []rune(query), []rune(candidate)
	prefix := 0
	for prefix < len(qr) && prefix < len(cr) && qr[prefix] == cr[prefix] {
		prefix++
	}

	seen := make(map[rune]bool, len(cr))
	for _, r := range cr {
		seen[r] = true
	}
	shared := 0
	for _, r := range qr {
		if seen[r] {
			shared++
		}
	}

	return prefix*8 + shared
}
