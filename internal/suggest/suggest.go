package suggest

import (
	_ "embed"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/unicode/norm"
)

//go:embed names.txt
var namesData string

// Entry is one row of the suggestion table.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Table is a fixed, read-only species reference list. Handlers receive it
// injected; nothing mutates it after Load.
type Table struct {
	entries []Entry
}

// Load parses the embedded "id,name" list. Malformed lines are skipped.
func Load() *Table {
	t := &Table{}
	for _, line := range strings.Split(namesData, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			continue
		}
		id, err := strconv.Atoi(parts[0])
		if err != nil || id <= 0 {
			continue
		}
		t.entries = append(t.entries, Entry{ID: id, Name: parts[1]})
	}
	return t
}

func (t *Table) Len() int { return len(t.entries) }

// ------------------------------------
// Normalization (diacritics etc — "flabébé" should still match)
// ------------------------------------

func stripDiacritics(s string) string {
	d := norm.NFD.String(s)
	out := make([]rune, 0, len(d))
	for _, r := range d {
		if unicode.IsMark(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = stripDiacritics(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// ------------------------------------
// Ranking: exact > prefix > fuzzy
// ------------------------------------

const fuzzyThreshold = 0.6

type scored struct {
	e     Entry
	score float64
}

// Suggest returns up to limit entries ranked against q. Numeric queries
// match by ID prefix instead of name.
func (t *Table) Suggest(q string, limit int) []Entry {
	if limit <= 0 {
		limit = 8
	}
	nq := normalizeName(q)
	if nq == "" {
		return []Entry{}
	}

	if _, err := strconv.Atoi(nq); err == nil {
		return t.suggestByID(nq, limit)
	}

	var hits []scored
	for _, e := range t.entries {
		name := normalizeName(e.Name)

		switch {
		case name == nq:
			hits = append(hits, scored{e, 2.0})
		case strings.HasPrefix(name, nq):
			// longer queries are stronger prefix evidence
			hits = append(hits, scored{e, 1.0 + float64(len(nq))/float64(len(name))})
		default:
			if sim := levenshtein.Similarity(name, nq, nil); sim >= fuzzyThreshold {
				hits = append(hits, scored{e, sim})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].e.ID < hits[j].e.ID
	})

	out := make([]Entry, 0, limit)
	for _, h := range hits {
		out = append(out, h.e)
		if len(out) >= limit {
			break
		}
	}
	return out
}

func (t *Table) suggestByID(nq string, limit int) []Entry {
	out := []Entry{}
	for _, e := range t.entries {
		if strings.HasPrefix(strconv.Itoa(e.ID), nq) {
			out = append(out, e)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}
