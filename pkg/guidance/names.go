package guidance

import (
	"strings"
)

// SuffixTable. street-name suffix words that never warrant a turn
// announcement on their own ("Main Street" -> "Main St").
type SuffixTable struct {
	suffixes map[string]struct{}
}

func NewSuffixTable(words []string) *SuffixTable {
	st := &SuffixTable{suffixes: make(map[string]struct{}, len(words))}
	for _, w := range words {
		st.suffixes[strings.ToLower(w)] = struct{}{}
	}
	return st
}

func DefaultSuffixTable() *SuffixTable {
	return NewSuffixTable([]string{
		"street", "st", "road", "rd", "avenue", "ave", "drive", "dr",
		"lane", "ln", "boulevard", "blvd", "way", "court", "ct",
		"place", "pl", "terrace", "ter", "jalan", "jl",
		"north", "south", "east", "west", "n", "s", "e", "w",
	})
}

func (st *SuffixTable) IsSuffix(word string) bool {
	_, ok := st.suffixes[strings.ToLower(word)]
	return ok
}

/*
RequiresNameAnnounced. false iff the two name ids denote the same
street up to suffix-table equivalence. guidance should not announce
"Main Street" -> "Main St", but must announce a real name change.
*/
func RequiresNameAnnounced(fromID, toID uint32, names NameTable, suffixes *SuffixTable) bool {
	if fromID == toID {
		return false
	}

	from := names.GetStr(fromID)
	to := names.GetStr(toID)
	if from == "" && to == "" {
		return false
	}

	return normalizeName(from, suffixes) != normalizeName(to, suffixes)
}

// normalizeName. lowercase the name and drop suffix words. if that
// leaves nothing (a name made of suffixes only), keep the lowercased
// original so "West Street" and "North Street" stay distinct.
func normalizeName(name string, suffixes *SuffixTable) string {
	lower := strings.ToLower(name)
	fields := strings.Fields(lower)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if suffixes.IsSuffix(strings.Trim(f, ".")) {
			continue
		}
		kept = append(kept, f)
	}
	if len(kept) == 0 {
		return lower
	}
	return strings.Join(kept, " ")
}
