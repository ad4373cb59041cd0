package sidebar

import "strings"

// Filter shows the entries whose label contains query (case-insensitive)
// and hides the rest. A blank query shows everything. "Show All" is not
// matched; it is hidden while a query is active and shown otherwise.
func (s *Sidebar) Filter(query string) {
	q := normalize(query)
	for i := range s.entries {
		e := &s.entries[i]
		if e.ShowAll {
			e.Hidden = q != ""
			continue
		}
		e.Hidden = !Matches(e.Label, q)
	}
}

// Matches reports whether label satisfies an already-normalized query.
func Matches(label, q string) bool {
	return q == "" || strings.Contains(strings.ToLower(label), q)
}

// Visible returns the entries not hidden by the current filter.
func (s *Sidebar) Visible() []Entry {
	var out []Entry
	for _, e := range s.entries {
		if !e.Hidden {
			out = append(out, e)
		}
	}
	return out
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
