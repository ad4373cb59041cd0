// Package sidebar holds the table-of-contents entry list: the static
// "Show All" entry followed by one entry per heading, plus the active
// marker and search-driven visibility.
package sidebar

import "strings"

// ShowAllLabel is the text of the reset entry.
const ShowAllLabel = "Show All"

// CSS classes carried by entries.
const (
	ClassShowAll = "sidebar-show-all"
	ClassBlock   = "block"
	ClassLevel2  = "level-2"
	ClassActive  = "active"
)

// Entry is one navigational link in the sidebar.
type Entry struct {
	Href    string `json:"href"`
	Label   string `json:"label"`
	Level   int    `json:"level,omitempty"`
	ShowAll bool   `json:"show_all,omitempty"`
	Hidden  bool   `json:"hidden,omitempty"`
	Active  bool   `json:"active,omitempty"`
}

// TargetID returns the heading identifier the entry points at, or "" for
// the "Show All" entry.
func (e Entry) TargetID() string {
	if e.ShowAll {
		return ""
	}
	return strings.TrimPrefix(e.Href, "#")
}

// Classes returns the entry's class list in the order the page renders it.
func (e Entry) Classes() []string {
	var classes []string
	if e.ShowAll {
		classes = append(classes, ClassShowAll)
	} else {
		classes = append(classes, ClassBlock)
		if e.Level == 2 {
			classes = append(classes, ClassLevel2)
		}
	}
	if e.Active {
		classes = append(classes, ClassActive)
	}
	return classes
}

// Sidebar is an ordered entry list. It is not safe for concurrent use;
// the navigator serializes access.
type Sidebar struct {
	entries []Entry
}

// Reset discards every entry.
func (s *Sidebar) Reset() {
	s.entries = nil
}

// AppendShowAll adds the static reset entry.
func (s *Sidebar) AppendShowAll() {
	s.entries = append(s.entries, Entry{Href: "#", Label: ShowAllLabel, ShowAll: true})
}

// Append adds an entry linking to the heading with the given id.
func (s *Sidebar) Append(id, label string, level int) {
	s.entries = append(s.entries, Entry{Href: "#" + id, Label: label, Level: level})
}

// Entries returns a copy of the entry list.
func (s *Sidebar) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// SetActive moves the active marker to the entry linking to id. An empty
// id, or one without an entry, leaves no entry active.
func (s *Sidebar) SetActive(id string) {
	for i := range s.entries {
		s.entries[i].Active = false
	}
	if id == "" {
		return
	}
	href := "#" + id
	for i := range s.entries {
		if !s.entries[i].ShowAll && s.entries[i].Href == href {
			s.entries[i].Active = true
			return
		}
	}
}

// Active returns the id of the active entry, or "".
func (s *Sidebar) Active() string {
	for _, e := range s.entries {
		if e.Active {
			return e.TargetID()
		}
	}
	return ""
}
