package toolbar

import "strings"

// HelpRow is one labeled key-row in the help overlay, derived from
// the live keybinding map so the displayed keys always match the
// user's configuration.
type HelpRow struct {
	ActionLabel string
	KeyDisplay  string
}

// HelpSection groups rows under a titled heading (e.g. "Drawing",
// "Boards", "Capture"); sections for features the current session
// lacks (frozen mode, boards, capture) are omitted by the caller
// before FilterSections is invoked.
type HelpSection struct {
	Title string
	Rows  []HelpRow
}

// FilterSections implements the help overlay's search box: when query
// is empty every section passes through unchanged; otherwise a
// section whose title matches keeps all its rows, and any other
// section is reduced to just the rows whose action label or key
// display contains query (ASCII case-insensitive).
func FilterSections(sections []HelpSection, query string) []HelpSection {
	if query == "" {
		return sections
	}
	q := strings.ToLower(query)
	var out []HelpSection
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s.Title), q) {
			out = append(out, s)
			continue
		}
		var rows []HelpRow
		for _, r := range s.Rows {
			if strings.Contains(strings.ToLower(r.ActionLabel), q) || strings.Contains(strings.ToLower(r.KeyDisplay), q) {
				rows = append(rows, r)
			}
		}
		if len(rows) > 0 {
			out = append(out, HelpSection{Title: s.Title, Rows: rows})
		}
	}
	return out
}
