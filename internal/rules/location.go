package rules

import (
	"fmt"
	"strings"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
)

// Location addresses a finding inside a map: an event, optionally one of its
// pages, and optionally a command of that page.
//
// Page and Command are 1-based as shown to users; 0 means absent. A Command
// is only meaningful together with a Page.
type Location struct {
	EventID int `json:"event"`
	X       int `json:"x"`
	Y       int `json:"y"`
	Page    int `json:"page,omitempty"`
	Command int `json:"command,omitempty"`
}

// EventLocation anchors a finding to a whole event.
func EventLocation(ev *lcf.Event) *Location {
	return &Location{EventID: ev.ID, X: ev.X, Y: ev.Y}
}

// PageLocation anchors a finding to a page. pageIndex is 0-based.
func PageLocation(ev *lcf.Event, pageIndex int) *Location {
	loc := EventLocation(ev)
	loc.Page = pageIndex + 1
	return loc
}

// CommandLocation anchors a finding to a single command. Both indexes are
// 0-based.
func CommandLocation(ev *lcf.Event, pageIndex, commandIndex int) *Location {
	loc := PageLocation(ev, pageIndex)
	loc.Command = commandIndex + 1
	return loc
}

// HasPage reports whether the location names a page.
func (l Location) HasPage() bool {
	return l.Page > 0
}

// HasCommand reports whether the location names a command.
func (l Location) HasCommand() bool {
	return l.Page > 0 && l.Command > 0
}

// String renders the location as EV0001 (X002, Y003) P04 I00005.
func (l Location) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "EV%04d (X%03d, Y%03d)", l.EventID, l.X, l.Y)
	if l.HasPage() {
		fmt.Fprintf(&b, " P%02d", l.Page)
		if l.HasCommand() {
			fmt.Fprintf(&b, " I%05d", l.Command)
		}
	}
	return b.String()
}

// Resolves reports whether the location points at an event, page and
// command that exist in doc.
func (l Location) Resolves(doc *lcf.Document) bool {
	ev := doc.EventByID(l.EventID)
	if ev == nil || ev.X != l.X || ev.Y != l.Y {
		return false
	}
	if !l.HasPage() {
		return l.Command == 0
	}
	if l.Page > len(ev.Pages) {
		return false
	}
	if l.Command == 0 {
		return true
	}
	return l.Command <= len(ev.Pages[l.Page-1].Commands)
}
