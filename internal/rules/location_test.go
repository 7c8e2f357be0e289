package rules

import (
	"testing"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
)

func testEvent() *lcf.Event {
	return &lcf.Event{
		ID: 7,
		X:  12,
		Y:  3,
		Pages: []lcf.Page{
			{Commands: []lcf.Command{{Code: lcf.OpComment}, {Code: lcf.OpEnd}}},
			{},
		},
	}
}

func TestLocation_String(t *testing.T) {
	ev := testEvent()
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{"event", EventLocation(ev), "EV0007 (X012, Y003)"},
		{"page", PageLocation(ev, 1), "EV0007 (X012, Y003) P02"},
		{"command", CommandLocation(ev, 0, 0), "EV0007 (X012, Y003) P01 I00001"},
		{"command without page", &Location{EventID: 1, Command: 3}, "EV0001 (X000, Y000)"},
		{"wide", &Location{EventID: 12345, X: 1000, Y: 1, Page: 100, Command: 123456}, "EV12345 (X1000, Y001) P100 I123456"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.loc.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLocation_Resolves(t *testing.T) {
	ev := testEvent()
	doc := &lcf.Document{Events: []lcf.Event{*ev}}

	tests := []struct {
		name string
		loc  *Location
		want bool
	}{
		{"event", EventLocation(ev), true},
		{"page", PageLocation(ev, 1), true},
		{"command", CommandLocation(ev, 0, 1), true},
		{"missing event", &Location{EventID: 8, X: 12, Y: 3}, false},
		{"wrong position", &Location{EventID: 7, X: 1, Y: 3}, false},
		{"page out of range", PageLocation(ev, 2), false},
		{"command out of range", CommandLocation(ev, 0, 2), false},
		{"command on empty page", CommandLocation(ev, 1, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.loc.Resolves(doc); got != tc.want {
				t.Errorf("Resolves() = %v, want %v", got, tc.want)
			}
		})
	}
}
