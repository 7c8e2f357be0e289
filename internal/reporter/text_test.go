package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/testutil"
)

func plainText(t *testing.T, outcomes []batch.Outcome) string {
	t.Helper()
	var buf bytes.Buffer
	noColor := false
	if err := NewTextReporter(&buf, TextOptions{Color: &noColor}).Report(outcomes, ReportMetadata{}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	return buf.String()
}

func TestTextReporter(t *testing.T) {
	got := plainText(t, sampleOutcomes())

	want := strings.Join([]string{
		"Map0001.lmu:",
		"  Parity between weather and V0042",
		"  CEV0294 should be used for instant scroll",
		"Map0002.lmu:",
		"  Parity between weather and V0042: EV0003 (X010, Y007) P02: V0042 is not changed after changing the weather.",
		"  Tissue event validity: Does not have tissue events",
		"  CEV0294 should be used for instant scroll: EV0001 (X002, Y003) P01 I00004",
		"  CEV0294 should be used for instant scroll: EV0001 (X002, Y003) P01 I00009",
		"Map0003.lmu:",
		"  Invalid map file: invalid map file game/Map0003.lmu: offset 11: bad signature",
		"",
	}, "\n")
	if got != want {
		t.Errorf("text output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextReporter_Snapshot(t *testing.T) {
	testutil.MatchTextSnapshot(t, "txt", plainText(t, sampleOutcomes()))
}

func TestTextReporter_SkipsEmptyMaps(t *testing.T) {
	got := plainText(t, []batch.Outcome{{ID: 1, Path: "Map0001.lmu", Report: &rules.Report{}}})
	if got != "" {
		t.Errorf("expected no output for a map with no results, got %q", got)
	}
}

func TestTextReporter_Color(t *testing.T) {
	var buf bytes.Buffer
	color := true
	if err := NewTextReporter(&buf, TextOptions{Color: &color}).Report(sampleOutcomes(), ReportMetadata{}); err != nil {
		t.Fatal(err)
	}
	// Styling never changes the text itself.
	out := buf.String()
	for _, s := range []string{"Map0002.lmu:", "Tissue event validity", "Does not have tissue events", "Invalid map file"} {
		if !strings.Contains(out, s) {
			t.Errorf("colored output missing %q", s)
		}
	}
}
