package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(sampleOutcomes(), ReportMetadata{RulesEnabled: 9}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if len(out.Maps) != 4 {
		t.Fatalf("expected 4 maps, got %d", len(out.Maps))
	}
	if out.RulesEnabled != 9 {
		t.Errorf("rules_enabled = %d", out.RulesEnabled)
	}

	want := struct{ maps, failed, clean, warnings, errors int }{4, 1, 2, 3, 1}
	got := struct{ maps, failed, clean, warnings, errors int }{
		out.Summary.Maps, out.Summary.Failed, out.Summary.Clean, out.Summary.Warnings, out.Summary.Errors,
	}
	if got != want {
		t.Errorf("summary = %+v, want %+v", got, want)
	}

	forest := out.Maps[1]
	if forest.Map != "Map0002.lmu" || forest.ID != 2 || forest.Name != "Forest" {
		t.Errorf("unexpected map header: %+v", forest)
	}
	if len(forest.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(forest.Results))
	}
	weather := forest.Results[0]
	if weather.Index != 1 || weather.Code != "2kki/weather-parity" || weather.Clean {
		t.Errorf("unexpected weather result: %+v", weather)
	}
	if loc := weather.Diagnostics[0].Location; loc == nil || loc.EventID != 3 || loc.Page != 2 {
		t.Errorf("unexpected location: %+v", loc)
	}

	if out.Maps[2].Error == "" {
		t.Error("expected error for Map0003")
	}
	if out.Maps[2].Results == nil {
		t.Error("results should be an empty array, not null")
	}
	if !out.Maps[0].Results[0].Clean {
		t.Error("expected clean result for Map0001")
	}
}

func TestJSONReporter_Snapshot(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(sampleOutcomes(), ReportMetadata{RulesEnabled: 9}); err != nil {
		t.Fatal(err)
	}
	snaps.MatchJSON(t, buf.String())
}

func TestJSONReporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf).Report(nil, ReportMetadata{}); err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	maps, ok := out["maps"].([]any)
	if !ok || len(maps) != 0 {
		t.Errorf("expected empty maps array, got %v", out["maps"])
	}
}
