package reporter

import (
	"bytes"
	"strings"
	"testing"
)

func TestGitHubActionsReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewGitHubActionsReporter(&buf).Report(sampleOutcomes(), ReportMetadata{}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		"::error file=game/Map0003.lmu,title=load-error::Invalid map file: invalid map file game/Map0003.lmu: offset 11: bad signature",
		"::error file=game/Map0002.lmu,title=2kki/weather-parity::EV0003 (X010, Y007) P02: V0042 is not changed after changing the weather.",
		"::warning file=game/Map0002.lmu,title=2kki/tissue-events::Does not have tissue events",
		"::warning file=game/Map0002.lmu,title=2kki/instant-scroll::EV0001 (X002, Y003) P01 I00004: CEV0294 should be used for instant scroll",
		"::warning file=game/Map0002.lmu,title=2kki/instant-scroll::EV0001 (X002, Y003) P01 I00009: CEV0294 should be used for instant scroll",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d annotations, got %d:\n%s", len(want), len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d:\ngot:  %s\nwant: %s", i, lines[i], want[i])
		}
	}
}

func TestEscapeGitHub(t *testing.T) {
	if got := escapeGitHubMessage("50%\nnext"); got != "50%25%0Anext" {
		t.Errorf("escapeGitHubMessage() = %q", got)
	}
	if got := escapeGitHubProperty("a:b,c"); got != "a%3Ab%2Cc" {
		t.Errorf("escapeGitHubProperty() = %q", got)
	}
}
