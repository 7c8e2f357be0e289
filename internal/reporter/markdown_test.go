package reporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/batch"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/testutil"
)

func TestMarkdownReporter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownReporter(&buf).Report(sampleOutcomes(), ReportMetadata{}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"**4 issues** across 4 maps, 1 failed to load",
		"### `Map0002.lmu (Forest)`",
		"| # | Rule | Location | Issue |",
		"| 1 | 2kki/weather-parity | EV0003 (X010, Y007) P02 | ❌ V0042 is not changed after changing the weather. |",
		"| 2 | 2kki/tissue-events | - | ⚠️ Does not have tissue events |",
		"| 4 | 2kki/instant-scroll | EV0001 (X002, Y003) P01 I00009 | ⚠️ CEV0294 should be used for instant scroll |",
		"### `Map0003.lmu`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Map0001.lmu") {
		t.Error("clean maps should not get a table")
	}

	testutil.MatchTextSnapshot(t, "md", out)
}

func TestMarkdownReporter_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	outcomes := []batch.Outcome{{ID: 1, Report: &rules.Report{Results: []rules.Result{{Index: 1}}}}}
	if err := NewMarkdownReporter(&buf).Report(outcomes, ReportMetadata{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "**No issues found**\n" {
		t.Errorf("got %q", got)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	if got := escapeMarkdown("a|b\nc\r"); got != `a\|b c` {
		t.Errorf("escapeMarkdown() = %q", got)
	}
}
