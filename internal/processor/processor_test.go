package processor

import (
	"testing"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/config"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// mockProcessor is a test processor that filters based on a predicate.
type mockProcessor struct {
	name   string
	filter func(rules.Result) bool
}

func (p *mockProcessor) Name() string { return p.name }

func (p *mockProcessor) Process(results []rules.Result, _ *Context) []rules.Result {
	return filterResults(results, p.filter)
}

func result(index int, code string, diags ...rules.Diagnostic) rules.Result {
	return rules.Result{
		Index:       index,
		Rule:        rules.RuleMetadata{Code: code},
		Diagnostics: diags,
	}
}

func sampleResults() []rules.Result {
	loc := &rules.Location{EventID: 1}
	return []rules.Result{
		result(1, "2kki/a"),
		result(2, "2kki/b", rules.Warning(loc, "w1")),
		result(3, "2kki/c", rules.Warning(loc, "w2"), rules.Error(loc, "e1")),
		result(4, "2kki/d", rules.Error(nil, "e2")),
	}
}

func TestChain(t *testing.T) {
	chain := NewChain(
		&mockProcessor{name: "drop-odd", filter: func(r rules.Result) bool { return r.Index%2 == 0 }},
		&mockProcessor{name: "drop-2", filter: func(r rules.Result) bool { return r.Index != 2 }},
	)

	got := chain.Process(sampleResults(), NewContext(config.Default()))
	if len(got) != 1 || got[0].Index != 4 {
		t.Errorf("Process() = %+v, want only index 4", got)
	}
	if names := chain.Names(); len(names) != 2 || names[0] != "drop-odd" {
		t.Errorf("Names() = %v", names)
	}
}

func TestLevelFloor(t *testing.T) {
	tests := []struct {
		floor       Floor
		wantIndexes []int
		wantDiags   []int
	}{
		{FloorAll, []int{1, 2, 3, 4}, []int{0, 1, 2, 1}},
		{FloorWarn, []int{2, 3, 4}, []int{1, 2, 1}},
		{FloorError, []int{3, 4}, []int{1, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.floor.String(), func(t *testing.T) {
			got := NewLevelFloor(tc.floor).Process(sampleResults(), nil)
			if len(got) != len(tc.wantIndexes) {
				t.Fatalf("got %d results, want %d", len(got), len(tc.wantIndexes))
			}
			for i, r := range got {
				if r.Index != tc.wantIndexes[i] {
					t.Errorf("result[%d].Index = %d, want %d", i, r.Index, tc.wantIndexes[i])
				}
				if len(r.Diagnostics) != tc.wantDiags[i] {
					t.Errorf("result[%d] has %d diagnostics, want %d", i, len(r.Diagnostics), tc.wantDiags[i])
				}
			}
		})
	}
}

func TestLevelFloor_DoesNotMutateInput(t *testing.T) {
	in := sampleResults()
	NewLevelFloor(FloorError).Process(in, nil)
	if len(in[2].Diagnostics) != 2 {
		t.Errorf("input result modified: %d diagnostics", len(in[2].Diagnostics))
	}
}

func TestParseFloor(t *testing.T) {
	tests := []struct {
		in      string
		want    Floor
		wantErr bool
	}{
		{"all", FloorAll, false},
		{"", FloorAll, false},
		{"warn", FloorWarn, false},
		{"Warning", FloorWarn, false},
		{"error", FloorError, false},
		{"fatal", FloorAll, true},
	}
	for _, tc := range tests {
		got, err := ParseFloor(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFloor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFloor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSeverityOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.Set("2kki/b", config.RuleConfig{Severity: "error"})
	cfg.Rules.Set("2kki/c", config.RuleConfig{Severity: "warning"})
	cfg.Rules.Set("2kki/d", config.RuleConfig{Severity: "bogus"})

	in := sampleResults()
	got := NewSeverityOverride().Process(in, NewContext(cfg))

	if got[1].Diagnostics[0].Level != rules.LevelError {
		t.Error("2kki/b should be upgraded to error")
	}
	for _, d := range got[2].Diagnostics {
		if d.Level != rules.LevelWarning {
			t.Error("2kki/c should be downgraded to warning")
		}
	}
	if got[3].Diagnostics[0].Level != rules.LevelError {
		t.Error("invalid override should keep the original level")
	}
	if in[1].Diagnostics[0].Level != rules.LevelWarning {
		t.Error("input diagnostics were modified")
	}
}

func TestSeverityOverride_NoConfig(t *testing.T) {
	in := sampleResults()
	got := NewSeverityOverride().Process(in, nil)
	if len(got) != len(in) {
		t.Errorf("got %d results, want %d", len(got), len(in))
	}
}

func TestSorting(t *testing.T) {
	in := []rules.Result{result(3, "c"), result(1, "a"), result(2, "b")}
	got := NewSorting().Process(in, nil)
	for i, r := range got {
		if r.Index != i+1 {
			t.Errorf("result[%d].Index = %d, want %d", i, r.Index, i+1)
		}
	}
	if in[0].Index != 3 {
		t.Error("input slice was reordered")
	}
}
