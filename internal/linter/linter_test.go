package linter

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/config"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/processor"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/testutil"
)

// messyMap triggers several rules with both levels.
func messyMap() *lcf.Document {
	return testutil.NewMap().
		Event(1, 3, 4, "door", testutil.Page(
			testutil.Cmd(lcf.OpWeatherEffects, 1, 1),
			testutil.SetVariable(44),
			testutil.Cmd(lcf.OpShowPicture, 1),
			testutil.Cmd(lcf.OpScrollMap, 0, 0, 1, 53),
		)).
		Build()
}

func indexes(report rules.Report) []int {
	out := make([]int, len(report.Results))
	for i, r := range report.Results {
		out[i] = r.Index
	}
	return out
}

func TestLint_DefaultSelection(t *testing.T) {
	report := LintDocument(messyMap(), Options{})

	// Every enabled-by-default rule reports, clean or not; parallel-erase is opt-in.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, indexes(report))

	byIndex := map[int]rules.Result{}
	for _, r := range report.Results {
		byIndex[r.Index] = r
	}
	assert.Len(t, byIndex[1].Diagnostics, 1, "weather parity")
	assert.Len(t, byIndex[2].Diagnostics, 1, "no tissue anchor")
	assert.Len(t, byIndex[3].Diagnostics, 1, "v44 assignment")
	assert.Len(t, byIndex[4].Diagnostics, 1, "instant scroll")
	assert.True(t, byIndex[5].Clean())
	assert.Len(t, byIndex[7].Diagnostics, 1, "show picture")
}

func TestLint_Floor(t *testing.T) {
	warn := LintDocument(messyMap(), Options{Floor: processor.FloorWarn})
	assert.Equal(t, []int{1, 2, 3, 4, 7}, indexes(warn))

	errs := LintDocument(messyMap(), Options{Floor: processor.FloorError})
	assert.Equal(t, []int{1, 3}, indexes(errs))
	for _, r := range errs.Results {
		for _, d := range r.Diagnostics {
			assert.Equal(t, rules.LevelError, d.Level)
		}
	}
}

func TestLint_SuppressionRemovesExactlyThoseEntries(t *testing.T) {
	suppressions := []processor.Suppression{
		processor.NewSuppression(),
		processor.NewSuppression(1),
		processor.NewSuppression(2, 3, 7),
		processor.NewSuppression(9, 42),
	}

	for _, floor := range []processor.Floor{processor.FloorAll, processor.FloorWarn, processor.FloorError} {
		base := LintDocument(messyMap(), Options{Floor: floor})
		for _, s := range suppressions {
			got := LintDocument(messyMap(), Options{Floor: floor, Suppress: s})

			want := slices.DeleteFunc(slices.Clone(base.Results), func(r rules.Result) bool {
				return s.Contains(r.Index)
			})
			assert.Equal(t, want, got.Results, "floor %s suppress %v", floor, s.Indexes())
		}
	}
}

type countingRule struct {
	calls *int
}

func (r countingRule) Metadata() rules.RuleMetadata {
	return rules.RuleMetadata{Code: "test/counting", EnabledByDefault: true}
}

func (r countingRule) Check(rules.LintInput) []rules.Diagnostic {
	*r.calls++
	return nil
}

func TestLint_SuppressedRulesDoNotRun(t *testing.T) {
	calls := 0
	reg := rules.NewRegistry()
	reg.Register(countingRule{calls: &calls})

	report := LintDocument(messyMap(), Options{Registry: reg, Suppress: processor.NewSuppression(1)})
	assert.Empty(t, report.Results)
	assert.Zero(t, calls)

	LintDocument(messyMap(), Options{Registry: reg})
	assert.Equal(t, 1, calls)
}

func TestLint_ConfigSelection(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.Include = []string{"2kki/parallel-erase"}
	cfg.Rules.Exclude = []string{"2kki/show-picture"}
	cfg.Rules.Set("2kki/blue-sign", config.RuleConfig{Severity: "off"})

	l := New(Options{Config: cfg})
	var codes []string
	for _, sel := range l.Rules() {
		codes = append(codes, sel.Rule.Metadata().Code)
	}
	assert.Contains(t, codes, "2kki/parallel-erase")
	assert.NotContains(t, codes, "2kki/show-picture")
	assert.NotContains(t, codes, "2kki/blue-sign")

	// Indexes stay tied to the registry, not to the selection.
	last := l.Rules()[len(l.Rules())-1]
	assert.Equal(t, 10, last.Index)
}

func TestLint_RuleOptionsAndOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.Set("2kki/comment-length", config.RuleConfig{
		Severity: "error",
		Options:  map[string]any{"max-width": 3},
	})

	doc := testutil.NewMap().Event(1, 0, 0, "", testutil.Page(testutil.Comment("abcd"))).Build()
	report := LintDocument(doc, Options{Config: cfg, Floor: processor.FloorError})

	var found *rules.Result
	for i := range report.Results {
		if report.Results[i].Rule.Code == "2kki/comment-length" {
			found = &report.Results[i]
		}
	}
	require.NotNil(t, found)
	require.Len(t, found.Diagnostics, 1)
	assert.Equal(t, rules.LevelError, found.Diagnostics[0].Level)
	assert.Equal(t, "4/3", found.Diagnostics[0].Message)
}

func TestEnabledRuleCodes(t *testing.T) {
	codes := EnabledRuleCodes(config.Default())
	assert.Len(t, codes, 9)
	assert.NotContains(t, codes, "2kki/parallel-erase")

	cfg := config.Default()
	cfg.Rules.Set("2kki/parallel-erase", config.RuleConfig{Severity: "warning"})
	assert.Contains(t, EnabledRuleCodes(cfg), "2kki/parallel-erase")
}

func TestLintFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "Map0001.lmu")
	require.NoError(t, os.WriteFile(good, lcf.MarshalMap(messyMap()), 0o600))

	report, err := LintFile(good, Options{Floor: processor.FloorWarn})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 7}, indexes(*report))

	bad := filepath.Join(dir, "Map0002.lmu")
	require.NoError(t, os.WriteFile(bad, []byte("garbage"), 0o600))
	_, err = LintFile(bad, Options{})
	var decodeErr *lcf.DecodeError
	require.ErrorAs(t, err, &decodeErr)

	_, err = LintFile(filepath.Join(dir, "Map0003.lmu"), Options{})
	require.ErrorIs(t, err, os.ErrNotExist)
}
