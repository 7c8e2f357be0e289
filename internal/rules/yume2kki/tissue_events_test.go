package yume2kki

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/testutil"
)

const anchorName = "ティッシュ++++"

func tissueMap(refs ...int32) *testutil.MapBuilder {
	cmds := make([]lcf.Command, 0, len(refs))
	for _, id := range refs {
		cmds = append(cmds, testutil.CallEvent(id))
	}
	return testutil.NewMap().Event(1, 9, 9, anchorName, testutil.Page(cmds...))
}

func TestTissueEventsRule_Metadata(t *testing.T) {
	t.Parallel()
	snaps.MatchStandaloneJSON(t, NewTissueEventsRule().Metadata())
}

func TestTissueEventsRule_Check(t *testing.T) {
	t.Parallel()
	testutil.RunRuleTests(t, NewTissueEventsRule(), []testutil.RuleTestCase{
		{
			Name:            "no anchor",
			Document:        testutil.NewMap().Event(1, 0, 0, "tis1").Build(),
			WantDiagnostics: 1,
			WantLevels:      []rules.Level{rules.LevelWarning},
			WantLocations:   []string{""},
			WantMessages:    []string{"Does not have tissue events"},
		},
		{
			Name: "all tissues valid",
			Document: tissueMap(2, 3, 4, 5, 6).
				Event(2, 0, 0, "ティッシュ").
				Event(3, 0, 0, "ティッシゥ").
				Event(4, 0, 0, "tis").
				Event(5, 0, 0, "tissue").
				Event(6, 0, 0, "ティッシュ5").
				Build(),
			WantDiagnostics: 0,
		},
		{
			Name: "one missing reference",
			Document: tissueMap(2, 3, 4, 5, 77).
				Event(2, 0, 0, "tis").
				Event(3, 0, 0, "tis").
				Event(4, 0, 0, "tis").
				Event(5, 0, 0, "tis").
				Build(),
			WantDiagnostics: 1,
			WantLevels:      []rules.Level{rules.LevelError},
			WantLocations:   []string{"EV0001 (X009, Y009)"},
			WantMessages:    []string{"Tissue 5 points to non-existent event EV0077"},
		},
		{
			Name: "misnamed helper",
			Document: tissueMap(2, 3, 4, 5, 6).
				Event(2, 0, 0, "tis").
				Event(3, 7, 8, "door").
				Event(4, 0, 0, "tis").
				Event(5, 0, 0, "tis").
				Event(6, 0, 0, "tis").
				Build(),
			WantDiagnostics: 1,
			WantLevels:      []rules.Level{rules.LevelError},
			WantLocations:   []string{"EV0003 (X007, Y008)"},
			WantMessages:    []string{"incorrect event pointed to by tissue 2."},
		},
		{
			Name:            "wrong reference count",
			Document:        tissueMap(2, 3).Event(2, 0, 0, "tis").Event(3, 0, 0, "tis").Build(),
			WantDiagnostics: 1,
			WantLevels:      []rules.Level{rules.LevelWarning},
			WantLocations:   []string{"EV0001 (X009, Y009)"},
			WantMessages:    []string{"Expected 5 tissues but found 2. This is likely a bug with this tool."},
		},
		{
			Name:            "configured count",
			Document:        tissueMap(2, 3).Event(2, 0, 0, "tis").Event(3, 0, 0, "tis").Build(),
			Config:          TissueEventsConfig{Expected: 2},
			WantDiagnostics: 0,
		},
		{
			Name: "references across pages and relocations",
			Document: testutil.NewMap().
				Event(1, 0, 0, anchorName,
					testutil.Page(testutil.CallEvent(2), testutil.CallEvent(3)),
					testutil.Page(
						testutil.Cmd(lcf.OpSetEventLocation, 4, 0, 1, 1),
						testutil.Cmd(lcf.OpSetEventLocation, 5, 0, 1, 1),
						testutil.CallEvent(6),
					),
				).
				Event(2, 0, 0, "tis").
				Event(3, 0, 0, "tis").
				Event(4, 0, 0, "tis").
				Event(5, 0, 0, "tis").
				Event(6, 0, 0, "tis").
				Build(),
			WantDiagnostics: 0,
		},
	})
}

func TestTissueEventsRule_FirstAnchorWins(t *testing.T) {
	t.Parallel()

	doc := tissueMap(2).
		Event(2, 0, 0, "tis").
		Event(3, 0, 0, anchorName, testutil.Page(
			testutil.CallEvent(2), testutil.CallEvent(2), testutil.CallEvent(2),
			testutil.CallEvent(2), testutil.CallEvent(2),
		)).
		Build()

	diags := NewTissueEventsRule().Check(testutil.MakeLintInput(doc, nil))
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "found 1")
}

func TestTissueEventsRule_ValidateConfig(t *testing.T) {
	t.Parallel()

	r := NewTissueEventsRule()
	require.NoError(t, r.ValidateConfig(nil))
	require.NoError(t, r.ValidateConfig(map[string]any{"expected": 3}))
	require.Error(t, r.ValidateConfig(map[string]any{"expected": -1}))
	require.Error(t, r.ValidateConfig(map[string]any{"count": 3}))
	assert.Equal(t, DefaultTissueEventsConfig(), r.DefaultConfig())
}
