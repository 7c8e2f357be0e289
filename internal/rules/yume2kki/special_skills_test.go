package yume2kki

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/testutil"
)

func skillCheck() lcf.Command {
	return testutil.Cmd(lcf.OpConditionalBranch, 5, 2, 4, 0, 0, 1)
}

func TestSpecialSkillsRule_Metadata(t *testing.T) {
	t.Parallel()
	snaps.MatchStandaloneJSON(t, NewSpecialSkillsRule().Metadata())
}

func TestSpecialSkillsRule_Check(t *testing.T) {
	t.Parallel()
	testutil.RunRuleTests(t, NewSpecialSkillsRule(), []testutil.RuleTestCase{
		{
			Name:            "unannotated skill check",
			Document:        testutil.NewMap().Event(1, 2, 3, "", testutil.Page(skillCheck(), testutil.Cmd(lcf.OpEnd))).Build(),
			WantDiagnostics: 1,
			WantLevels:      []rules.Level{rules.LevelError},
			WantLocations:   []string{"EV0001 (X002, Y003) P01 I00001"},
		},
		{
			Name: "annotated before the check",
			Document: testutil.NewMap().Event(1, 2, 3, "", testutil.Page(
				testutil.Comment("▽Skills: knows Bike"), skillCheck(),
			)).Build(),
			WantDiagnostics: 0,
		},
		{
			Name: "annotation on a continuation line",
			Document: testutil.NewMap().Event(1, 2, 3, "", testutil.Page(
				testutil.Comment("check"), testutil.CommentLine("▽Skills"), skillCheck(),
			)).Build(),
			WantDiagnostics: 0,
		},
		{
			Name: "annotation after the check",
			Document: testutil.NewMap().Event(1, 2, 3, "", testutil.Page(
				skillCheck(), testutil.Comment("▽Skills"),
			)).Build(),
			WantDiagnostics: 1,
		},
		{
			Name: "annotation carries to later pages of the event",
			Document: testutil.NewMap().Event(1, 2, 3, "",
				testutil.Page(testutil.Comment("▽Skills")),
				testutil.Page(skillCheck()),
			).Build(),
			WantDiagnostics: 0,
		},
		{
			Name: "annotation does not carry to other events",
			Document: testutil.NewMap().
				Event(1, 2, 3, "", testutil.Page(testutil.Comment("▽Skills"), skillCheck())).
				Event(2, 4, 5, "", testutil.Page(skillCheck())).
				Build(),
			WantDiagnostics: 1,
			WantLocations:   []string{"EV0002 (X004, Y005) P01 I00001"},
		},
		{
			Name: "other branch",
			Document: testutil.NewMap().Event(1, 2, 3, "", testutil.Page(
				testutil.Cmd(lcf.OpConditionalBranch, 5, 2, 3),
				testutil.Cmd(lcf.OpConditionalBranch, 0, 2, 4),
			)).Build(),
			WantDiagnostics: 0,
		},
	})
}
