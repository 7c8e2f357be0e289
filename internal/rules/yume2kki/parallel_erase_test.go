package yume2kki

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/testutil"
)

func TestParallelEraseRule_Metadata(t *testing.T) {
	t.Parallel()
	snaps.MatchStandaloneJSON(t, NewParallelEraseRule().Metadata())
}

func TestParallelEraseRule_Check(t *testing.T) {
	t.Parallel()
	testutil.RunRuleTests(t, NewParallelEraseRule(), []testutil.RuleTestCase{
		{
			Name:            "music without erase",
			Document:        testutil.NewMap().Event(3, 0, 1, "", testutil.ParallelPage(testutil.Cmd(lcf.OpPlayBGM, 100, 100, 50))).Build(),
			WantDiagnostics: 1,
			WantLevels:      []rules.Level{rules.LevelWarning},
			WantLocations:   []string{"EV0003 (X000, Y001) P01"},
		},
		{
			Name: "erased after running",
			Document: testutil.NewMap().Event(3, 0, 1, "", testutil.ParallelPage(
				testutil.Cmd(lcf.OpShowPicture, 1), testutil.Cmd(lcf.OpEraseEvent),
			)).Build(),
			WantDiagnostics: 0,
		},
		{
			Name:            "action page is ignored",
			Document:        testutil.NewMap().Event(3, 0, 1, "", testutil.Page(testutil.Cmd(lcf.OpMovePicture, 1))).Build(),
			WantDiagnostics: 0,
		},
		{
			Name: "second page",
			Document: testutil.NewMap().Event(3, 0, 1, "",
				testutil.Page(),
				testutil.ParallelPage(testutil.Cmd(lcf.OpMovePicture, 1)),
			).Build(),
			WantDiagnostics: 1,
			WantLocations:   []string{"EV0003 (X000, Y001) P02"},
		},
	})
}
