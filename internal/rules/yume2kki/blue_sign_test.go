package yume2kki

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/testutil"
)

func TestBlueSignRule_Metadata(t *testing.T) {
	t.Parallel()
	snaps.MatchStandaloneJSON(t, NewBlueSignRule().Metadata())
}

func TestBlueSignRule_Check(t *testing.T) {
	t.Parallel()
	testutil.RunRuleTests(t, NewBlueSignRule(), []testutil.RuleTestCase{
		{
			Name:            "unannotated sign",
			Document:        testutil.NewMap().Event(5, 6, 7, "", testutil.GraphicPage(blueSignCharset, 1)).Build(),
			WantDiagnostics: 1,
			WantLevels:      []rules.Level{rules.LevelWarning},
			WantLocations:   []string{"EV0005 (X006, Y007)"},
		},
		{
			Name:            "annotated in english",
			Document:        testutil.NewMap().Event(5, 6, 7, "", testutil.GraphicPage(blueSignCharset, 2, testutil.Comment("Reserved for a future world"))).Build(),
			WantDiagnostics: 0,
		},
		{
			Name: "annotated on another page",
			Document: testutil.NewMap().Event(5, 6, 7, "",
				testutil.GraphicPage(blueSignCharset, 1),
				testutil.Page(testutil.CommentLine("接続先: 未定")),
			).Build(),
			WantDiagnostics: 0,
		},
		{
			Name:            "annotated in japanese",
			Document:        testutil.NewMap().Event(5, 6, 7, "", testutil.GraphicPage(blueSignCharset, 1, testutil.Comment("予約済み"))).Build(),
			WantDiagnostics: 0,
		},
		{
			Name:            "other cell of the charset",
			Document:        testutil.NewMap().Event(5, 6, 7, "", testutil.GraphicPage(blueSignCharset, 3)).Build(),
			WantDiagnostics: 0,
		},
		{
			Name:            "other charset",
			Document:        testutil.NewMap().Event(5, 6, 7, "", testutil.GraphicPage("system_kyouyu_gazou05", 1)).Build(),
			WantDiagnostics: 0,
		},
	})
}
