package yume2kki

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/testutil"
)

func TestCommentLengthRule_Metadata(t *testing.T) {
	t.Parallel()
	snaps.MatchStandaloneJSON(t, NewCommentLengthRule().Metadata())
}

func TestCommentLengthRule_Check(t *testing.T) {
	t.Parallel()
	testutil.RunRuleTests(t, NewCommentLengthRule(), []testutil.RuleTestCase{
		{
			Name:            "at the limit",
			Document:        testutil.NewMap().Event(1, 0, 0, "", testutil.Page(testutil.Comment(strings.Repeat("a", 56)))).Build(),
			WantDiagnostics: 0,
		},
		{
			Name:            "over the limit",
			Document:        testutil.NewMap().Event(1, 0, 0, "", testutil.Page(testutil.Comment(strings.Repeat("a", 57)))).Build(),
			WantDiagnostics: 1,
			WantLevels:      []rules.Level{rules.LevelWarning},
			WantLocations:   []string{"EV0001 (X000, Y000) P01 I00001"},
			WantMessages:    []string{"57/56"},
		},
		{
			Name:            "counts characters not bytes",
			Document:        testutil.NewMap().Event(1, 0, 0, "", testutil.Page(testutil.Comment(strings.Repeat("コ", 56)))).Build(),
			WantDiagnostics: 0,
		},
		{
			Name: "indent reduces the limit",
			Document: testutil.NewMap().Event(1, 0, 0, "", testutil.Page(
				testutil.Indented(2, testutil.CommentLine(strings.Repeat("a", 53))),
			)).Build(),
			WantDiagnostics: 1,
			WantMessages:    []string{"53/52"},
		},
		{
			Name: "deep indent floors at zero",
			Document: testutil.NewMap().Event(1, 0, 0, "", testutil.Page(
				testutil.Indented(40, testutil.Comment("a")),
				testutil.Indented(40, testutil.Comment("")),
			)).Build(),
			WantDiagnostics: 1,
			WantMessages:    []string{"1/0"},
		},
		{
			Name:            "configured width",
			Document:        testutil.NewMap().Event(1, 0, 0, "", testutil.Page(testutil.Comment("abcdef"))).Build(),
			Config:          map[string]any{"max-width": 5},
			WantDiagnostics: 1,
			WantMessages:    []string{"6/5"},
		},
	})
}

func TestCommentLengthRule_ValidateConfig(t *testing.T) {
	t.Parallel()

	r := NewCommentLengthRule()
	require.NoError(t, r.ValidateConfig(map[string]any{"max-width": 80}))
	require.NoError(t, r.ValidateConfig(CommentLengthConfig{MaxWidth: 10}))
	require.Error(t, r.ValidateConfig(map[string]any{"width": 80}))
	require.Error(t, r.ValidateConfig(map[string]any{"max-width": -3}))
	assert.Equal(t, DefaultCommentLengthConfig(), r.DefaultConfig())
}
