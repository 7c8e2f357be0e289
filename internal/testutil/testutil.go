// Package testutil provides test helpers for the map linter.
package testutil

import (
	"strings"
	"testing"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// MapBuilder assembles an in-memory map document.
type MapBuilder struct {
	doc lcf.Document
}

// NewMap starts an empty map.
func NewMap() *MapBuilder {
	return &MapBuilder{}
}

// Event appends an event. The name is stored Shift-JIS encoded, the way
// the editor writes it.
func (b *MapBuilder) Event(id, x, y int, name string, pages ...lcf.Page) *MapBuilder {
	b.doc.Events = append(b.doc.Events, lcf.Event{
		ID:    id,
		Name:  lcf.EncodeShiftJIS(name),
		X:     x,
		Y:     y,
		Pages: pages,
	})
	return b
}

// Build returns the assembled document.
func (b *MapBuilder) Build() *lcf.Document {
	doc := b.doc
	return &doc
}

// Page creates an action-triggered page holding cmds.
func Page(cmds ...lcf.Command) lcf.Page {
	return lcf.Page{Trigger: lcf.TriggerAction, Commands: cmds}
}

// ParallelPage creates a parallel-process page holding cmds.
func ParallelPage(cmds ...lcf.Command) lcf.Page {
	return lcf.Page{Trigger: lcf.TriggerParallel, Commands: cmds}
}

// GraphicPage creates a page drawn with the given charset cell.
func GraphicPage(file string, index int, cmds ...lcf.Command) lcf.Page {
	return lcf.Page{
		Trigger:  lcf.TriggerAction,
		Graphic:  lcf.Graphic{File: lcf.EncodeShiftJIS(file), Index: index},
		Commands: cmds,
	}
}

// Cmd creates a command with positional parameters.
func Cmd(code lcf.Opcode, params ...int32) lcf.Command {
	return lcf.Command{Code: code, Params: params}
}

// Indented returns cmd with its indent level set.
func Indented(indent int, cmd lcf.Command) lcf.Command {
	cmd.Indent = indent
	return cmd
}

// Comment creates the first line of a comment.
func Comment(text string) lcf.Command {
	return lcf.Command{Code: lcf.OpComment, String: lcf.EncodeShiftJIS(text)}
}

// CommentLine creates a continuation line of a comment.
func CommentLine(text string) lcf.Command {
	return lcf.Command{Code: lcf.OpCommentNextLine, String: lcf.EncodeShiftJIS(text)}
}

// SetVariable creates a ControlVariables command assigning a single variable.
func SetVariable(id int32) lcf.Command {
	return Cmd(lcf.OpControlVariables, 0, id, id, 0, 0, 1)
}

// SetVariableRange creates a ControlVariables command assigning a range.
func SetVariableRange(start, end int32) lcf.Command {
	return Cmd(lcf.OpControlVariables, 1, start, end, 0, 0, 1)
}

// CallEvent creates a CallEvent command targeting a map event by id.
func CallEvent(id int32) lcf.Command {
	return Cmd(lcf.OpCallEvent, 0, id, 1)
}

// MakeLintInput creates a LintInput for testing a rule.
func MakeLintInput(doc *lcf.Document, config any) rules.LintInput {
	return rules.LintInput{Document: doc, Config: config}
}

// RuleTestCase defines a test case for table-driven rule tests.
type RuleTestCase struct {
	// Name is the test case name.
	Name string

	// Document is the map to lint.
	Document *lcf.Document

	// Config is the optional rule configuration.
	Config any

	// WantDiagnostics is the expected number of diagnostics.
	// Use -1 to skip the count check.
	WantDiagnostics int

	// WantLevels are the expected levels in diagnostic order.
	WantLevels []rules.Level

	// WantLocations are the expected rendered locations in diagnostic order.
	// An empty string expects no location.
	WantLocations []string

	// WantMessages are substrings expected in diagnostic messages.
	WantMessages []string
}

// RunRuleTests runs a table of test cases against a rule.
func RunRuleTests(t *testing.T, rule rules.Rule, cases []RuleTestCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			diags := rule.Check(MakeLintInput(tc.Document, tc.Config))

			if tc.WantDiagnostics >= 0 && len(diags) != tc.WantDiagnostics {
				t.Errorf("got %d diagnostics, want %d", len(diags), tc.WantDiagnostics)
				for i, d := range diags {
					t.Logf("  [%d] %s %s", i, d.Level, d)
				}
			}

			if len(tc.WantLevels) > 0 {
				if len(diags) != len(tc.WantLevels) {
					t.Errorf("got %d diagnostics, want %d levels", len(diags), len(tc.WantLevels))
				} else {
					for i, lvl := range tc.WantLevels {
						if diags[i].Level != lvl {
							t.Errorf("diagnostic[%d].Level = %v, want %v", i, diags[i].Level, lvl)
						}
					}
				}
			}

			for i, want := range tc.WantLocations {
				if i >= len(diags) {
					t.Errorf("expected diagnostic[%d] at %q, but only got %d diagnostics", i, want, len(diags))
					continue
				}
				got := ""
				if diags[i].Location != nil {
					got = diags[i].Location.String()
				}
				if got != want {
					t.Errorf("diagnostic[%d].Location = %q, want %q", i, got, want)
				}
			}

			for i, msg := range tc.WantMessages {
				if i >= len(diags) {
					t.Errorf(
						"expected diagnostic[%d] with message containing %q, but only got %d diagnostics",
						i,
						msg,
						len(diags),
					)
					continue
				}
				if !strings.Contains(diags[i].Message, msg) {
					t.Errorf("diagnostic[%d].Message = %q, want substring %q", i, diags[i].Message, msg)
				}
			}

			AssertLocationsResolve(t, tc.Document, diags)
		})
	}
}

// AssertLocationsResolve fails if a diagnostic points at an event, page or
// command that does not exist in doc.
func AssertLocationsResolve(tb testing.TB, doc *lcf.Document, diags []rules.Diagnostic) {
	tb.Helper()
	for i, d := range diags {
		if d.Location != nil && !d.Location.Resolves(doc) {
			tb.Errorf("diagnostic[%d] location %s does not resolve", i, d.Location)
		}
	}
}

// AssertNoDiagnostics fails the test if there are any diagnostics.
func AssertNoDiagnostics(tb testing.TB, diags []rules.Diagnostic) {
	tb.Helper()
	if len(diags) > 0 {
		tb.Errorf("expected no diagnostics, got %d:", len(diags))
		for _, d := range diags {
			tb.Logf("  - %s %s", d.Level, d)
		}
	}
}

// AssertDiagnosticCount fails if the diagnostic count doesn't match.
func AssertDiagnosticCount(tb testing.TB, diags []rules.Diagnostic, want int) {
	tb.Helper()
	if len(diags) != want {
		tb.Errorf("got %d diagnostics, want %d", len(diags), want)
		for _, d := range diags {
			tb.Logf("  - %s %s", d.Level, d)
		}
	}
}
