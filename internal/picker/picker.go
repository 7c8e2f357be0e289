// Package picker is the interactive map browser shown when a game is opened
// without --all.
package picker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/lcf"
)

// ErrCancelled is returned when the user quits without choosing a map.
var ErrCancelled = errors.New("no map selected")

const pageJump = 40

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursor        = ">"
)

// Entry is one selectable map.
type Entry struct {
	ID     int
	Name   string
	Indent int
}

// Label renders the entry the way it is listed: the map file name, then the
// name indented by tree depth.
func (e Entry) Label() string {
	return fmt.Sprintf("MAP%04d.lmu: %s%s", e.ID, strings.Repeat(" ", max(0, e.Indent)*2), e.Name)
}

// FilterValue implements list.Item.
func (e Entry) FilterValue() string {
	return fmt.Sprintf("%04d %s", e.ID, e.Name)
}

// Entries builds the picker entries from a map tree, skipping the root.
func Entries(tree *lcf.MapTree, cp lcf.CodePage) []Entry {
	infos := tree.Entries()
	out := make([]Entry, len(infos))
	for i, m := range infos {
		out[i] = Entry{ID: m.ID, Name: cp.Decode(m.Name), Indent: m.Indent}
	}
	return out
}

type delegate struct{}

func (delegate) Height() int                             { return 1 }
func (delegate) Spacing() int                            { return 0 }
func (delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, ok := item.(Entry)
	if !ok {
		return
	}
	if index == m.Index() {
		_, _ = fmt.Fprint(w, selectedStyle.Render(cursor+e.Label()))
		return
	}
	_, _ = fmt.Fprint(w, " "+e.Label())
}

var (
	keyChoose   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "check map"))
	keyPageUp   = key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "up 40"))
	keyPageDown = key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "down 40"))
	keyCancel   = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
)

// Model is the bubbletea model of the picker.
type Model struct {
	list      list.Model
	chosen    *Entry
	cancelled bool
}

// New creates a picker over entries. title is shown above the list,
// normally the game directory.
func New(title string, entries []Entry) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	l := list.New(items, delegate{}, 80, 24)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keyChoose}
	}
	return Model{list: l}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keyCancel) {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, keyChoose):
			if e, ok := m.list.SelectedItem().(Entry); ok {
				m.chosen = &e
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, keyPageUp):
			m.list.Select(max(0, m.list.Index()-pageJump))
			return m, nil
		case key.Matches(msg, keyPageDown):
			m.list.Select(min(len(m.list.Items())-1, m.list.Index()+pageJump))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.chosen != nil || m.cancelled {
		return ""
	}
	return m.list.View()
}

// Chosen returns the selected entry once the user pressed enter.
func (m Model) Chosen() (Entry, bool) {
	if m.chosen == nil {
		return Entry{}, false
	}
	return *m.chosen, true
}

// Run shows the picker on the terminal and returns the chosen entry.
func Run(title string, entries []Entry, opts ...tea.ProgramOption) (Entry, error) {
	if len(entries) == 0 {
		return Entry{}, ErrCancelled
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(New(title, entries), opts...).Run()
	if err != nil {
		return Entry{}, fmt.Errorf("map picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Entry{}, ErrCancelled
	}
	e, ok := m.Chosen()
	if !ok {
		return Entry{}, ErrCancelled
	}
	return e, nil
}
