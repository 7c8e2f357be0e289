package lcf

// Document is one decoded map unit. Events keep their on-disk order.
type Document struct {
	Events []Event
}

// EventByID returns the event with the given id, or nil.
func (d *Document) EventByID(id int) *Event {
	for i := range d.Events {
		if d.Events[i].ID == id {
			return &d.Events[i]
		}
	}
	return nil
}

// Event is a positioned map entity with one or more pages.
type Event struct {
	ID int
	// Name is the raw, undecoded event name.
	Name  []byte
	X     int
	Y     int
	Pages []Page
}

// Trigger is the start condition of an event page.
type Trigger int

const (
	TriggerAction Trigger = iota
	TriggerTouch
	TriggerCollision
	TriggerAutoStart
	TriggerParallel
)

func (t Trigger) String() string {
	switch t {
	case TriggerAction:
		return "action"
	case TriggerTouch:
		return "touch"
	case TriggerCollision:
		return "collision"
	case TriggerAutoStart:
		return "autostart"
	case TriggerParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Graphic is the charset cell an event page is drawn with.
type Graphic struct {
	File  []byte
	Index int
}

// Page is one behavioral variant of an event.
type Page struct {
	Trigger  Trigger
	Graphic  Graphic
	Commands []Command
}

// Command is a single event instruction. Params are kept positionally; the
// accessor methods name the ones the linter cares about.
type Command struct {
	Code   Opcode
	Indent int
	String []byte
	Params []int32
}

// Param returns parameter i, or 0 when the command has fewer parameters.
func (c Command) Param(i int) int {
	if i < 0 || i >= len(c.Params) {
		return 0
	}
	return int(c.Params[i])
}

// IsComment reports whether the command is the first or a continuation line
// of a comment.
func (c Command) IsComment() bool {
	return c.Code == OpComment || c.Code == OpCommentNextLine
}

// VariableRange returns the operand mode and the start/end variable ids of a
// ControlVariables command.
func (c Command) VariableRange() (mode, start, end int) {
	return c.Param(0), c.Param(1), c.Param(2)
}

// TouchesVariable reports whether a ControlVariables command writes to id.
// Mode 0 targets a single variable and mode 1 an inclusive range; other
// modes address variables indirectly and are never matched.
func (c Command) TouchesVariable(id int) bool {
	if c.Code != OpControlVariables {
		return false
	}
	mode, start, end := c.VariableRange()
	switch mode {
	case 0:
		return start == id
	case 1:
		return start <= id && id <= end
	default:
		return false
	}
}

// ScrollSpeed returns the speed of a ScrollMap command.
func (c Command) ScrollSpeed() int {
	return c.Param(3)
}

// BranchFields returns the mode and first two fields of a ConditionalBranch.
func (c Command) BranchFields() (mode, field1, field2 int) {
	return c.Param(0), c.Param(1), c.Param(2)
}

// CallTarget returns the mode and index of a CallEvent command.
func (c Command) CallTarget() (mode, index int) {
	return c.Param(0), c.Param(1)
}

// LocationSource returns the event id moved by a SetEventLocation command.
func (c Command) LocationSource() int {
	return c.Param(0)
}

// MapTree is the decoded map tree of a game.
type MapTree struct {
	// Maps includes the root entry with id 0.
	Maps []MapInfo
}

// MapInfo is one node of the map tree.
type MapInfo struct {
	ID     int
	Name   []byte
	Parent int
	Indent int
}

// Entries returns every map except the root entry, in tree order.
func (t *MapTree) Entries() []MapInfo {
	out := make([]MapInfo, 0, len(t.Maps))
	for _, m := range t.Maps {
		if m.ID == 0 {
			continue
		}
		out = append(out, m)
	}
	return out
}
