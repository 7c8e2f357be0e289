package lcf

import "strconv"

// Opcode identifies an event command.
type Opcode int

// Opcodes inspected by the rules. The full set is much larger; unknown codes
// decode fine and simply carry their raw number.
const (
	OpEnd               Opcode = 10
	OpControlVariables  Opcode = 10220
	OpTransferPlayer    Opcode = 10810
	OpSetEventLocation  Opcode = 10860
	OpScrollMap         Opcode = 11060
	OpWeatherEffects    Opcode = 11070
	OpShowPicture       Opcode = 11110
	OpMovePicture       Opcode = 11120
	OpPlayBGM           Opcode = 11510
	OpConditionalBranch Opcode = 12010
	OpEraseEvent        Opcode = 12320
	OpCallEvent         Opcode = 12330
	OpComment           Opcode = 12410
	OpCommentNextLine   Opcode = 22410
)

var opcodeNames = map[Opcode]string{
	OpEnd:               "End",
	OpControlVariables:  "ControlVariables",
	OpTransferPlayer:    "TransferPlayer",
	OpSetEventLocation:  "SetEventLocation",
	OpScrollMap:         "ScrollMap",
	OpWeatherEffects:    "WeatherEffects",
	OpShowPicture:       "ShowPicture",
	OpMovePicture:       "MovePicture",
	OpPlayBGM:           "PlayBGM",
	OpConditionalBranch: "ConditionalBranch",
	OpEraseEvent:        "EraseEvent",
	OpCallEvent:         "CallEvent",
	OpComment:           "Comment",
	OpCommentNextLine:   "CommentNextLine",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "Opcode(" + strconv.Itoa(int(o)) + ")"
}
