package recording

// CommandType tags a recorded command.
type CommandType uint8

const (
	CmdSave CommandType = iota
	CmdRestore
	CmdSetClip
	CmdClearClip
	CmdBeginGroup
	CmdEndGroup
	CmdFillPath
	CmdStrokePath
	CmdDrawText
)

// String returns the command name, or "Unknown".
func (c CommandType) String() string {
	names := [...]string{"Save", "Restore", "SetClip", "ClearClip", "BeginGroup", "EndGroup", "FillPath", "StrokePath", "DrawText"}
	if int(c) >= len(names) {
		return "Unknown"
	}
	return names[c]
}

// Command is one recorded operation. Playback switches on the concrete type;
// Type exists for logging and tests.
type Command interface {
	Type() CommandType
}

// PathRef and BrushRef index into a ResourcePool.
type (
	PathRef  uint32
	BrushRef uint32
)

// SaveCommand and RestoreCommand bracket clip changes on the backend.
type (
	SaveCommand    struct{}
	RestoreCommand struct{}
)

// SetClipCommand intersects the clip with a path.
type SetClipCommand struct {
	Path PathRef
	Rule FillRule
}

// ClearClipCommand resets the clip to the whole canvas.
type ClearClipCommand struct{}

// BeginGroupCommand opens a group that backends may label with ID.
type BeginGroupCommand struct{ ID string }

// EndGroupCommand closes the innermost group.
type EndGroupCommand struct{}

// FillPathCommand paints the inside of a path.
type FillPathCommand struct {
	Path  PathRef
	Brush BrushRef
	Rule  FillRule
}

// StrokePathCommand paints the outline of a path. Stroke is in device units.
type StrokePathCommand struct {
	Path   PathRef
	Brush  BrushRef
	Stroke Stroke
}

// DrawTextCommand places a text run with its anchor at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Style TextStyle
	Brush BrushRef
}

// Type implements Command for each command kind.
func (SaveCommand) Type() CommandType       { return CmdSave }
func (RestoreCommand) Type() CommandType    { return CmdRestore }
func (SetClipCommand) Type() CommandType    { return CmdSetClip }
func (ClearClipCommand) Type() CommandType  { return CmdClearClip }
func (BeginGroupCommand) Type() CommandType { return CmdBeginGroup }
func (EndGroupCommand) Type() CommandType   { return CmdEndGroup }
func (FillPathCommand) Type() CommandType   { return CmdFillPath }
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }
func (DrawTextCommand) Type() CommandType   { return CmdDrawText }
