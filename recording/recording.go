package recording

import "fmt"

// Recording is the finished, read-only output of a Recorder. The same
// Recording may be played to any number of backends.
type Recording struct {
	width, height float64
	commands      []Command
	resources     *ResourcePool
}

// Width returns the canvas width.
func (r *Recording) Width() float64 { return r.width }

// Height returns the canvas height.
func (r *Recording) Height() float64 { return r.height }

// Commands returns the recorded commands in order.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the pool the commands refer to.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Playback sends every command to b between Begin and End. Group nesting
// is checked first, so b sees nothing from a malformed recording.
func (r *Recording) Playback(b Backend) error {
	if err := r.validate(); err != nil {
		return err
	}
	if err := b.Begin(r.width, r.height); err != nil {
		return err
	}
	path, brush := r.resources.GetPath, r.resources.GetBrush
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case FillPathCommand:
			b.FillPath(path(c.Path), brush(c.Brush), c.Rule)
		case StrokePathCommand:
			b.StrokePath(path(c.Path), brush(c.Brush), c.Stroke)
		case DrawTextCommand:
			b.DrawText(c.Text, c.X, c.Y, c.Style, brush(c.Brush))
		case BeginGroupCommand:
			b.BeginGroup(c.ID)
		case EndGroupCommand:
			b.EndGroup()
		case SetClipCommand:
			b.SetClip(path(c.Path), c.Rule)
		case ClearClipCommand:
			b.ClearClip()
		case SaveCommand:
			b.Save()
		case RestoreCommand:
			b.Restore()
		}
	}
	return b.End()
}

func (r *Recording) validate() error {
	depth := 0
	for i, cmd := range r.commands {
		switch cmd.(type) {
		case BeginGroupCommand:
			depth++
		case EndGroupCommand:
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: EndGroup without BeginGroup at command %d", ErrUnbalancedGroups, i)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d group(s) left open", ErrUnbalancedGroups, depth)
	}
	return nil
}
