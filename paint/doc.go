// Package paint holds the value types shared by the figure model, the
// recording system and its backends: colors, points, affine matrices,
// rectangles and vector paths.
//
// Everything here is a plain value or a small mutable builder ([Path]) with
// no rendering behavior of its own. Coordinates follow the usual computer
// graphics convention: origin at the top-left, X grows right, Y grows down.
package paint
