// Package recording captures figure drawing as typed commands and replays
// them to pluggable output backends.
//
// # Architecture
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: captures drawing operations as commands
//   - Recording: stores commands and resources for playback
//   - Backend: renders commands to a specific output format
//
// A figure is drawn once into a Recorder and the resulting Recording can be
// played back to any number of backends: the "svg" backend produces a text
// document, the "png" backend a raster image.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(460.8, 345.6)
//
//	rec.BeginGroup("line2d_1")
//	rec.SetStrokeColor(paint.ColorCycle(0))
//	rec.SetLineWidth(1.5)
//	rec.MoveTo(57.6, 307.6)
//	rec.LineTo(414.7, 41.5)
//	rec.Stroke()
//	rec.EndGroup()
//
//	r := rec.FinishRecording()
//
// # Backend Registration
//
// Backends are registered using the database/sql driver pattern. Import a
// backend package with a blank identifier to register its format:
//
//	import (
//	    "github.com/gogpu/ggplot/recording"
//	    _ "github.com/gogpu/ggplot/recording/backends/svg" // Registers "svg"
//	)
//
//	b, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(b); err != nil {
//	    return err
//	}
//	_, err = b.(recording.WriterBackend).WriteTo(w)
//
// # Coordinates
//
// The Recorder applies its current transform while recording, so backends
// receive paths, stroke widths and text positions in device units. Backends
// never see a transform.
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. Recording objects are immutable
// after FinishRecording and can be played back from multiple goroutines.
package recording
