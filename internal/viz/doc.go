// Package viz renders figures in the terminal.
//
//   - [RenderChart]: line charts through asciigraph
//   - [Canvas]: Braille pixel canvas with a per-cell colour tone
//   - [Camera] and [Mesh]: projection of a deformed nuclear surface
//   - [Viewer]: interactive Bubble Tea viewer for surfaces
//
// # Key Bindings
//
//	arrows  - rotate
//	+ / -   - zoom
//	[ ]     - decrease/increase beta
//	, .     - decrease/increase l
//	m / M   - decrease/increase m
//	space   - toggle auto-rotation
//	t       - cycle colormap
//	r       - reset
//	q       - quit
//
// Colour output is only emitted when standard output is a terminal; see
// [IsTerminal].
package viz
