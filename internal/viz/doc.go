// Package viz renders a playback.Controller in the terminal.
//
// The interactive player is a Bubble Tea [Model]. Bars are drawn with block
// glyphs when they fit the window and fall back to a Braille [Canvas] (one
// dot column per bar) when they do not. Highlights are coloured by tone
// through the active [Theme].
//
// # Key Bindings
//
//	Space   - Play/Pause
//	←/→     - Step backward/forward
//	Home/End- Jump to first/last step
//	+/-     - Faster/slower
//	Tab     - Next algorithm
//	O       - Next data order
//	R       - Regenerate data
//	T       - Cycle color themes
//	C       - Toggle step chart
//	I       - Toggle algorithm info
//	?       - Full help
package viz
