// Package grid hosts the byte cells of a hex view. A Grid owns two panes of
// reused cells, hex digits and text, bound to a window of a Document. It
// supplies the cells' shared options, receives their intents and turns them
// into cursor movement, selection and edits.
//
// Every state change ends in Refresh, which clears each cell and binds it
// again to the byte now under it.
package grid
