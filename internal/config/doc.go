// Package config loads hexcell settings from a TOML or YAML file and turns
// them into cell options.
//
// A file has four sections:
//
//	[colors]   # role = "#RRGGBB" or "default"
//	selection_first = "#6495ED"
//
//	[keys]     # command = ["chord", ...]
//	undo = ["Ctrl+Z", "Ctrl+U"]
//
//	[editor]
//	auto_highlight = true
//	read_only = false
//	bytes_per_line = 16
//	bold_selection = true
//
//	[log]
//	level = "info"
//	file = "/tmp/hexcell.log"
//
// Environment variables prefixed with HEXCELL_ override the editor and log
// sections. Watch reloads a file when it changes on disk.
package config
