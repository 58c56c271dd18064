// Package config loads modalcore settings.
//
// Settings come from a TOML file, then from MODALCORE_* environment
// variables. A missing file yields the defaults. Unknown keys are an error
// so that typos do not silently fall back to defaults.
//
//	[editor]
//	tab_width = 4
//	auto_indent = true
//	scroll_off = 3
//
//	[undo]
//	group_interval = "300ms"
//	limit = 1000
//
//	[comments.python]
//	prefix = "## "
//
// Watcher reloads the file when it changes on disk.
package config
