// Package syntax maps file paths to languages and their comment affixes.
//
// A Registry starts with a builtin table and can be extended from a Lua
// script that assigns a global "languages" table:
//
//	languages = {
//	  go   = { extensions = { "go" }, comment = "// " },
//	  html = { extensions = { "html", "htm" }, comment = "<!-- ", comment_end = " -->" },
//	}
//
// Lookups are memoized per path.
package syntax
