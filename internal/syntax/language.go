package syntax

import "strings"

// Comment holds the line comment affixes of a language. Suffix is empty for
// languages with a plain line comment.
type Comment struct {
	Prefix string
	Suffix string
}

// Marker returns the prefix without trailing whitespace, which is what a
// commented line has to start with.
func (c Comment) Marker() string {
	return strings.TrimRight(c.Prefix, " \t")
}

// EndMarker returns the suffix without leading whitespace.
func (c Comment) EndMarker() string {
	return strings.TrimLeft(c.Suffix, " \t")
}

// IsZero reports whether no prefix is set.
func (c Comment) IsZero() bool {
	return c.Marker() == ""
}

// Language describes a file type.
type Language struct {
	Name       string
	Extensions []string
	Filenames  []string
	Comment    Comment
}

// DefaultComment is used for files of unknown type.
var DefaultComment = Comment{Prefix: "// "}

func slashes(name string, exts ...string) Language {
	return Language{Name: name, Extensions: exts, Comment: Comment{Prefix: "// "}}
}

func hashes(name string, exts ...string) Language {
	return Language{Name: name, Extensions: exts, Comment: Comment{Prefix: "# "}}
}

// Builtin returns the languages known without configuration.
func Builtin() []Language {
	return []Language{
		slashes("go", "go"),
		slashes("rust", "rs"),
		slashes("c", "c", "h"),
		slashes("cpp", "cc", "cpp", "cxx", "hpp", "hh"),
		slashes("java", "java"),
		slashes("javascript", "js", "mjs", "cjs", "jsx"),
		slashes("typescript", "ts", "tsx"),
		slashes("swift", "swift"),
		slashes("kotlin", "kt", "kts"),
		slashes("zig", "zig"),
		hashes("python", "py", "pyi"),
		hashes("ruby", "rb"),
		hashes("shell", "sh", "bash", "zsh", "fish"),
		hashes("toml", "toml"),
		hashes("yaml", "yaml", "yml"),
		hashes("perl", "pl", "pm"),
		hashes("r", "r"),
		{Name: "make", Filenames: []string{"Makefile", "makefile", "GNUmakefile"}, Extensions: []string{"mk"}, Comment: Comment{Prefix: "# "}},
		{Name: "dockerfile", Filenames: []string{"Dockerfile"}, Comment: Comment{Prefix: "# "}},
		{Name: "lua", Extensions: []string{"lua"}, Comment: Comment{Prefix: "-- "}},
		{Name: "sql", Extensions: []string{"sql"}, Comment: Comment{Prefix: "-- "}},
		{Name: "haskell", Extensions: []string{"hs"}, Comment: Comment{Prefix: "-- "}},
		{Name: "vim", Extensions: []string{"vim"}, Comment: Comment{Prefix: "\" "}},
		{Name: "lisp", Extensions: []string{"lisp", "el", "clj", "scm"}, Comment: Comment{Prefix: "; "}},
		{Name: "html", Extensions: []string{"html", "htm", "xml", "svg", "md", "markdown"}, Comment: Comment{Prefix: "<!-- ", Suffix: " -->"}},
		{Name: "css", Extensions: []string{"css", "scss", "less"}, Comment: Comment{Prefix: "/* ", Suffix: " */"}},
	}
}
