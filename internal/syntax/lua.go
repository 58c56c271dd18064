package syntax

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Errors returned while reading a Lua language table.
var (
	ErrNoLanguageTable = errors.New("script does not define a languages table")
	ErrInvalidLanguage = errors.New("invalid language entry")
)

// LoadLua runs the script at path and returns the languages it defines.
func LoadLua(ctx context.Context, path string) ([]Language, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	langs, err := ParseLua(ctx, string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return langs, nil
}

// ParseLua runs src in a restricted interpreter and reads its global
// languages table. Entries are returned sorted by name.
func ParseLua(ctx context.Context, src string) ([]Language, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	for _, open := range []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString} {
		open(L)
	}
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetContext(ctx)

	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("run script: %w", err)
	}
	tbl, ok := L.GetGlobal("languages").(*lua.LTable)
	if !ok {
		return nil, ErrNoLanguageTable
	}

	var (
		langs []Language
		bad   error
	)
	tbl.ForEach(func(k, v lua.LValue) {
		if bad != nil {
			return
		}
		lang, err := languageFrom(k, v)
		if err != nil {
			bad = err
			return
		}
		langs = append(langs, lang)
	})
	if bad != nil {
		return nil, bad
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].Name < langs[j].Name })
	return langs, nil
}

func languageFrom(k, v lua.LValue) (Language, error) {
	name, ok := k.(lua.LString)
	if !ok || name == "" {
		return Language{}, fmt.Errorf("%w: key %s is not a name", ErrInvalidLanguage, k.String())
	}
	entry, ok := v.(*lua.LTable)
	if !ok {
		return Language{}, fmt.Errorf("%w: %s is not a table", ErrInvalidLanguage, name)
	}

	lang := Language{
		Name:       string(name),
		Extensions: stringList(entry.RawGetString("extensions")),
		Filenames:  stringList(entry.RawGetString("filenames")),
		Comment: Comment{
			Prefix: stringField(entry, "comment"),
			Suffix: stringField(entry, "comment_end"),
		},
	}
	for i, ext := range lang.Extensions {
		lang.Extensions[i] = strings.TrimPrefix(ext, ".")
	}
	if len(lang.Extensions) == 0 && len(lang.Filenames) == 0 {
		return Language{}, fmt.Errorf("%w: %s has no extensions or filenames", ErrInvalidLanguage, name)
	}
	return lang, nil
}

func stringField(t *lua.LTable, key string) string {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// stringList reads an array of strings. A single string is accepted as a
// one-element list.
func stringList(v lua.LValue) []string {
	switch v := v.(type) {
	case lua.LString:
		return []string{string(v)}
	case *lua.LTable:
		var out []string
		for i := 1; i <= v.Len(); i++ {
			if s, ok := v.RawGetInt(i).(lua.LString); ok && s != "" {
				out = append(out, string(s))
			}
		}
		return out
	}
	return nil
}
