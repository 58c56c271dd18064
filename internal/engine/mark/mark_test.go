package mark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/modalcore/internal/engine/buffer"
)

func TestLocalMarksAreScopedByKey(t *testing.T) {
	s := NewStore()
	require.True(t, s.Set("one.go", "one.go", 'a', buffer.Pos(3, 4)))
	require.True(t, s.Set("two.go", "two.go", 'a', buffer.Pos(7, 0)))

	m, ok := s.Get("one.go", 'a')
	require.True(t, ok)
	require.Equal(t, buffer.Pos(3, 4), m.Pos)
	require.Empty(t, m.Path)

	m, ok = s.Get("two.go", 'a')
	require.True(t, ok)
	require.Equal(t, buffer.Pos(7, 0), m.Pos)

	_, ok = s.Get("three.go", 'a')
	require.False(t, ok)
}

func TestGlobalMarksCarryPath(t *testing.T) {
	s := NewStore()
	require.True(t, s.Set("main.go", "/src/main.go", 'A', buffer.Pos(1, 2)))

	m, ok := s.Get("elsewhere", 'A')
	require.True(t, ok)
	require.Equal(t, "/src/main.go", m.Path)

	require.False(t, s.Set("__unnamed_x", "", 'B', buffer.Pos(0, 0)), "global mark without a path is ignored")
	_, ok = s.GetGlobal('B')
	require.False(t, ok)
}

func TestDelete(t *testing.T) {
	s := NewStore()
	s.SetLocal("test", 'a', buffer.Pos(10, 5))
	s.SetLocal("test", 'b', buffer.Pos(20, 0))
	s.SetGlobal('Z', "/f", buffer.Pos(0, 0))

	require.True(t, s.Delete("test", 'a'))
	_, ok := s.GetLocal("test", 'a')
	require.False(t, ok)
	require.False(t, s.Delete("test", 'z'))
	require.True(t, s.Delete("test", 'Z'))
	require.False(t, s.Delete("test", 'Z'))
}

func TestDeleteAllLocal(t *testing.T) {
	s := NewStore()
	s.SetLocal("test", 'a', buffer.Pos(10, 5))
	s.SetLocal("test", 'b', buffer.Pos(20, 0))
	s.SetLocal("test", 'c', buffer.Pos(30, 0))
	s.SetGlobal('A', "/f", buffer.Pos(0, 0))

	require.Equal(t, 3, s.DeleteAllLocal("test"))
	require.Empty(t, s.Local("test"))
	require.Len(t, s.Global(), 1)
	require.Equal(t, 0, s.DeleteAllLocal("missing"))
}

func TestListingsAreSorted(t *testing.T) {
	s := NewStore()
	for _, r := range "dcab" {
		s.SetLocal("k", r, buffer.Pos(0, 0))
	}
	var names []rune
	for _, n := range s.Local("k") {
		names = append(names, n.Name)
	}
	require.Equal(t, []rune("abcd"), names)
}

func TestParseDelmarks(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"a", "a"},
		{"A", "A"},
		{"a b c", "abc"},
		{"aB", "aB"},
		{"abc", "abc"},
		{"a-d", "abcd"},
		{"A-C", "ABC"},
		{"a-c X Y", "abcXY"},
		{"a-c b", "abc"},
		{"d-a", "da"},
		{"a-C", "aC"},
		{"1 ! a", "a"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got := ParseDelmarks(tt.arg)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestIsValid(t *testing.T) {
	require.True(t, IsValid('a'))
	require.True(t, IsValid('Z'))
	require.False(t, IsValid('1'))
	require.False(t, IsValid('é'))
}
