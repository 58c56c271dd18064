package register

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) ReadAll() (string, error) { return f.text, f.err }

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newTestBank() (*Bank, *fakeClipboard) {
	clip := &fakeClipboard{}
	return NewBank(WithClipboard(clip)), clip
}

func TestYankSetsUnnamedAndNamed(t *testing.T) {
	b, _ := newTestBank()

	b.Yank(0, CharsOf("plain"))
	got, ok := b.Get(0)
	require.True(t, ok)
	require.Equal(t, CharsOf("plain"), got)

	b.Yank('a', CharsOf("foo"))
	got, _ = b.Get('a')
	require.Equal(t, "foo", got.Text)
	got, _ = b.Get(Unnamed)
	require.Equal(t, "foo", got.Text, "unnamed mirrors every yank")
	got, _ = b.Get(LastYank)
	require.Equal(t, "foo", got.Text)
}

func TestUppercaseAppends(t *testing.T) {
	tests := []struct {
		name     string
		first    Content
		second   Content
		expected Content
	}{
		{"chars and chars", CharsOf("foo"), CharsOf("bar"), CharsOf("foobar")},
		{"chars and lines", CharsOf("foo"), LinesOf("bar\n"), LinesOf("foo\nbar\n")},
		{"lines and chars", LinesOf("foo\n"), CharsOf("bar"), LinesOf("foo\nbar")},
		{"lines and lines", LinesOf("foo\n"), LinesOf("bar\n"), LinesOf("foo\nbar\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := newTestBank()
			b.Yank('a', tt.first)
			b.Yank('A', tt.second)
			got, ok := b.Get('a')
			require.True(t, ok)
			require.Equal(t, tt.expected, got)
		})
	}

	b, _ := newTestBank()
	b.Yank('Q', CharsOf("new"))
	got, _ := b.Get('q')
	require.Equal(t, "new", got.Text, "append to an empty register creates it")
}

func TestDeleteRouting(t *testing.T) {
	b, _ := newTestBank()

	b.Delete(0, CharsOf("x"), true)
	got, ok := b.Get(SmallDelete)
	require.True(t, ok)
	require.Equal(t, "x", got.Text)
	_, ok = b.Numbered(1)
	require.False(t, ok, "small deletes leave numbered registers alone")

	b.Delete(0, LinesOf("line one\n"), false)
	b.Delete(0, LinesOf("line two\n"), false)
	one, _ := b.Numbered(1)
	two, _ := b.Numbered(2)
	require.Equal(t, "line two\n", one.Text)
	require.Equal(t, "line one\n", two.Text)

	got, _ = b.Get(SmallDelete)
	require.Equal(t, "x", got.Text)
	got, _ = b.Get(0)
	require.Equal(t, "line two\n", got.Text)

	b.Delete('c', CharsOf("named"), true)
	got, _ = b.Get('c')
	require.Equal(t, "named", got.Text)
	got, _ = b.Get(SmallDelete)
	require.Equal(t, "x", got.Text, "explicit name bypasses small delete")
}

func TestNumberedShiftEvicts(t *testing.T) {
	b, _ := newTestBank()
	for i := 0; i < 12; i++ {
		b.Delete(0, LinesOf(string(rune('a'+i))), false)
	}
	first, _ := b.Numbered(1)
	last, _ := b.Numbered(9)
	require.Equal(t, "l", first.Text)
	require.Equal(t, "d", last.Text)

	_, ok := b.Numbered(10)
	require.False(t, ok)
}

func TestBlackHole(t *testing.T) {
	b, _ := newTestBank()
	b.Yank(0, CharsOf("keep"))
	b.Yank(BlackHole, CharsOf("drop"))
	b.Delete(BlackHole, LinesOf("drop\n"), false)

	got, _ := b.Get(0)
	require.Equal(t, "keep", got.Text)
	_, ok := b.Get(BlackHole)
	require.False(t, ok)
	_, ok = b.Numbered(1)
	require.False(t, ok)
}

func TestClipboardRegisters(t *testing.T) {
	b, clip := newTestBank()

	b.Yank(ClipboardP, CharsOf("shared"))
	require.Equal(t, "shared", clip.text)
	got, _ := b.Get(0)
	require.Equal(t, "shared", got.Text, "clipboard yank also sets unnamed")

	clip.text = "two\nlines\n"
	got, ok := b.Get(ClipboardS)
	require.True(t, ok)
	require.Equal(t, LinesOf("two\nlines\n"), got)

	clip.err = errors.New("no display")
	_, ok = b.Get(ClipboardP)
	require.False(t, ok, "clipboard failure reads as empty")
	b.Delete(ClipboardP, CharsOf("lost"), true)
	got, _ = b.Get(0)
	require.Equal(t, "lost", got.Text)
}

func TestNoClipboard(t *testing.T) {
	b := NewBank(WithClipboard(NoClipboard{}))
	b.Yank(ClipboardP, CharsOf("x"))
	_, ok := b.Get(ClipboardP)
	require.False(t, ok)
}

func TestIsValidName(t *testing.T) {
	for _, r := range `azAZ09"-+*_/` {
		require.True(t, IsValidName(r), "expected %q to be valid", r)
	}
	for _, r := range `!@#%=.é ` {
		require.False(t, IsValidName(r), "expected %q to be invalid", r)
	}
}

func TestNamesAndClear(t *testing.T) {
	b, _ := newTestBank()
	b.Yank('b', CharsOf("1"))
	b.Delete(0, CharsOf("2"), true)
	b.Delete(0, LinesOf("3\n"), false)

	require.Equal(t, []rune{'"', '-', '1', 'b'}, b.Names())

	b.Clear()
	require.Empty(t, b.Names())
}
