package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.prismdeck.dev/pkg/ui"
)

var bufferBuilderWritesTests = []struct {
	name string
	bb   *BufferBuilder
	text string
	want *Buffer
}{
	{
		name: "simple write",
		bb:   NewBufferBuilder(10),
		text: "ab",
		want: &Buffer{Width: 10, Lines: [][]Cell{{{"a", ""}, {"b", ""}}}},
	},
	{
		name: "newline",
		bb:   NewBufferBuilder(10),
		text: "a\nb",
		want: &Buffer{Width: 10, Lines: [][]Cell{{{"a", ""}}, {{"b", ""}}}},
	},
	{
		name: "wrapping",
		bb:   NewBufferBuilder(3),
		text: "abcd",
		want: &Buffer{Width: 3, Lines: [][]Cell{
			{{"a", ""}, {"b", ""}, {"c", ""}}, {{"d", ""}}}},
	},
	{
		name: "wide characters wrap as a whole",
		bb:   NewBufferBuilder(3),
		text: "a好",
		want: &Buffer{Width: 3, Lines: [][]Cell{{{"a", ""}, {"好", ""}}}},
	},
	{
		name: "control characters use caret notation",
		bb:   NewBufferBuilder(10),
		text: "\x01",
		want: &Buffer{Width: 10, Lines: [][]Cell{{{"^A", "7"}}}},
	},
}

func TestBufferBuilder_Writes(t *testing.T) {
	for _, test := range bufferBuilderWritesTests {
		t.Run(test.name, func(t *testing.T) {
			got := test.bb.Write(test.text).Buffer()
			if diff := cmp.Diff(test.want, got, cmpopts()...); diff != "" {
				t.Errorf("Buffer (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBufferBuilder_StyledAndDot(t *testing.T) {
	bb := NewBufferBuilder(10)
	bb.Write("a", ui.Style{Bold: true}).SetDotHere().Write("b")
	want := &Buffer{Width: 10, Lines: [][]Cell{{{"a", "1"}, {"b", ""}}}, Dot: Pos{0, 1}}
	if diff := cmp.Diff(want, bb.Buffer(), cmpopts()...); diff != "" {
		t.Errorf("Buffer (-want +got):\n%s", diff)
	}
}

func TestBuffer_ExtendRight(t *testing.T) {
	b1 := NewBufferBuilder(2).Write("a\nb").Buffer()
	b1.Width = 2
	b2 := NewBufferBuilder(2).Write("x\ny\nz").Buffer()
	got := b1.ExtendRight(b2, false)
	want := []string{"a x", "b y", "  z"}
	if diff := cmp.Diff(want, got.PlainLines()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if got.Width != 4 {
		t.Errorf("Width = %d, want 4", got.Width)
	}
}

func TestBuffer_ExtendDown(t *testing.T) {
	b1 := NewBufferBuilder(2).Write("a").Buffer()
	b2 := NewBufferBuilder(5).Write("bc").SetDotHere().Buffer()
	got := b1.ExtendDown(b2, true)
	if diff := cmp.Diff([]string{"a", "bc"}, got.PlainLines()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if got.Width != 5 || got.Dot != (Pos{1, 2}) {
		t.Errorf("Width, Dot = %d, %v, want 5, {1 2}", got.Width, got.Dot)
	}
}

func TestBuffer_Fit(t *testing.T) {
	b := NewBufferBuilder(5).Write("a\nb\nc\nd").SetDotHere().Buffer()
	b.Fit(3, 2)
	if diff := cmp.Diff([]string{"a", "b"}, b.PlainLines()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if b.Width != 3 || b.Dot != (Pos{1, 0}) {
		t.Errorf("Width, Dot = %d, %v, want 3, {1 0}", b.Width, b.Dot)
	}

	b.Fit(3, 4)
	if len(b.Lines) != 4 {
		t.Errorf("got %d lines after growing, want 4", len(b.Lines))
	}

	b.Fit(0, 4)
	if b.Width != 0 || b.Lines != nil {
		t.Errorf("Fit(0, 4) = %v, want empty", b)
	}
}

func TestBuffer_Blank(t *testing.T) {
	b := NewBufferBuilder(5).Write("ab\nc", ui.Style{Inverse: true}).Buffer()
	b.Blank()
	want := [][]Cell{{{" ", ""}, {" ", ""}}, {{" ", ""}}}
	if diff := cmp.Diff(want, b.Lines); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestFirstDiff(t *testing.T) {
	a := []Cell{{"a", ""}, {"b", ""}}
	tests := []struct {
		b        []Cell
		wantI    int
		wantSame bool
	}{
		{[]Cell{{"a", ""}, {"b", ""}}, 2, true},
		{[]Cell{{"a", ""}, {"c", ""}}, 1, false},
		{[]Cell{{"a", ""}, {"b", "1"}}, 1, false},
		{[]Cell{{"a", ""}}, 1, false},
		{[]Cell{{"a", ""}, {"b", ""}, {"c", ""}}, 2, false},
	}
	for _, test := range tests {
		i, same := firstDiff(a, test.b)
		if i != test.wantI || same != test.wantSame {
			t.Errorf("firstDiff(%v, %v) = (%v, %v), want (%v, %v)",
				a, test.b, i, same, test.wantI, test.wantSame)
		}
	}
}

// Empty and nil line slices are equivalent for the purpose of these tests.
func cmpopts() []cmp.Option {
	return []cmp.Option{cmp.Comparer(func(a, b []Cell) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	})}
}
