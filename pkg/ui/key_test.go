package ui

import (
	"testing"

	"src.prismdeck.dev/pkg/tt"
)

func TestK(t *testing.T) {
	tt.Test(t, tt.Fn("K", K), tt.Table{
		tt.Args('a').Rets(Key{'a', 0}),
		tt.Args('a', Alt).Rets(Key{'a', Alt}),
		tt.Args('a', Alt, Ctrl).Rets(Key{'a', Alt | Ctrl}),
	})
}

func TestKeyString(t *testing.T) {
	tt.Test(t, tt.Fn("Key.String", Key.String), tt.Table{
		tt.Args(K('a')).Rets("a"),
		tt.Args(K('a', Alt)).Rets("Alt-a"),
		tt.Args(K('a', Ctrl, Alt, Shift)).Rets("Ctrl-Alt-Shift-a"),
		tt.Args(K(Tab)).Rets("Tab"),
		tt.Args(K(' ')).Rets("Space"),
		tt.Args(K(F1)).Rets("F1"),
		tt.Args(K(Left)).Rets("Left"),
		tt.Args(K(Tab, Shift)).Rets("Shift-Tab"),
		tt.Args(K(-2000)).Rets("(bad function key -2000)"),
	})
}
