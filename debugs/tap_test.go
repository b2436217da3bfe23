package debugs

import (
	"testing"

	"github.com/reusee/dix/dixlang"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	store := dixlang.NewStore()
	store.Set("foo", dixlang.Num(42))
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", store, nil)
	})
}
