package debugs

import (
	"github.com/reusee/dix/dixlang"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v dixlang.Value) starlark.Value {
	switch v.Kind() {
	case dixlang.KindNumber:
		f, _ := v.Float()
		if f == float64(int64(f)) {
			return starlark.MakeInt64(int64(f))
		}
		return starlark.Float(f)
	case dixlang.KindText:
		s, _ := v.Str()
		return starlark.String(s)
	case dixlang.KindBool:
		b, _ := v.Boolean()
		return starlark.Bool(b)
	}
	return starlark.None
}

// storeGlobals exposes every variable of store, a show function rendering the store,
// and a dix function running more source against it.
func storeGlobals(store *dixlang.Store, exec func(src string) error) starlark.StringDict {
	globals := make(starlark.StringDict, store.Len()+2)
	for name, value := range store.All() {
		globals[name] = toStarlarkValue(value)
	}
	globals["show"] = starlarkutil.MakeFunc("show", func() string {
		return store.String()
	})
	if exec != nil {
		globals["dix"] = starlark.NewBuiltin("dix", func(
			_ *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			var src string
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &src); err != nil {
				return nil, err
			}
			if err := exec(src); err != nil {
				return nil, err
			}
			return starlark.None, nil
		})
	}
	return globals
}
