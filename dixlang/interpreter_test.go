package dixlang

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/reusee/dix/logs"
	"github.com/reusee/dix/modes"
	"github.com/reusee/dscope"
)

func run(t *testing.T, code string) *Store {
	t.Helper()
	store, err := new(Interpreter).Run(t.Context(), NewSource("test.dix", code))
	if err != nil {
		t.Fatalf("src: %s, err: %v", code, err)
	}
	return store
}

func expectVar(t *testing.T, store *Store, name string, expect Value) {
	t.Helper()
	v, ok := store.Get(name)
	if !ok {
		t.Fatalf("%s not found", name)
	}
	if v != expect {
		t.Fatalf("%s: expected %v (%v), got %v (%v)", name, expect, expect.Kind(), v, v.Kind())
	}
}

func TestRun(t *testing.T) {
	store := run(t, "num x; x = 5; x = x + 1;")
	expectVar(t, store, "x", Num(6))

	store = run(t, "if (1 < 2) { num y; y = 9; }")
	expectVar(t, store, "y", Num(9))

	store = run(t, "num i; i = 0; while (i < 3) { i = i + 1; }")
	expectVar(t, store, "i", Num(3))
}

func TestDeclaration(t *testing.T) {
	store := run(t, "num n; str s;")
	expectVar(t, store, "n", Num(0))
	expectVar(t, store, "s", Text(""))

	// redeclaration keeps the value
	store = run(t, "num x; x = 3; num x;")
	expectVar(t, store, "x", Num(3))

	store = run(t, `num x = 5; str s = "hi"; s = s + "!";`)
	expectVar(t, store, "x", Num(5))
	expectVar(t, store, "s", Text("hi!"))

	// assignment without declaration creates the variable
	store = run(t, "z = 1;")
	expectVar(t, store, "z", Num(1))
}

func TestControlFlow(t *testing.T) {
	store := run(t, "num n; while (n > 0) { n = n + 1; }")
	expectVar(t, store, "n", Num(0))

	store = run(t, "num n; if (n < 1) { n = n + 1; }")
	expectVar(t, store, "n", Num(1))

	store = run(t, "num n; if (n > 1) { n = 9; }")
	expectVar(t, store, "n", Num(0))

	store = run(t, `
		num i; num j; num total;
		while (i < 3) {
			j = 0;
			while (j < 4) {
				total = total + 1;
				j = j + 1;
			}
			i = i + 1;
		}
	`)
	expectVar(t, store, "total", Num(12))

	// truthiness
	store = run(t, `
		num a; str s; num hits;
		if (a) { hits = hits + 1; }
		if (s) { hits = hits + 10; }
		s = "x";
		a = 2;
		if (a) { hits = hits + 100; }
		if (s) { hits = hits + 1000; }
	`)
	expectVar(t, store, "hits", Num(1100))

	// blocks share the store
	store = run(t, "{ num a; { a = 2; } } a = a * 3;")
	expectVar(t, store, "a", Num(6))
}

func TestExecValue(t *testing.T) {
	store := NewStore()
	interpreter := new(Interpreter)
	value, err := interpreter.Exec(t.Context(), NewSource("", "num x; x = 40;"), store)
	if err != nil {
		t.Fatal(err)
	}
	if value != Num(40) {
		t.Fatalf("got %v", value)
	}
	value, err = interpreter.Exec(t.Context(), NewSource("", "x + 2;"), store)
	if err != nil {
		t.Fatal(err)
	}
	if value != Num(42) {
		t.Fatalf("got %v", value)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		code  string
		check func(err error) bool
	}{
		{"x = y + 1;", func(err error) bool {
			var e *UndeclaredVariableError
			return errors.As(err, &e) && e.Name == "y"
		}},
		{`str s; num n; n = s - 1;`, func(err error) bool {
			var e *TypeMismatchError
			return errors.As(err, &e) && e.Operator == "-" && e.Left == KindText && e.Right == KindNumber
		}},
		{`str s; num n; n = n + s;`, func(err error) bool {
			var e *TypeMismatchError
			return errors.As(err, &e) && e.Operator == "+" && e.Left == KindNumber && e.Right == KindText
		}},
		{`num n; n = 1 < "a";`, func(err error) bool {
			var e *TypeMismatchError
			return errors.As(err, &e) && e.Operator == "<"
		}},
		{`num n; n = (1 < 2) < (2 < 3);`, func(err error) bool {
			var e *TypeMismatchError
			return errors.As(err, &e) && e.Left == KindBool
		}},
		{"num n; n = 1 / 0;", func(err error) bool {
			var e *DivisionByZeroError
			return errors.As(err, &e)
		}},
		{"nope(1);", func(err error) bool {
			var e *UnknownIntrinsicError
			return errors.As(err, &e) && e.Name == "nope"
		}},
		{"while (x < 1) { }", func(err error) bool {
			var e *UndeclaredVariableError
			return errors.As(err, &e) && e.Name == "x"
		}},
	}
	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			_, err := new(Interpreter).Run(t.Context(), NewSource("test.dix", test.code))
			if err == nil {
				t.Fatal("should error")
			}
			if !test.check(err) {
				t.Fatalf("got %v", err)
			}
			var posErr PosError
			if !errors.As(err, &posErr) {
				t.Fatalf("no position: %v", err)
			}
		})
	}
}

func TestErrorStopsRun(t *testing.T) {
	store, err := new(Interpreter).Run(t.Context(), NewSource("test.dix", "num a; a = 1; a = b; a = 2;"))
	if err == nil {
		t.Fatal("should error")
	}
	expectVar(t, store, "a", Num(1))

	var posErr PosError
	if !errors.As(err, &posErr) {
		t.Fatal()
	}
	if posErr.Pos.Line != 1 || posErr.Pos.Column != 15 {
		t.Fatalf("got %v", posErr.Pos)
	}
}

func TestParseFailureRunsNothing(t *testing.T) {
	store, err := new(Interpreter).Run(t.Context(), NewSource("test.dix", "num a; a = 1; a = (2;"))
	if err == nil {
		t.Fatal("should error")
	}
	if store.Len() != 0 {
		t.Fatalf("got %v", store)
	}
}

func TestStepLimit(t *testing.T) {
	interpreter := &Interpreter{
		MaxSteps: 100,
	}
	_, err := interpreter.Run(t.Context(), NewSource("test.dix", "num i; while (1) { i = i + 1; }"))
	var limitErr *StepLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("got %v", err)
	}
	if limitErr.Limit != 100 {
		t.Fatalf("got %d", limitErr.Limit)
	}

	store, err := interpreter.Run(t.Context(), NewSource("test.dix", "num i; while (i < 10) { i = i + 1; }"))
	if err != nil {
		t.Fatal(err)
	}
	expectVar(t, store, "i", Num(10))
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	interpreter := &Interpreter{
		Intrinsics: Intrinsics{
			"stop": func(context.Context, []Value) (Value, error) {
				cancel()
				return Value{}, nil
			},
		},
	}
	store, err := interpreter.Run(ctx, NewSource("test.dix", "num i; while (1) { i = i + 1; if (i == 5) { stop(); } }"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
	expectVar(t, store, "i", Num(5))
}

func TestStrictLexing(t *testing.T) {
	code := "num x; x = 1; @"
	interpreter := &Interpreter{
		StrictLexing: true,
	}
	_, err := interpreter.Run(t.Context(), NewSource("test.dix", code))
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}

	// lenient lexing leaves the lexeme to the parser
	_, err = new(Interpreter).Run(t.Context(), NewSource("test.dix", code))
	if err == nil || errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
}

func TestIntrinsicError(t *testing.T) {
	boom := errors.New("boom")
	interpreter := &Interpreter{
		Intrinsics: Intrinsics{
			"fail": func(context.Context, []Value) (Value, error) {
				return Value{}, boom
			},
		},
	}
	_, err := interpreter.Run(t.Context(), NewSource("test.dix", "fail();"))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "fail: boom") {
		t.Fatalf("got %v", err)
	}
}

func TestHugeLiteral(t *testing.T) {
	store := run(t, "num x; x = 1"+strings.Repeat("0", 400)+";")
	v, _ := store.Get("x")
	if f, ok := v.Float(); !ok || !math.IsInf(f, 1) {
		t.Fatalf("got %v", v)
	}
}

func TestStoreString(t *testing.T) {
	store := run(t, `str s; num x; s = "hi"; x = 6;`)
	if got := store.String(); got != "s = \"hi\"\nx = 6\n" {
		t.Fatalf("got %q", got)
	}
	var names []string
	for name := range store.All() {
		names = append(names, name)
	}
	if strings.Join(names, ",") != "s,x" {
		t.Fatalf("got %v", names)
	}
}

func TestModule(t *testing.T) {
	buf := new(bytes.Buffer)
	var printed []Value
	dscope.New(
		new(Module),
		modes.ForTest(t),
		func() Intrinsics {
			return Intrinsics{
				"print": func(_ context.Context, args []Value) (Value, error) {
					printed = append(printed, args...)
					return Value{}, nil
				},
			}
		},
	).Fork(
		func() logs.Writer {
			return buf
		},
	).Call(func(
		interpreter *Interpreter,
	) {
		store, err := interpreter.Run(t.Context(), NewSource("module.dix", `
			num i;
			while (i < 3) {
				i = i + 1;
				print(i * 2);
			}
		`))
		if err != nil {
			t.Fatal(err)
		}
		expectVar(t, store, "i", Num(3))
		if len(printed) != 3 || printed[2] != Num(6) {
			t.Fatalf("got %v", printed)
		}
		if !strings.Contains(buf.String(), "run done") {
			t.Fatalf("got %s", buf.String())
		}
	})
}
