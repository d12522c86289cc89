package attempt

import "testing"

func TestOption_SomeAndNone(t *testing.T) {
	t.Parallel()

	some := Some(5)
	if !some.IsDefined() || some.IsEmpty() {
		t.Fatalf("expected defined option")
	}
	if v, ok := some.Get(); !ok || v != 5 {
		t.Fatalf("expected (5, true), got: (%v, %v)", v, ok)
	}

	none := None[int]()
	if none.IsDefined() || !none.IsEmpty() {
		t.Fatalf("expected empty option")
	}
	if _, ok := none.Get(); ok {
		t.Fatalf("expected no value")
	}
}

func TestOption_GetOrElseLazy(t *testing.T) {
	t.Parallel()

	evaluated := false
	v := Some(3).GetOrElse(func() int {
		evaluated = true
		return 0
	})
	if v != 3 || evaluated {
		t.Fatalf("fallback must not be evaluated when defined")
	}

	if v := None[int]().GetOrElse(func() int { return 9 }); v != 9 {
		t.Fatalf("expected fallback 9, got: %v", v)
	}
}

func TestOption_ForEach(t *testing.T) {
	t.Parallel()

	sum := 0
	Some(2).ForEach(func(v int) { sum += v })
	None[int]().ForEach(func(v int) { sum += 100 })
	if sum != 2 {
		t.Fatalf("expected 2, got: %v", sum)
	}
}
