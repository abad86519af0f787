package validate

import "testing"

func TestRequired(t *testing.T) {
	if Required("name", "ok") != nil {
		t.Fatal("non-empty value must pass")
	}
	if ef := Required("name", "   "); ef == nil || ef.Field != "name" {
		t.Fatalf("blank value must fail with field name, got %+v", ef)
	}
}

func TestMinInt(t *testing.T) {
	if MinInt("amount", 5, 1) != nil {
		t.Fatal("5 >= 1 must pass")
	}
	if MinInt("amount", 0, 1) == nil {
		t.Fatal("0 < 1 must fail")
	}
}

func TestIntRange(t *testing.T) {
	for _, v := range []int{1, 6, 12} {
		if IntRange("month", v, 1, 12) != nil {
			t.Fatalf("%d must pass", v)
		}
	}
	for _, v := range []int{0, 13, -4} {
		if IntRange("month", v, 1, 12) == nil {
			t.Fatalf("%d must fail", v)
		}
	}
}

func TestErrsError(t *testing.T) {
	e := Errs{
		{Field: "month", Msg: "required"},
		{Field: "amount", Msg: "must be >= 0"},
	}
	want := "month: required; amount: must be >= 0"
	if e.Error() != want {
		t.Fatalf("got %q, want %q", e.Error(), want)
	}
}
