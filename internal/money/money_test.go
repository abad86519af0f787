package money

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in  string
		out Cents
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"-12.50", -1250, true},
		{"+3.10", 310, true},
		{"1.005", 101, true}, // half-up on the third decimal
		{"1.004", 100, true},
		{" 2.50 ", 250, true},
		{".5", 50, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"-", 0, false},
		{"1e3", 0, false},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   Cents
		want string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{123, "1.23"},
		{-1250, "-12.50"},
		{100050, "1000.50"},
	}
	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Fatalf("%d expected %q, got %q", int64(tc.in), tc.want, got)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Cents(1550))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "15.50" {
		t.Fatalf("expected 15.50, got %s", b)
	}

	var c Cents
	if err := json.Unmarshal([]byte(`15.5`), &c); err != nil || c != 1550 {
		t.Fatalf("number: expected 1550, got %d (err=%v)", c, err)
	}
	if err := json.Unmarshal([]byte(`"15.50"`), &c); err != nil || c != 1550 {
		t.Fatalf("string: expected 1550, got %d (err=%v)", c, err)
	}
	if err := json.Unmarshal([]byte(`"nope"`), &c); err == nil {
		t.Fatal("expected error for non-decimal string")
	}
}
