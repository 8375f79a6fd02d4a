package parser

import (
	"errors"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: "  7  ", want: 7},
		{in: "-3", want: -3},
		{in: "0", want: 0},
		{in: "", wantErr: true},
		{in: "ten", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "1 2", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Int(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrNotANumber) {
				t.Fatalf("Int(%q): expected ErrNotANumber, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Int(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Int(%q)=%d want=%d", tc.in, got, tc.want)
		}
	}
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		in    string
		value bool
		ok    bool
	}{
		{in: "yes", value: true, ok: true},
		{in: "Y", value: true, ok: true},
		{in: "  YES ", value: true, ok: true},
		{in: "yse", value: true, ok: true}, // one-edit typo
		{in: "ye", value: true, ok: true},
		{in: "no", value: false, ok: true},
		{in: "N", value: false, ok: true},
		{in: "nO", value: false, ok: true},
		{in: "", ok: false},
		{in: "maybe", ok: false},
		{in: "42", ok: false},
	}
	for _, tc := range tests {
		value, ok := YesNo(tc.in)
		if ok != tc.ok || (ok && value != tc.value) {
			t.Fatalf("YesNo(%q)=(%v,%v) want=(%v,%v)", tc.in, value, ok, tc.value, tc.ok)
		}
	}
}
