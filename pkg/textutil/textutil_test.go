package textutil

import (
	"reflect"
	"testing"
)

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"true", true},
		{"YES", true},
		{"y", true},
		{" On ", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CoerceBool(tt.in); got != tt.want {
				t.Errorf("CoerceBool(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUniq(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "case-insensitive duplicates",
			in:   []string{"a@x.com", "A@X.COM", "b@x.com"},
			want: []string{"a@x.com", "b@x.com"},
		},
		{
			name: "trims and drops empties",
			in:   []string{" a@x.com ", "", "  "},
			want: []string{"a@x.com"},
		},
		{
			name: "preserves first-seen order",
			in:   []string{"c@x.com", "a@x.com", "C@x.com", "b@x.com"},
			want: []string{"c@x.com", "a@x.com", "b@x.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Uniq(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Uniq(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	if got := ParseInt(" 587 ", 25); got != 587 {
		t.Errorf("ParseInt(\" 587 \") = %d, want 587", got)
	}
	if got := ParseInt("not-a-number", 25); got != 25 {
		t.Errorf("ParseInt fallback = %d, want 25", got)
	}
}

func TestSplitEmailList(t *testing.T) {
	got := SplitEmailList("a@x.com; b@x.com,A@x.com ,")
	want := []string{"a@x.com", "b@x.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitEmailList = %v, want %v", got, want)
	}
	if got := SplitEmailList(""); got != nil {
		t.Errorf("SplitEmailList(\"\") = %v, want nil", got)
	}
}
