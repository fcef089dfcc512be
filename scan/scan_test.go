package scan

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestExtractBalanced(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		parenDepth   int
		bracketDepth int
		want         string
		wantErr      bool
	}{
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "stops at boundary after closing",
			text: "(a,b) x",
			want: "(a,b)",
		},
		{
			name: "nested parentheses",
			text: "(a(b,c),d)rest",
			want: "(a(b,c),d)",
		},
		{
			name: "brackets tracked separately",
			text: "(x[1,2],y)z",
			want: "(x[1,2],y)",
		},
		{
			name: "whole input balanced",
			text: "(a(b,c),d)",
			want: "(a(b,c),d)",
		},
		{
			name:       "nonzero paren target",
			text:       "(a(b)c)",
			parenDepth: 1,
			want:       "(",
		},
		{
			name:    "unclosed parenthesis",
			text:    "(a,b",
			wantErr: true,
		},
		{
			name:    "unclosed bracket",
			text:    "([a)",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBalanced(tt.text, tt.parenDepth, tt.bracketDepth)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBalanced(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnbalanced) {
					t.Errorf("error = %v, want ErrUnbalanced", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ExtractBalanced(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitByDepth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		depth int
		want  []string
	}{
		{
			name:  "inner scopes emptied at depth one",
			text:  "foo(bar(quz) + faz) + baz(buz(cas))",
			depth: 1,
			want:  []string{"(bar() + faz)", "(buz())"},
		},
		{
			name:  "adjacent scopes split",
			text:  "f(a)g(b)",
			depth: 1,
			want:  []string{"(a)", "(b)"},
		},
		{
			name:  "depth zero keeps one segment",
			text:  "foo(bar) baz",
			depth: 0,
			want:  []string{"foo() baz"},
		},
		{
			name:  "no parentheses",
			text:  "plain",
			depth: 0,
			want:  []string{"plain"},
		},
		{
			name:  "empty input",
			text:  "",
			depth: 0,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitByDepth(tt.text, tt.depth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitByDepth(%q, %d) = %q, want %q", tt.text, tt.depth, got, tt.want)
			}
		})
	}
}

func TestSplitOn(t *testing.T) {
	tests := []struct {
		name    string
		sep     string
		text    string
		want    []string
		wantErr bool
	}{
		{
			name: "separators inside parentheses kept",
			sep:  ",",
			text: "f(a,b),g(c)",
			want: []string{"f(a,b)", "g(c)"},
		},
		{
			name: "separators inside brackets kept",
			sep:  ",",
			text: "a[1,2],b",
			want: []string{"a[1,2]", "b"},
		},
		{
			name: "no separator",
			sep:  ",",
			text: "abc",
			want: []string{"abc"},
		},
		{
			name: "empty input",
			sep:  ",",
			text: "",
			want: []string{""},
		},
		{
			name: "trailing separator yields empty piece",
			sep:  ",",
			text: "a,",
			want: []string{"a", ""},
		},
		{
			name:    "empty separator rejected",
			sep:     "",
			text:    "a,b",
			wantErr: true,
		},
		{
			name:    "long separator rejected",
			sep:     ", ",
			text:    "a, b",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitOn(tt.sep, tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitOn(%q, %q) error = %v, wantErr %v", tt.sep, tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrBadSeparator) {
					t.Errorf("error = %v, want ErrBadSeparator", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitOn(%q, %q) = %q, want %q", tt.sep, tt.text, got, tt.want)
			}
			if joined := strings.Join(got, tt.sep); joined != tt.text {
				t.Errorf("join of pieces = %q, want original %q", joined, tt.text)
			}
		})
	}
}

func TestSplitOutsideQuotes(t *testing.T) {
	tests := []struct {
		name    string
		sep     string
		text    string
		want    []string
		wantErr bool
	}{
		{
			name: "single-quoted run protected",
			sep:  ",",
			text: "a,'b,c',d",
			want: []string{"a", "'b,c'", "d"},
		},
		{
			name: "double-quoted run protected",
			sep:  ",",
			text: `a,"b,c",d`,
			want: []string{"a", `"b,c"`, "d"},
		},
		{
			name: "doubled single quote is literal",
			sep:  ",",
			text: "'it''s, here',x",
			want: []string{"'it''s, here'", "x"},
		},
		{
			name: "doubled double quote is literal",
			sep:  ",",
			text: `"say ""hi"", ok",y`,
			want: []string{`"say ""hi"", ok"`, "y"},
		},
		{
			name: "quote of other kind inside run",
			sep:  ",",
			text: `"a'b",c`,
			want: []string{`"a'b"`, "c"},
		},
		{
			name: "unterminated run protects remainder",
			sep:  ",",
			text: "a,'b,c",
			want: []string{"a", "'b,c"},
		},
		{
			name:    "long separator rejected",
			sep:     "ab",
			text:    "x",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitOutsideQuotes(tt.sep, tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SplitOutsideQuotes(%q, %q) error = %v, wantErr %v", tt.sep, tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrBadSeparator) {
					t.Errorf("error = %v, want ErrBadSeparator", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitOutsideQuotes(%q, %q) = %q, want %q", tt.sep, tt.text, got, tt.want)
			}
			if joined := strings.Join(got, tt.sep); joined != tt.text {
				t.Errorf("join of pieces = %q, want original %q", joined, tt.text)
			}
		})
	}
}
