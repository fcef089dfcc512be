package macro

import (
	"errors"
	"testing"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		wantValue  string
		wantKey    string
		wantErr    bool
	}{
		{
			name:       "plain definition",
			definition: "docs = https://example.com/docs",
			wantValue:  "https://example.com/docs",
			wantKey:    "|docs|",
		},
		{
			name:       "whitespace trimmed",
			definition: "  media =   ../media  ",
			wantValue:  "../media",
			wantKey:    "|media|",
		},
		{
			name:       "value may contain equals",
			definition: "q = a=b",
			wantValue:  "a=b",
			wantKey:    "|q|",
		},
		{
			name:       "empty value allowed",
			definition: "blank =",
			wantValue:  "",
			wantKey:    "|blank|",
		},
		{
			name:       "missing equals",
			definition: "just a name",
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			value, key, err := r.Register(tt.definition)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register(%q) error = %v, wantErr %v", tt.definition, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrNoDefinition) {
					t.Errorf("error = %v, want ErrNoDefinition", err)
				}
				return
			}
			if value != tt.wantValue || key != tt.wantKey {
				t.Errorf("Register(%q) = (%q, %q), want (%q, %q)",
					tt.definition, value, key, tt.wantValue, tt.wantKey)
			}
			if r.Len() != 1 {
				t.Errorf("Len() = %d, want 1", r.Len())
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	if _, _, err := r.Register("docs = https://example.com"); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	// Same key, same value: accepted without growing the table.
	if _, _, err := r.Register("docs = https://example.com"); err != nil {
		t.Fatalf("idempotent Register: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after idempotent re-registration, want 1", r.Len())
	}

	// Same key, different value: rejected with both values reported.
	_, _, err := r.Register("docs = https://other.example.com")
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Register with differing value: error = %v, want *ConflictError", err)
	}
	if conflict.Key != "|docs|" {
		t.Errorf("conflict.Key = %q, want %q", conflict.Key, "|docs|")
	}
	if conflict.Existing != "https://example.com" {
		t.Errorf("conflict.Existing = %q, want %q", conflict.Existing, "https://example.com")
	}
	if conflict.Proposed != "https://other.example.com" {
		t.Errorf("conflict.Proposed = %q, want %q", conflict.Proposed, "https://other.example.com")
	}
	if r.Substitute("|docs|") != "https://example.com" {
		t.Errorf("registry modified by rejected registration")
	}
}

func TestSubstitute(t *testing.T) {
	r := NewRegistry()
	for _, def := range []string{
		"docs = https://example.com/docs",
		"media = ../media",
		"docroot = https://example.com/docs",
	} {
		if _, _, err := r.Register(def); err != nil {
			t.Fatalf("Register(%q): %v", def, err)
		}
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "single occurrence",
			text: "see |docs| for details",
			want: "see https://example.com/docs for details",
		},
		{
			name: "key adjacent to a path",
			text: "|docroot|/page.html",
			want: "https://example.com/docs/page.html",
		},
		{
			name: "every occurrence replaced",
			text: "|media|/a.png and |media|/b.png",
			want: "../media/a.png and ../media/b.png",
		},
		{
			name: "unregistered key untouched",
			text: "see |unknown| here",
			want: "see |unknown| here",
		},
		{
			name: "no keys at all",
			text: "plain text",
			want: "plain text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Substitute(tt.text); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSubstituteIdempotent(t *testing.T) {
	r := NewRegistry()
	if _, _, err := r.Register("base = https://example.com"); err != nil {
		t.Fatal(err)
	}
	once := r.Substitute("go to |base|/index.html")
	twice := r.Substitute(once)
	if once != twice {
		t.Errorf("second substitution changed text: %q then %q", once, twice)
	}
}
