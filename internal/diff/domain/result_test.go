package domain

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Unchanged, "Unchanged"},
		{Added, "Added"},
		{Removed, "Removed"},
		{Header, "Header"},
		{Kind(99), "Unknown"}, // Invalid kind
		{Kind(-1), "Unknown"}, // Negative kind
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.kind.String()
			if got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountByKind(t *testing.T) {
	lines := []DiffLine{
		{Kind: Unchanged},
		{Kind: Added},
		{Kind: Added},
		{Kind: Removed},
		{Kind: Header}, // never produced by the engine, never counted
	}

	got := CountByKind(lines)
	want := Stats{Added: 2, Removed: 1, Unchanged: 1}
	if got != want {
		t.Errorf("CountByKind() = %+v, want %+v", got, want)
	}
}

func TestStats_Changed(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  bool
	}{
		{"no changes", Stats{Unchanged: 10}, false},
		{"added only", Stats{Added: 1}, true},
		{"removed only", Stats{Removed: 1}, true},
		{"empty", Stats{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.Changed(); got != tt.want {
				t.Errorf("Changed() = %v, want %v", got, tt.want)
			}
		})
	}
}
