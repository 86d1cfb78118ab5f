package version

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
		wantErr  bool
	}{
		{"older patch", "1.0.0", "1.0.1", -1, false},
		{"older minor", "1.0.0", "1.1.0", -1, false},
		{"older major", "1.0.0", "2.0.0", -1, false},
		{"equal", "1.2.3", "1.2.3", 0, false},
		{"newer", "1.1.0", "1.0.0", 1, false},
		{"v prefix left", "v1.0.0", "1.0.1", -1, false},
		{"v prefix right", "1.0.0", "v1.0.1", -1, false},
		{"two-part release", "1.0", "1.0.1", -1, false},
		{"prerelease less than release", "1.0.0-beta", "1.0.0", -1, false},
		{"prerelease comparison", "1.0.0-alpha", "1.0.0-beta", -1, false},
		{"compact beta less than release", "0.0.5b1", "0.0.5", -1, false},
		{"compact beta ordering", "0.0.5b1", "0.0.5b2", -1, false},
		{"compact beta numeric ordering", "0.0.5b9", "0.0.5b10", -1, false},
		{"compact rc above beta", "1.0.0b1", "1.0.0rc1", -1, false},
		{"local outranks bare release", "0.0.5", "0.0.5+dev", -1, false},
		{"local outranks bare release reversed", "0.0.3+dev", "0.0.3", 1, false},
		{"equal locals", "0.0.5+dev", "0.0.5+dev", 0, false},
		{"numeric locals", "1.0.0+1", "1.0.0+2", -1, false},
		{"numeric local outranks alphanumeric", "1.0.0+abc", "1.0.0+1", -1, false},
		{"longer local wins on prefix tie", "1.0.0+dev", "1.0.0+dev.1", -1, false},
		{"local separators normalized", "1.0.0+dev-1", "1.0.0+dev.1", 0, false},
		{"release outranks local of lower release", "0.0.5", "0.0.4+dev", 1, false},
		{"invalid left", "notaversion", "1.0.0", 0, true},
		{"invalid right", "1.0.0", "notaversion", 0, true},
		{"empty string", "", "1.0.0", 0, true},
		{"trailing plus", "1.0.0+", "1.0.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compare(tt.a, tt.b)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestParsePreservesOriginal(t *testing.T) {
	for _, raw := range []string{"0.0.3+dev", "0.0.5b1", "v1.2.3"} {
		v, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if v.String() != raw {
			t.Errorf("String() = %q, want %q", v.String(), raw)
		}
	}
}

func TestCompareIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"0.0.5b1", "0.0.5"},
		{"0.0.5", "0.0.5+dev"},
		{"1.0.0", "1.0.1"},
	}
	for _, p := range pairs {
		forward, err := Compare(p[0], p[1])
		if err != nil {
			t.Fatalf("Compare(%q, %q): %v", p[0], p[1], err)
		}
		backward, err := Compare(p[1], p[0])
		if err != nil {
			t.Fatalf("Compare(%q, %q): %v", p[1], p[0], err)
		}
		if forward != -backward {
			t.Errorf("Compare(%q, %q) = %d but reversed = %d", p[0], p[1], forward, backward)
		}
	}
}
