package buildinfo

import "testing"

func withStamp(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = version, commit, date
}

func TestShort(t *testing.T) {
	tests := []struct {
		version, commit string
		want            string
	}{
		{"dev", "unknown", "dev"},
		{"v1.2.0", "abc", "v1.2.0"},
		{"dev", "0123456789abcdef", "0123456789ab"},
		{"", "abc", "abc"},
	}
	for _, tt := range tests {
		withStamp(t, tt.version, tt.commit, "unknown")
		if got := Short(); got != tt.want {
			t.Fatalf("Short() with %q/%q = %q want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	withStamp(t, "v0.3.0", "abc123", "2026-01-02")
	if got := String(); got != "v0.3.0 (abc123, 2026-01-02)" {
		t.Fatalf("String()=%q", got)
	}
}
