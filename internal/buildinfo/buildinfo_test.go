package buildinfo

import "testing"

func withStamp(t *testing.T, version, commit string) {
	t.Helper()
	v, c := Version, Commit
	Version, Commit = version, commit
	t.Cleanup(func() { Version, Commit = v, c })
}

func TestShort(t *testing.T) {
	cases := []struct {
		version, commit, want string
	}{
		{"dev", "unknown", "dev"},
		{"v1.2.0", "abc", "v1.2.0"},
		{"dev", "abc123", "abc123"},
		{"", "0123456789abcdef", "0123456789ab"},
	}
	for _, tc := range cases {
		withStamp(t, tc.version, tc.commit)
		if got := Short(); got != tc.want {
			t.Fatalf("Short() with version=%q commit=%q = %q, want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}

func TestString(t *testing.T) {
	withStamp(t, "v0.3.1", "deadbeef")
	d := Date
	Date = "2024-05-01"
	t.Cleanup(func() { Date = d })

	if got, want := String(), "orbs v0.3.1 (commit deadbeef, built 2024-05-01)"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}
