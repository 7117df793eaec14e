package utils

import "testing"

// TestSanitizeFilename tests filename sanitization.
func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"  report.pdf  ", "report.pdf"},
		{"my report.pdf", "my_report.pdf"},
		{"../../etc/passwd.pdf", "passwd.pdf"},
		{"..\\..\\boot.pdf", "boot.pdf"},
		{"/tmp/evil.pdf", "evil.pdf"},
		{"....pdf", "pdf"},
		{"na\x00me.pdf", "name.pdf"},
		{"报告.pdf", "pdf"},
		{"", ""},
		{"..", ""},
		{"///", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

// TestSanitizeHeaderFilename tests header filename cleanup.
func TestSanitizeHeaderFilename(t *testing.T) {
	if got := SanitizeHeaderFilename("a\r\nb\".pdf"); got != "ab.pdf" {
		t.Fatalf("expect ab.pdf, got %q", got)
	}
	if got := SanitizeHeaderFilename("  "); got != "download" {
		t.Fatalf("expect download, got %q", got)
	}
}
