package utils

import "testing"

func TestFixAndCleanPath(t *testing.T) {
	datas := map[string]string{
		"":            "/",
		".././":       "/",
		"../../.../":  "/...",
		"x//\\y/":     "/x/y",
		"/docs/../up": "/up",
	}
	for key, value := range datas {
		if got := FixAndCleanPath(key); got != value {
			t.Errorf("FixAndCleanPath(%q) = %q, want %q", key, got, value)
		}
	}
}

func TestIsSubPath(t *testing.T) {
	testCases := []struct {
		path     string
		subPath  string
		expected bool
	}{
		{"/docs", "/docs", true},
		{"/docs", "/docs/sub", true},
		{"/docs", "/docs2", false},
		{"/docs/sub", "/docs", false},
		{"/", "/anything", true},
	}
	for _, tc := range testCases {
		if got := IsSubPath(tc.path, tc.subPath); got != tc.expected {
			t.Errorf("IsSubPath(%q, %q) = %v, want %v", tc.path, tc.subPath, got, tc.expected)
		}
	}
}

func TestSplitExt(t *testing.T) {
	testCases := []struct {
		name string
		base string
		ext  string
	}{
		{"report.txt", "report", ".txt"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".profile", ".profile", ""},
		{"a.b/", "a.b/", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			base, ext := SplitExt(tc.name)
			if base != tc.base || ext != tc.ext {
				t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)", tc.name, base, ext, tc.base, tc.ext)
			}
		})
	}
}

func TestEncodeQueryValue(t *testing.T) {
	datas := map[string]string{
		"/docs/a b":   "%2Fdocs%2Fa%20b",
		"c++ notes":   "c%2B%2B%20notes",
		"a;b":         "a%3Bb",
		"plain":       "plain",
		"ünïcode.txt": "%C3%BCn%C3%AFcode.txt",
	}
	for in, want := range datas {
		if got := EncodeQueryValue(in); got != want {
			t.Errorf("EncodeQueryValue(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEncodeQueryOrder(t *testing.T) {
	got := EncodeQuery(map[string]string{"path": "/docs/", "limit": "10"})
	want := "limit=10&path=%2Fdocs%2F"
	if got != want {
		t.Errorf("EncodeQuery = %q, want %q", got, want)
	}
}
