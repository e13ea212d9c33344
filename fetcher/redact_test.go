package fetcher

import "testing"

func TestRedactKey(t *testing.T) {
	got := redactKey("https://youtube.googleapis.com/youtube/v3/commentThreads?key=abc&videoId=v")
	want := "https://youtube.googleapis.com/youtube/v3/commentThreads?key=REDACTED&videoId=v"
	if got != want {
		t.Errorf("redactKey() = %q, want %q", got, want)
	}

	plain := "https://example.com/path?videoId=v"
	if got := redactKey(plain); got != plain {
		t.Errorf("redactKey(%q) = %q, want unchanged", plain, got)
	}
}
