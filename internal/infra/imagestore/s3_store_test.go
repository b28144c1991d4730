package imagestore

import "testing"

func TestHostOnly(t *testing.T) {
	cases := map[string]string{
		"https://acct.r2.cloudflarestorage.com":  "acct.r2.cloudflarestorage.com",
		"http://localhost:9000/":                 "localhost:9000",
		" minio:9000 ":                           "minio:9000",
		"https://s3.example.com/bucket/path?x=1": "s3.example.com",
	}
	for in, want := range cases {
		if got := hostOnly(in); got != want {
			t.Fatalf("hostOnly(%q) = %q, want %q", in, got, want)
		}
	}
}
