package storage

import "testing"

func TestExtractPublicID(t *testing.T) {
	cases := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1700000000/mindflow/profile-photos/abc123.jpg": "mindflow/profile-photos/abc123",
		"https://res.cloudinary.com/demo/image/upload/v1/folder/id":                                   "folder/id",
		"https://example.com/not-ours.jpg":                                                            "",
		"":                                                                                            "",
	}
	for url, want := range cases {
		if got := ExtractPublicID(url); got != want {
			t.Errorf("ExtractPublicID(%q) = %q, want %q", url, got, want)
		}
	}
}
