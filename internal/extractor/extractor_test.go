package extractor

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/spotport/spotport/internal/shared"
)

const specBlob = `{"tracks":{"items":[{"track":{"name":"A","album":{"name":"B"},"artists":[{"name":"C"}]}}]},"description":"d","external_urls":{"spotify":"u"}}`

func page(blob string) string {
	return fmt.Sprintf(`<html><head><script>var a=1;</script></head><body>
<script>
boilerplate();
Spotify.Entity = %s;
more();
</script>
</body></html>`, blob)
}

func TestExtract(t *testing.T) {
	t.Run("end to end on the single-track document", func(t *testing.T) {
		tracks, meta, err := Extract(page(specBlob))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(tracks) != 1 {
			t.Fatalf("expected 1 track, got %d", len(tracks))
		}
		if tracks[0].Name != "A" {
			t.Errorf("expected track name A, got %s", tracks[0].Name)
		}
		if !reflect.DeepEqual(tracks[0].Artists, []string{"C"}) {
			t.Errorf("expected artists [C], got %v", tracks[0].Artists)
		}
		if tracks[0].Album != "B" {
			t.Errorf("expected album B, got %s", tracks[0].Album)
		}

		if meta.Description != "d" {
			t.Errorf("expected description d, got %s", meta.Description)
		}
		if meta.CanonicalURL != "u" {
			t.Errorf("expected canonical URL u, got %s", meta.CanonicalURL)
		}
	})

	t.Run("tolerates unquoted keys", func(t *testing.T) {
		blob := `{tracks: {items: [{track: {name: "A", album: {name: "B"}, artists: [{name: "C"}]}}]}, description: "d", external_urls: {spotify: "u"}}`
		tracks, meta, err := Extract(page(blob))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tracks) != 1 || tracks[0].Name != "A" {
			t.Errorf("unexpected tracks: %v", tracks)
		}
		if meta.CanonicalURL != "u" {
			t.Errorf("expected canonical URL u, got %s", meta.CanonicalURL)
		}
	})

	t.Run("preserves source order", func(t *testing.T) {
		blob := `{"tracks":{"items":[` +
			`{"track":{"name":"First","album":{"name":"X"},"artists":[{"name":"One"},{"name":"Two"}]}},` +
			`{"track":{"name":"Second","album":{"name":"Y"},"artists":[{"name":"Three"}]}},` +
			`{"track":{"name":"Third","album":{"name":"Z"},"artists":[{"name":"Four"}]}}` +
			`]},"description":"","external_urls":{"spotify":""}}`

		tracks, _, err := Extract(page(blob))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(tracks) != 3 {
			t.Fatalf("expected 3 tracks, got %d", len(tracks))
		}
		for i, want := range []string{"First", "Second", "Third"} {
			if tracks[i].Name != want {
				t.Errorf("track %d: expected %s, got %s", i, want, tracks[i].Name)
			}
		}
		if !reflect.DeepEqual(tracks[0].Artists, []string{"One", "Two"}) {
			t.Errorf("expected ordered artists [One Two], got %v", tracks[0].Artists)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		doc := page(specBlob)
		tracks1, meta1, err1 := Extract(doc)
		tracks2, meta2, err2 := Extract(doc)

		if err1 != nil || err2 != nil {
			t.Fatalf("expected no errors, got %v / %v", err1, err2)
		}
		if !reflect.DeepEqual(tracks1, tracks2) || !reflect.DeepEqual(meta1, meta2) {
			t.Error("expected identical output for identical input")
		}
	})

	t.Run("fails with no script blocks", func(t *testing.T) {
		_, _, err := Extract("<html><body><p>nothing here</p></body></html>")
		if err == nil {
			t.Fatal("expected error for document without script blocks")
		}
		if !errors.Is(err, shared.ErrExtraction) {
			t.Errorf("expected extraction error, got %v", err)
		}
		if !strings.Contains(err.Error(), "no script blocks found") {
			t.Errorf("expected 'no script blocks found' in error, got %v", err)
		}
	})

	t.Run("fails on undecodable literal", func(t *testing.T) {
		doc := "<script>\nx = {\"a\": [1, 2;\n</script>"
		_, _, err := Extract(doc)
		if err == nil {
			t.Fatal("expected error for malformed literal")
		}
		if !errors.Is(err, shared.ErrExtraction) {
			t.Errorf("expected extraction error, got %v", err)
		}
	})

	t.Run("names the missing key path", func(t *testing.T) {
		tc := []struct {
			name string
			blob string
			path string
		}{
			{
				name: "no tracks key",
				blob: `{"description":"d"}`,
				path: `"tracks"`,
			},
			{
				name: "no items key",
				blob: `{"tracks":{"total":1}}`,
				path: `"tracks.items"`,
			},
			{
				name: "no album name",
				blob: `{"tracks":{"items":[{"track":{"name":"A","album":{},"artists":[{"name":"C"}]}}]}}`,
				path: `"tracks.items[0].track.album.name"`,
			},
			{
				name: "no artist name",
				blob: `{"tracks":{"items":[{"track":{"name":"A","album":{"name":"B"},"artists":[{}]}}]}}`,
				path: `"tracks.items[0].track.artists[0].name"`,
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				_, _, err := Extract(page(tt.blob))
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, shared.ErrExtraction) {
					t.Errorf("expected extraction error, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.path) {
					t.Errorf("expected error naming %s, got %v", tt.path, err)
				}
			})
		}
	})

	t.Run("tolerates absent metadata", func(t *testing.T) {
		blob := `{"tracks":{"items":[]}}`
		tracks, meta, err := Extract(page(blob))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected no tracks, got %d", len(tracks))
		}
		if meta.Description != "" || meta.CanonicalURL != "" {
			t.Errorf("expected empty metadata, got %+v", meta)
		}
	})
}

func TestLongestScriptBlock(t *testing.T) {
	t.Run("selects the longest of several blocks", func(t *testing.T) {
		short := strings.Repeat("a", 10)
		long := strings.Repeat("b", 50)
		middle := strings.Repeat("c", 30)
		doc := fmt.Sprintf("<script>%s</script><script>%s</script><script>%s</script>", short, long, middle)

		block, err := longestScriptBlock(doc)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if block != long {
			t.Errorf("expected the 50-char block, got %q", block)
		}
	})

	t.Run("breaks ties on the first block", func(t *testing.T) {
		doc := "<script>first</script><script>later</script>"
		block, err := longestScriptBlock(doc)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if block != "first" {
			t.Errorf("expected first block on tie, got %q", block)
		}
	})

	t.Run("spans multiple lines", func(t *testing.T) {
		doc := "<script>\nline one\nline two\n</script>"
		block, err := longestScriptBlock(doc)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(block, "line two") {
			t.Errorf("expected multi-line body, got %q", block)
		}
	})
}

func TestStateLiteral(t *testing.T) {
	tc := []struct {
		name string
		line string
		want string
	}{
		{
			name: "assignment with terminator",
			line: `Spotify.Entity = {"a":1};`,
			want: `{"a":1}`,
		},
		{
			name: "value containing the separator",
			line: `x = {"k":"a = b"};`,
			want: `{"k":"a = b"}`,
		},
		{
			name: "no assignment present",
			line: "just some text",
			want: "",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := stateLiteral(tt.line); got != tt.want {
				t.Errorf("stateLiteral(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
