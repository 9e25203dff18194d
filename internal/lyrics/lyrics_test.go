package lyrics

import "testing"

func TestSplitBlocks(t *testing.T) {
	text := "AAAA\nBBBB\n\nCCCC\n\n\nDDDD"

	blocks := SplitBlocks(text)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	want := []struct {
		start, end int
		text       string
	}{
		{0, 9, "AAAA\nBBBB"},
		{11, 15, "CCCC"},
		{18, 22, "DDDD"},
	}
	for i, w := range want {
		b := blocks[i]
		if b.Start != w.start || b.End != w.end || b.Text != w.text {
			t.Errorf("block %d: got {%d %d %q}, want {%d %d %q}",
				i, b.Start, b.End, b.Text, w.start, w.end, w.text)
		}
		// Offsets must index back into the original text.
		if text[b.Start:b.End] != b.Text {
			t.Errorf("block %d offsets do not match text: %q", i, text[b.Start:b.End])
		}
	}
}

func TestSplitBlocksEdges(t *testing.T) {
	if blocks := SplitBlocks(""); blocks != nil {
		t.Errorf("empty text: expected nil, got %v", blocks)
	}
	if blocks := SplitBlocks("\n\n\n"); blocks != nil {
		t.Errorf("blank text: expected nil, got %v", blocks)
	}

	blocks := SplitBlocks("solo\n")
	if len(blocks) != 1 || blocks[0].Start != 0 || blocks[0].End != 4 {
		t.Errorf("trailing newline: got %v", blocks)
	}
}

func TestSnippetClamps(t *testing.T) {
	lyrics := "AAAABBBB"

	if got := Snippet(lyrics, 4, 8); got != "BBBB" {
		t.Errorf("expected 'BBBB', got %q", got)
	}
	if got := Snippet(lyrics, 4, 100); got != "BBBB" {
		t.Errorf("expected clamped 'BBBB', got %q", got)
	}
	if got := Snippet(lyrics, -2, 4); got != "AAAA" {
		t.Errorf("expected clamped 'AAAA', got %q", got)
	}
	if got := Snippet(lyrics, 20, 30); got != "" {
		t.Errorf("expected empty snippet, got %q", got)
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("first line\nsecond", 80); got != "first line" {
		t.Errorf("expected first line, got %q", got)
	}
	if got := Preview("abcdefgh", 4); got != "abcd" {
		t.Errorf("expected truncation, got %q", got)
	}
}
