package plaintext

import "testing"

func TestParser_Parse_TitleAuthorBullets(t *testing.T) {
	input := `My Notes
By Jane Austen
- First line of wisdom
- Second line of wisdom
`

	notes := NewParser().Parse(input)

	if notes.Title != "My Notes" {
		t.Errorf("expected title 'My Notes', got %q", notes.Title)
	}
	if notes.Author != "Jane Austen" {
		t.Errorf("expected author 'Jane Austen', got %q", notes.Author)
	}
	if len(notes.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(notes.Items))
	}
	if notes.Items[0] != "First line of wisdom" || notes.Items[1] != "Second line of wisdom" {
		t.Errorf("unexpected items: %v", notes.Items)
	}
}

func TestParser_Parse_DecoratedTitle(t *testing.T) {
	input := `=== Meditations ===
by Marcus Aurelius
- You have power over your mind
`

	notes := NewParser().Parse(input)

	if notes.Title != "Meditations" {
		t.Errorf("decorations not stripped: %q", notes.Title)
	}
	if notes.Author != "Marcus Aurelius" {
		t.Errorf("unexpected author: %q", notes.Author)
	}
}

func TestParser_Parse_NoAuthor(t *testing.T) {
	input := `Assorted Thoughts

- the only bullet
random commentary that is not a bullet
- another bullet
`

	notes := NewParser().Parse(input)

	if notes.Author != "" {
		t.Errorf("expected no author, got %q", notes.Author)
	}
	if len(notes.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(notes.Items))
	}
}

func TestParser_Parse_Empty(t *testing.T) {
	notes := NewParser().Parse("")
	if notes.Title != "" || notes.Author != "" || len(notes.Items) != 0 {
		t.Errorf("expected empty notes, got %+v", notes)
	}
}

func TestParser_Parse_BareDashLinesIgnored(t *testing.T) {
	input := `Title
-
--
- real bullet
`

	notes := NewParser().Parse(input)

	if len(notes.Items) != 1 || notes.Items[0] != "real bullet" {
		t.Errorf("unexpected items: %v", notes.Items)
	}
}
