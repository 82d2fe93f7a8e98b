package ui

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestLightbox() *Lightbox {
	return NewLightbox([]Item{
		{Name: "a.png"},
		{Name: "b.png"},
		{Name: "c.png"},
	})
}

func TestLightboxNextWraps(t *testing.T) {
	l := newTestLightbox()
	l.Open(2)

	l.Next()
	if l.Index() != 0 {
		t.Errorf("advancing past the last image should wrap to 0, got %d", l.Index())
	}
}

func TestLightboxPrevWraps(t *testing.T) {
	l := newTestLightbox()
	l.Open(0)

	l.Prev()
	if l.Index() != 2 {
		t.Errorf("retreating before 0 should wrap to the last index, got %d", l.Index())
	}
}

func TestLightboxFullCycle(t *testing.T) {
	l := newTestLightbox()
	l.Open(1)

	for i := 0; i < 3; i++ {
		l.Next()
	}
	if l.Index() != 1 {
		t.Errorf("three advances over three images should return to start, got %d", l.Index())
	}
}

func TestLightboxOpenClose(t *testing.T) {
	l := newTestLightbox()

	if l.IsOpen() {
		t.Error("lightbox should start closed")
	}
	l.Open(1)
	if !l.IsOpen() || l.Index() != 1 {
		t.Errorf("expected open at index 1, got open=%v index=%d", l.IsOpen(), l.Index())
	}
	l.Close()
	if l.IsOpen() {
		t.Error("expected closed after Close")
	}
	if l.Index() != 1 {
		t.Error("Close should not reset the index")
	}
}

func TestLightboxOpenOutOfRange(t *testing.T) {
	l := newTestLightbox()
	l.Open(5)
	if l.IsOpen() {
		t.Error("out-of-range Open should be ignored")
	}
}

func TestLightboxEmptyGallery(t *testing.T) {
	l := NewLightbox(nil)

	// Navigation on an empty gallery must not panic
	l.Next()
	l.Prev()
	if _, ok := l.Current(); ok {
		t.Error("empty gallery should have no current item")
	}
}

func TestLoadGallery(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.JPG", "notes.txt", "c.jpeg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	items, err := LoadGallery(dir, []string{".png", ".jpg", ".jpeg"})
	if err != nil {
		t.Fatal(err)
	}

	if len(items) != 3 {
		t.Fatalf("expected 3 images, got %d", len(items))
	}
	// os.ReadDir returns entries sorted by name
	want := []string{"a.JPG", "b.png", "c.jpeg"}
	for i, item := range items {
		if item.Name != want[i] {
			t.Errorf("item %d: got %s, want %s", i, item.Name, want[i])
		}
	}
}

func TestLoadGalleryMissingDir(t *testing.T) {
	if _, err := LoadGallery("/nonexistent/gallery", []string{".png"}); err == nil {
		t.Error("expected error for missing directory")
	}
}
