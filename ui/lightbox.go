package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Item is one image in the lightbox gallery.
type Item struct {
	Name string
	Path string
}

// Lightbox tracks a current index into the gallery. Navigation wraps at
// both ends. It has no relation to the animation state.
type Lightbox struct {
	items []Item
	index int
	open  bool
}

// NewLightbox creates a closed lightbox over the given gallery.
func NewLightbox(items []Item) *Lightbox {
	return &Lightbox{items: items}
}

// LoadGallery reads the gallery directory and returns items whose extension
// matches one of exts (case-insensitive), in directory order.
func LoadGallery(dir string, exts []string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading gallery dir: %w", err)
	}

	var items []Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, want := range exts {
			if ext == strings.ToLower(want) {
				items = append(items, Item{
					Name: e.Name(),
					Path: filepath.Join(dir, e.Name()),
				})
				break
			}
		}
	}
	return items, nil
}

// Len returns the gallery size.
func (l *Lightbox) Len() int { return len(l.items) }

// IsOpen reports whether the lightbox overlay is showing.
func (l *Lightbox) IsOpen() bool { return l.open }

// Index returns the current image index.
func (l *Lightbox) Index() int { return l.index }

// Current returns the image under the cursor, or false for an empty gallery.
func (l *Lightbox) Current() (Item, bool) {
	if len(l.items) == 0 {
		return Item{}, false
	}
	return l.items[l.index], true
}

// Open shows the lightbox at index i. Out-of-range indices are ignored.
func (l *Lightbox) Open(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.index = i
	l.open = true
}

// Close hides the lightbox without resetting the index.
func (l *Lightbox) Close() { l.open = false }

// Next advances to the next image, wrapping past the last back to 0.
func (l *Lightbox) Next() {
	if len(l.items) == 0 {
		return
	}
	l.index = (l.index + 1) % len(l.items)
}

// Prev retreats to the previous image, wrapping before 0 to the last.
func (l *Lightbox) Prev() {
	if len(l.items) == 0 {
		return
	}
	l.index = (l.index - 1 + len(l.items)) % len(l.items)
}
