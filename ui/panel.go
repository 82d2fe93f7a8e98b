package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelPadding = 8
	lineHeight   = 18
	headerHeight = 24
)

// Panel renders the accordion sidebar and the lightbox overlay and feeds
// input back into their state.
type Panel struct {
	accordion *Accordion
	lightbox  *Lightbox

	x, y    int32
	width   int32
	visible bool

	// Lazily loaded gallery textures, keyed by gallery index
	textures map[int]rl.Texture2D
}

// NewPanel creates the side panel. It starts hidden; TAB toggles it.
func NewPanel(accordion *Accordion, lightbox *Lightbox, x, y, width int32) *Panel {
	return &Panel{
		accordion: accordion,
		lightbox:  lightbox,
		x:         x,
		y:         y,
		width:     width,
		textures:  make(map[int]rl.Texture2D),
	}
}

// Visible reports whether the sidebar is shown.
func (p *Panel) Visible() bool { return p.visible }

// Update handles panel-level input.
func (p *Panel) Update() {
	if rl.IsKeyPressed(rl.KeyTab) {
		p.visible = !p.visible
	}
	if p.lightbox.IsOpen() {
		switch {
		case rl.IsKeyPressed(rl.KeyRight):
			p.lightbox.Next()
		case rl.IsKeyPressed(rl.KeyLeft):
			p.lightbox.Prev()
		case rl.IsKeyPressed(rl.KeyEscape):
			p.lightbox.Close()
		}
	}
}

// Draw renders the sidebar and, when open, the lightbox overlay.
func (p *Panel) Draw(screenW, screenH int32) {
	if p.visible {
		p.drawSidebar()
	}
	if p.lightbox.IsOpen() {
		p.drawLightbox(screenW, screenH)
	}
}

func (p *Panel) drawSidebar() {
	y := p.y

	for i, sec := range p.accordion.Sections() {
		label := sec.Title
		if p.accordion.IsOpen(i) {
			label = "- " + label
		} else {
			label = "+ " + label
		}

		if gui.Button(rl.Rectangle{
			X: float32(p.x), Y: float32(y),
			Width: float32(p.width), Height: headerHeight,
		}, label) {
			p.accordion.Toggle(i)
		}
		y += headerHeight + 2

		if !p.accordion.IsOpen(i) {
			continue
		}

		// Section body
		bodyHeight := int32(len(sec.Lines))*lineHeight + panelPadding*2
		isGallery := sec.Title == GallerySectionTitle && p.lightbox.Len() > 0
		if isGallery {
			bodyHeight = int32(p.lightbox.Len())*(headerHeight+2) + panelPadding*2
		}
		rl.DrawRectangle(p.x, y, p.width, bodyHeight, rl.Color{R: 20, G: 24, B: 34, A: 220})

		by := y + panelPadding
		if isGallery {
			for j := 0; j < p.lightbox.Len(); j++ {
				item := p.galleryItem(j)
				if gui.Button(rl.Rectangle{
					X: float32(p.x + panelPadding), Y: float32(by),
					Width: float32(p.width - panelPadding*2), Height: headerHeight,
				}, item.Name) {
					p.lightbox.Open(j)
				}
				by += headerHeight + 2
			}
		} else {
			for _, line := range sec.Lines {
				rl.DrawText(line, p.x+panelPadding, by, 10, rl.LightGray)
				by += lineHeight
			}
		}
		y += bodyHeight + 2
	}
}

// GallerySectionTitle marks the accordion section whose body lists the
// gallery images instead of static text.
const GallerySectionTitle = "Gallery"

func (p *Panel) galleryItem(i int) Item {
	return p.lightbox.items[i]
}

func (p *Panel) drawLightbox(screenW, screenH int32) {
	item, ok := p.lightbox.Current()
	if !ok {
		return
	}

	// Dim everything behind the overlay
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Color{R: 0, G: 0, B: 0, A: 200})

	tex := p.texture(p.lightbox.Index(), item.Path)
	if tex.ID != 0 {
		// Fit the image inside 80% of the screen, preserving aspect
		maxW := float32(screenW) * 0.8
		maxH := float32(screenH) * 0.8
		scale := maxW / float32(tex.Width)
		if s := maxH / float32(tex.Height); s < scale {
			scale = s
		}
		if scale > 1 {
			scale = 1
		}
		w := float32(tex.Width) * scale
		h := float32(tex.Height) * scale
		pos := rl.Vector2{X: (float32(screenW) - w) / 2, Y: (float32(screenH) - h) / 2}
		rl.DrawTextureEx(tex, pos, 0, scale, rl.White)
	} else {
		rl.DrawText("failed to load "+item.Name, screenW/2-100, screenH/2, 14, rl.Red)
	}

	caption := fmt.Sprintf("%s  (%d/%d)", item.Name, p.lightbox.Index()+1, p.lightbox.Len())
	capWidth := rl.MeasureText(caption, 14)
	rl.DrawText(caption, (screenW-capWidth)/2, screenH-40, 14, rl.RayWhite)

	btnY := float32(screenH)/2 - 20
	if gui.Button(rl.Rectangle{X: 20, Y: btnY, Width: 40, Height: 40}, "<") {
		p.lightbox.Prev()
	}
	if gui.Button(rl.Rectangle{X: float32(screenW) - 60, Y: btnY, Width: 40, Height: 40}, ">") {
		p.lightbox.Next()
	}
	if gui.Button(rl.Rectangle{X: float32(screenW) - 50, Y: 10, Width: 40, Height: 40}, "x") {
		p.lightbox.Close()
	}
}

// texture returns the cached texture for a gallery index, loading it on
// first use. Failed loads are cached as zero-ID textures.
func (p *Panel) texture(i int, path string) rl.Texture2D {
	if tex, ok := p.textures[i]; ok {
		return tex
	}
	tex := rl.LoadTexture(path)
	p.textures[i] = tex
	return tex
}

// Unload releases all gallery textures.
func (p *Panel) Unload() {
	for _, tex := range p.textures {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
	p.textures = make(map[int]rl.Texture2D)
}
