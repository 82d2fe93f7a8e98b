// Flow field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/drift/field"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Flow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	gen := field.TrigGenerator{
		XFreq:  0.3,
		YFreq:  0.3,
		XDrift: 0.01,
		YDrift: 0.013,
	}
	cellSize := float32(40)

	grid := field.New(previewSize, previewSize, cellSize, 1, gen)

	var frame int32
	animating := false

	for !rl.WindowShouldClose() {
		if animating {
			frame++
		}
		grid.Update(frame)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 5, G: 8, B: 18, A: 255})

		drawField(grid, cellSize)
		rl.DrawRectangleLines(0, 0, previewSize, previewSize, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		changed := false
		gen.XFreq, panelY, changed = slider(panelX, panelY, "X frequency", gen.XFreq, 0.05, 1.0, changed)
		gen.YFreq, panelY, changed = slider(panelX, panelY, "Y frequency", gen.YFreq, 0.05, 1.0, changed)
		gen.XDrift, panelY, changed = slider(panelX, panelY, "X drift (time speed)", gen.XDrift, 0, 0.05, changed)
		gen.YDrift, panelY, changed = slider(panelX, panelY, "Y drift (time speed)", gen.YDrift, 0, 0.05, changed)

		newCell := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY + 18, Width: float32(panelWidth - 80), Height: 20},
			"20", "80",
			cellSize, 20, 80,
		)
		rl.DrawText("Cell size", int32(panelX), int32(panelY), 14, rl.Gray)
		rl.DrawText(fmt.Sprintf("%.0f", cellSize), int32(panelX+float32(panelWidth-70)), int32(panelY+20), 16, rl.RayWhite)
		panelY += 53
		if newCell != cellSize {
			cellSize = newCell
			grid = field.New(previewSize, previewSize, cellSize, 1, gen)
			changed = true
		}

		if changed {
			grid = field.New(previewSize, previewSize, cellSize, 1, gen)
			grid.Update(frame)
		}

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			frame = 0
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		yamlLines := []string{
			"field:",
			fmt.Sprintf("  cell_size: %.0f", cellSize),
			fmt.Sprintf("  x_freq: %.3f", gen.XFreq),
			fmt.Sprintf("  y_freq: %.3f", gen.YFreq),
			fmt.Sprintf("  x_drift: %.4f", gen.XDrift),
			fmt.Sprintf("  y_drift: %.4f", gen.YDrift),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), windowHeight-30, 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(fmt.Sprintf(`field:
  cell_size: %.0f
  x_freq: %.3f
  y_freq: %.3f
  x_drift: %.4f
  y_drift: %.4f`,
				cellSize, gen.XFreq, gen.YFreq, gen.XDrift, gen.YDrift))
		}

		rl.EndDrawing()
	}
}

// slider draws one labeled slider row and returns the new value.
func slider(x, y float32, label string, value, min, max float64, changed bool) (float64, float32, bool) {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	newValue := gui.SliderBar(
		rl.Rectangle{X: x, Y: y + 18, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%.2f", min), fmt.Sprintf("%.2f", max),
		float32(value), float32(min), float32(max),
	)
	rl.DrawText(fmt.Sprintf("%.4f", value), int32(x+float32(panelWidth-70)), int32(y+20), 16, rl.RayWhite)
	if float64(newValue) != value {
		return float64(newValue), y + 53, true
	}
	return value, y + 53, changed
}

// drawField draws one arrow per cell.
func drawField(grid *field.Grid, cellSize float32) {
	arrowLen := cellSize * 0.4
	for cy := 0; cy < grid.Rows(); cy++ {
		for cx := 0; cx < grid.Cols(); cx++ {
			x := (float32(cx) + 0.5) * cellSize
			y := (float32(cy) + 0.5) * cellSize
			fx, fy, ok := grid.Sample(x, y)
			if !ok {
				continue
			}
			tip := rl.Vector2{X: x + fx*arrowLen, Y: y + fy*arrowLen}
			rl.DrawLineEx(rl.Vector2{X: x, Y: y}, tip, 1.5, rl.Color{R: 80, G: 140, B: 200, A: 200})
			rl.DrawCircleV(tip, 2, rl.Color{R: 120, G: 180, B: 240, A: 220})
		}
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
