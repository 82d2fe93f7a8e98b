package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GPUField generates flow field vectors on the GPU and caches them for CPU
// sampling. The fragment shader evaluates the same trig field as the CPU
// generator; the result is read back once per update interval so per-frame
// sampling stays an O(1) array lookup.
type GPUField struct {
	shader     rl.Shader
	flowTarget rl.RenderTexture2D
	timeLoc    int32

	// Cached flow data for CPU sampling
	flowData      []float32 // [x0, y0, x1, y1, ...] interleaved
	width, height int
	surfaceW      float32
	surfaceH      float32

	updateInterval int32
	lastUpdate     int32
}

// NewGPUField loads the flow shader and allocates the render target.
// A shader that fails to compile or link is a fatal initialization error.
func NewGPUField(shaderPath string, textureSize int, updateInterval int32, surfaceW, surfaceH float32) (*GPUField, error) {
	shader := rl.LoadShader("", shaderPath)
	if !rl.IsShaderValid(shader) {
		return nil, fmt.Errorf("loading flow shader %q: compile or link failed", shaderPath)
	}

	gf := &GPUField{
		shader:         shader,
		timeLoc:        rl.GetShaderLocation(shader, "time"),
		width:          textureSize,
		height:         textureSize,
		surfaceW:       surfaceW,
		surfaceH:       surfaceH,
		updateInterval: updateInterval,
		lastUpdate:     -updateInterval, // force a render on the first Update
		flowData:       make([]float32, textureSize*textureSize*2),
	}

	resolutionLoc := rl.GetShaderLocation(shader, "resolution")
	rl.SetShaderValue(shader, resolutionLoc, []float32{float32(textureSize), float32(textureSize)}, rl.ShaderUniformVec2)

	gf.flowTarget = rl.LoadRenderTexture(int32(textureSize), int32(textureSize))

	return gf, nil
}

// Resize updates the surface mapping used by Sample.
func (gf *GPUField) Resize(surfaceW, surfaceH float32) {
	gf.surfaceW = surfaceW
	gf.surfaceH = surfaceH
}

// Update regenerates the flow texture on its cadence and reads it back.
func (gf *GPUField) Update(frame int32) {
	if frame-gf.lastUpdate < gf.updateInterval {
		return
	}
	gf.lastUpdate = frame

	rl.BeginTextureMode(gf.flowTarget)
	rl.ClearBackground(rl.Black)

	rl.SetShaderValue(gf.shader, gf.timeLoc, []float32{float32(frame)}, rl.ShaderUniformFloat)

	rl.BeginShaderMode(gf.shader)
	rl.DrawRectangle(0, 0, int32(gf.width), int32(gf.height), rl.White)
	rl.EndShaderMode()

	rl.EndTextureMode()

	gf.readback()
}

// readback copies the flow texture to CPU memory.
func (gf *GPUField) readback() {
	img := rl.LoadImageFromTexture(gf.flowTarget.Texture)
	defer rl.UnloadImage(img)

	colors := rl.LoadImageColors(img)
	defer rl.UnloadImageColors(colors)

	// R,G encode flow components mapped from [-1, 1] to [0, 255]
	for i := 0; i < gf.width*gf.height; i++ {
		c := colors[i]
		gf.flowData[i*2] = float32(c.R)/255.0*2 - 1
		gf.flowData[i*2+1] = float32(c.G)/255.0*2 - 1
	}
}

// Sample returns the flow vector at a world position. The texture covers
// the whole surface, so lookups are always in bounds.
func (gf *GPUField) Sample(x, y float32) (float32, float32, bool) {
	texX := int(x / gf.surfaceW * float32(gf.width))
	texY := int(y / gf.surfaceH * float32(gf.height))

	texX = ((texX % gf.width) + gf.width) % gf.width
	texY = ((texY % gf.height) + gf.height) % gf.height

	idx := (texY*gf.width + texX) * 2
	return gf.flowData[idx], gf.flowData[idx+1], true
}

// Unload releases GPU resources.
func (gf *GPUField) Unload() {
	rl.UnloadShader(gf.shader)
	rl.UnloadRenderTexture(gf.flowTarget)
}
