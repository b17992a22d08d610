package shader

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var WhiteTexture *rl.Texture2D

// InitDefaults initializes default textures used to draw shader quads.
func InitDefaults() {
	if WhiteTexture == nil {
		img := rl.GenImageColor(1, 1, rl.White)
		tex := rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		WhiteTexture = &tex
	}
}

// DrawQuad fills dest with the bound shader. Texture coordinates run from
// (0,0) at the top-left to (1,1) at the bottom-right of dest.
func DrawQuad(dest rl.Rectangle) {
	if WhiteTexture == nil {
		InitDefaults()
	}
	rl.DrawTexturePro(*WhiteTexture, rl.NewRectangle(0, 0, 1, 1), dest, rl.NewVector2(0, 0), 0, rl.White)
}

// DrawRenderTexture draws a render target upright into dest.
func DrawRenderTexture(target rl.RenderTexture2D, dest rl.Rectangle, tint rl.Color) {
	src := rl.NewRectangle(0, 0, float32(target.Texture.Width), -float32(target.Texture.Height))
	rl.DrawTexturePro(target.Texture, src, dest, rl.NewVector2(0, 0), 0, tint)
}

// ReleaseDefaults frees what InitDefaults created.
func ReleaseDefaults() {
	if WhiteTexture != nil {
		rl.UnloadTexture(*WhiteTexture)
		WhiteTexture = nil
	}
}
