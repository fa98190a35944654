package assets

import (
	"embed"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader is used to colorize butterfly variants
	TintShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	// Load tint shader
	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return err
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	if err != nil {
		return err
	}

	return nil
}

// TintUniforms returns the shader uniforms for a tint color.
func TintUniforms(c color.RGBA) map[string]any {
	return map[string]any{
		"Tint": []float32{
			float32(c.R) / 255,
			float32(c.G) / 255,
			float32(c.B) / 255,
			1,
		},
	}
}
