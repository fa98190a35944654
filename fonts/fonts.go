package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Bold  FontName = "bold"
	Title FontName = "title"
	Small FontName = "small"
	Popup FontName = "popup"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the HUD uses from the embedded Go font.
func LoadDefaults() {
	LoadFontWithSize(Small, goregular.TTF, 12)
	LoadFontWithSize(Body, goregular.TTF, 15)
	LoadFontWithSize(Bold, goregular.TTF, 20)
	LoadFontWithSize(Title, goregular.TTF, 30)
	LoadFontWithSize(Popup, goregular.TTF, 44)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: Could not parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
