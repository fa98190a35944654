package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/playmates/config"
	"github.com/automoto/playmates/shared/session"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// NameUI is the single-line name field drawn over the name label.
type NameUI struct {
	UI *ebitenui.UI

	input *widget.TextInput
	face  text.Face

	submitted string
	pending   bool
}

// NewNameUI builds a field of the given size anchored to the bottom-left
// corner, margin pixels in from both edges.
func NewNameUI(width, height, margin int) *NameUI {
	ui := &NameUI{}
	ui.loadFonts()
	ui.buildUI(width, height, margin)
	return ui
}

func (ui *NameUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	ui.face = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (ui *NameUI) buildUI(width, height, margin int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(margin)),
		)),
	)

	textColor := cfg.UI.TextColor
	ui.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:      image.NewNineSliceColor(color.RGBA{255, 255, 255, 235}),
			Disabled:  image.NewNineSliceColor(cfg.UI.PanelColor),
			Highlight: image.NewNineSliceColor(color.NRGBA{40, 90, 200, 90}),
		}),
		widget.TextInputOpts.Face(&ui.face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          textColor,
			Disabled:      cfg.UI.MutedTextColor,
			Caret:         textColor,
			DisabledCaret: cfg.UI.MutedTextColor,
		}),
		widget.TextInputOpts.Placeholder("Your name"),
		widget.TextInputOpts.Padding(&widget.Insets{Left: 10, Right: 10, Top: 7, Bottom: 7}),
		widget.TextInputOpts.Validation(validateName),
		widget.TextInputOpts.SubmitOnEnter(true),
		// Saving the same name twice still closes the editor.
		widget.TextInputOpts.AllowDuplicateSubmit(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			ui.submitted = args.InputText
			ui.pending = true
		}),
	)
	rootContainer.AddChild(ui.input)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// validateName swaps in the clamped draft whenever typing or pasting would
// overflow the name limit or insert control characters.
func validateName(newInputText string) (bool, *string) {
	clamped := session.ClampName(newInputText)
	if clamped == newInputText {
		return true, nil
	}
	return false, &clamped
}

// Open fills the field with the current name and focuses it.
func (ui *NameUI) Open(name string) {
	ui.pending = false
	ui.input.SetText(session.ClampName(name))
	ui.input.Focus(true)
}

func (ui *NameUI) Close() {
	ui.input.Focus(false)
}

func (ui *NameUI) Text() string {
	return ui.input.GetText()
}

// Submitted returns the text committed with Enter, once.
func (ui *NameUI) Submitted() (string, bool) {
	if !ui.pending {
		return "", false
	}
	ui.pending = false
	return ui.submitted, true
}

func (ui *NameUI) Update() {
	ui.UI.Update()
}

func (ui *NameUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
