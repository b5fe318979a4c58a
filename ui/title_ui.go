package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI holds the ebitenui interface for the title screen
type TitleUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	OnPlay          func()
	OnNextVariant   func()
	OnToggleInspect func()
	OnExit          func()

	variantButton *widget.Button
	inspectButton *widget.Button
	hintLabel     *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title screen UI
func NewTitleUI(menu *components.MenuData, onPlay, onNextVariant, onToggleInspect, onExit func()) (*TitleUI, error) {
	tui := &TitleUI{
		Menu:            menu,
		OnPlay:          onPlay,
		OnNextVariant:   onNextVariant,
		OnToggleInspect: onToggleInspect,
		OnExit:          onExit,
	}

	if err := tui.loadFonts(); err != nil {
		return nil, err
	}
	tui.buildUI()

	return tui, nil
}

func (tui *TitleUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("failed to load title font: %w", err)
	}

	tui.titleFace = &text.GoTextFace{Source: fontSource, Size: 22}
	tui.normalFace = &text.GoTextFace{Source: fontSource, Size: 11}
	tui.smallFace = &text.GoTextFace{Source: fontSource, Size: 8}
	return nil
}

func (tui *TitleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &tui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	content.AddChild(tui.newButton("Play", func() { tui.OnPlay() }))
	tui.variantButton = tui.newButton(variantText(tui.Menu.Variant), func() { tui.OnNextVariant() })
	content.AddChild(tui.variantButton)
	tui.inspectButton = tui.newButton(inspectText(tui.Menu.Inspect), func() { tui.OnToggleInspect() })
	content.AddChild(tui.inspectButton)
	content.AddChild(tui.newButton("Exit", func() { tui.OnExit() }))

	tui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("Enter: play  V: variant  F1: inspect", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	)
	content.AddChild(tui.hintLabel)

	rootContainer.AddChild(content)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 22),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func variantText(id cfg.VariantID) string {
	return "Variant: " + cfg.VariantPresets[id].Label
}

func inspectText(on bool) string {
	if on {
		return "Inspect: on"
	}
	return "Inspect: off"
}

// UpdateUI refreshes button labels from the menu state
func (tui *TitleUI) UpdateUI() {
	if textWidget := tui.variantButton.Text(); textWidget != nil {
		textWidget.Label = variantText(tui.Menu.Variant)
	}
	if textWidget := tui.inspectButton.Text(); textWidget != nil {
		textWidget.Label = inspectText(tui.Menu.Inspect)
	}
}

// Update runs the UI and refreshes labels, since keyboard shortcuts can
// change the menu state outside of button clicks.
func (tui *TitleUI) Update() {
	tui.UI.Update()
	tui.UpdateUI()
}
