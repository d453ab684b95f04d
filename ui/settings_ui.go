package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/automoto/doomerang-settings/settings"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI holds the ebitenui interface for the settings menu.
// It is the widget factory of the menu it is attached to.
type SettingsUI struct {
	UI *ebitenui.UI

	// Header and footer cells, left to right
	header [3]*widget.Container
	footer [3]*widget.Container

	body    *widget.Container
	columns []*widget.Container
	column  *widget.Container

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	menu *settings.Menu

	// Initialization tracking
	initialized bool
}

// NewSettingsUI creates an empty settings UI. Attach it to a menu with
// settings.WithWidgetFactory, then call Attach once the menu exists.
func NewSettingsUI() *SettingsUI {
	sui := &SettingsUI{}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

// Attach sets the menu the widgets read from and write to.
func (sui *SettingsUI) Attach(m *settings.Menu) {
	sui.menu = m
	sui.initialized = false
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Smaller fonts to fit 640x360 screen
	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
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

	var headerBar, footerBar *widget.Container
	headerBar, sui.header = sui.newBar()
	footerBar, sui.footer = sui.newBar()

	sui.body = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.Menu.ColumnGap),
		)),
	)

	contentContainer.AddChild(headerBar)
	contentContainer.AddChild(sui.body)
	contentContainer.AddChild(footerBar)
	rootContainer.AddChild(contentContainer)

	sui.Reset()

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// newBar builds a full-width bar with a left, center and right cell.
func (sui *SettingsUI) newBar() (*widget.Container, [3]*widget.Container) {
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Stretch([]bool{true, true, true}, []bool{false}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(2*cfg.Menu.ColumnWidth+cfg.Menu.ColumnGap, 0),
		),
	)

	positions := [3]widget.AnchorLayoutPosition{
		widget.AnchorLayoutPositionStart,
		widget.AnchorLayoutPositionCenter,
		widget.AnchorLayoutPositionEnd,
	}
	var cells [3]*widget.Container
	for i := range cells {
		cell := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
		cells[i] = widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					HorizontalPosition: positions[i],
					VerticalPosition:   widget.AnchorLayoutPositionCenter,
				}),
			),
		)
		cell.AddChild(cells[i])
		bar.AddChild(cell)
	}
	return bar, cells
}

// Reset removes every setting widget and starts over with one column.
func (sui *SettingsUI) Reset() {
	for _, cells := range [][3]*widget.Container{sui.header, sui.footer} {
		for _, c := range cells {
			c.RemoveChildren()
		}
	}
	sui.body.RemoveChildren()
	sui.columns = nil
	sui.StartColumn(0)
}

// StartColumn makes column index the target of the following settings.
func (sui *SettingsUI) StartColumn(index int) {
	for len(sui.columns) <= index {
		column := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(cfg.Menu.RowGap),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(cfg.Menu.ColumnWidth, 0),
			),
		)
		sui.columns = append(sui.columns, column)
		sui.body.AddChild(column)
	}
	sui.column = sui.columns[index]
}

// Create builds the control of s and places it in the current column, or in
// the header or footer for buttons and text lines aligned there.
func (sui *SettingsUI) Create(m *settings.Menu, s *settings.Setting) settings.Widget {
	var w settingWidget
	switch v := s.Value.(type) {
	case *settings.Button:
		w = sui.newButton(m, s)
		sui.place(w, s, v.Vertical, v.Horizontal)
		return w
	case *settings.TextLine:
		w = sui.newTextLine(s, v)
		sui.place(w, s, v.Vertical, v.Horizontal)
		return w
	case *settings.Checkbox:
		w = sui.newCheckbox(m, s)
	case *settings.Combobox:
		w = sui.newCombobox(m, s)
	case *settings.Slider:
		w = sui.newSlider(m, s)
	case *settings.UserInput:
		w = sui.newUserInput(m, s)
	case *settings.CustomWidget:
		w = sui.newCustomWidget(m, v)
	default:
		return nil
	}
	sui.column.AddChild(sui.row(s, w))
	return w
}

func (sui *SettingsUI) place(w settingWidget, s *settings.Setting, v settings.VerticalAlignment, h settings.HorizontalAlignment) {
	var cells [3]*widget.Container
	switch v {
	case settings.AlignHeader:
		cells = sui.header
	case settings.AlignFooter:
		cells = sui.footer
	default:
		sui.column.AddChild(w.Root())
		return
	}
	cells[h].AddChild(w.Root())
}

// row wraps a control in a padded line with the setting's caption.
func (sui *SettingsUI) row(s *settings.Setting, w settingWidget) *widget.Container {
	layout := s.Primary.Layout
	padding := widget.Insets{
		Left:   int(layout.Padding.Left),
		Top:    int(layout.Padding.Top),
		Right:  int(layout.Padding.Right),
		Bottom: int(layout.Padding.Bottom),
	}
	height := int(layout.LineHeight * cfg.Menu.LineHeightScale)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Padding(&padding),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ColumnWidth, height),
			sui.tooltip(s),
		),
	)

	caption := widget.NewLabel(
		widget.LabelOpts.Text(s.Primary.Caption, &sui.normalFace, &widget.LabelColor{
			Idle:     cfg.Menu.TextColorNormal,
			Disabled: cfg.Menu.TextColorDisabled,
		}),
	)
	row.AddChild(caption)
	row.AddChild(w.Root())
	return row
}

func (sui *SettingsUI) tooltip(s *settings.Setting) widget.WidgetOpt {
	if s.Primary.Tooltip == "" {
		return func(*widget.Widget) {}
	}
	return widget.WidgetOpts.ToolTip(widget.NewTextToolTip(
		s.Primary.Tooltip,
		&sui.smallFace,
		cfg.Menu.TooltipColor,
		image.NewNineSliceColor(color.RGBA{10, 10, 20, 230}),
	))
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SettingsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     cfg.Menu.TextColorNormal,
		Hover:    cfg.Menu.TextColorSelected,
		Pressed:  color.RGBA{200, 200, 200, 255},
		Disabled: cfg.Menu.TextColorDisabled,
	}
}

// UpdateUI refreshes every control from its setting.
func (sui *SettingsUI) UpdateUI() {
	if sui.menu == nil {
		return
	}
	for _, s := range sui.menu.Settings() {
		if w := s.Primary.Widget(); w != nil {
			w.Refresh(s)
		}
	}
}

// Update calls the UI's Update method
func (sui *SettingsUI) Update() {
	sui.UI.Update()

	// Update UI state on first frame after widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
