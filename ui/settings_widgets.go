package ui

import (
	"fmt"
	"image/color"
	"math"
	"unicode/utf8"

	cfg "github.com/automoto/doomerang-settings/config"
	"github.com/automoto/doomerang-settings/settings"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// settingWidget is a settings control backed by an ebitenui widget.
type settingWidget interface {
	settings.Widget
	Root() widget.PreferredSizeLocateableWidget
}

func (sui *SettingsUI) valueButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ValueWidth, 18),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func setButtonLabel(b *widget.Button, label string) {
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

// Button

type buttonWidget struct {
	button *widget.Button
}

func (sui *SettingsUI) newButton(m *settings.Menu, s *settings.Setting) *buttonWidget {
	t := s.Tag()
	b := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 24),
			sui.tooltip(s),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(s.Primary.Caption, &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			m.PressButton(t)
		}),
	)
	return &buttonWidget{button: b}
}

func (w *buttonWidget) Root() widget.PreferredSizeLocateableWidget { return w.button }

func (w *buttonWidget) Refresh(s *settings.Setting) {
	setButtonLabel(w.button, s.Primary.Caption)
	w.button.GetWidget().Disabled = !s.Primary.IsBound()
}

// Text line

type textLineWidget struct {
	label *widget.Label
}

func (sui *SettingsUI) newTextLine(s *settings.Setting, v *settings.TextLine) *textLineWidget {
	face, c := &sui.smallFace, cfg.Menu.TooltipColor
	if v.Vertical == settings.AlignHeader {
		face, c = &sui.titleFace, cfg.Menu.TitleColor
	}
	label := widget.NewLabel(
		widget.LabelOpts.Text(s.Primary.Caption, face, &widget.LabelColor{
			Idle: c,
		}),
	)
	return &textLineWidget{label: label}
}

func (w *textLineWidget) Root() widget.PreferredSizeLocateableWidget { return w.label }

func (w *textLineWidget) Refresh(s *settings.Setting) {
	w.label.Label = s.Primary.Caption
}

// Checkbox

type checkboxWidget struct {
	menu   *settings.Menu
	button *widget.Button
}

func (sui *SettingsUI) newCheckbox(m *settings.Menu, s *settings.Setting) *checkboxWidget {
	t := s.Tag()
	w := &checkboxWidget{menu: m}
	w.button = sui.valueButton("", func() {
		m.SetBool(t, !m.GetBool(t))
	})
	return w
}

func (w *checkboxWidget) Root() widget.PreferredSizeLocateableWidget { return w.button }

func (w *checkboxWidget) Refresh(s *settings.Setting) {
	label := "Off"
	if w.menu.GetBool(s.Tag()) {
		label = "On"
	}
	setButtonLabel(w.button, label)
	w.button.GetWidget().Disabled = !s.Primary.IsBound()
}

// Combobox

type comboboxWidget struct {
	menu   *settings.Menu
	button *widget.Button
}

// newCombobox cycles through the members on click.
func (sui *SettingsUI) newCombobox(m *settings.Menu, s *settings.Setting) *comboboxWidget {
	t := s.Tag()
	w := &comboboxWidget{menu: m}
	w.button = sui.valueButton("", func() {
		members := m.GetComboMembers(t)
		if len(members) == 0 {
			return
		}
		next := (max(m.GetComboIndex(t), -1) + 1) % len(members)
		m.SetComboIndex(t, next)
	})
	return w
}

func (w *comboboxWidget) Root() widget.PreferredSizeLocateableWidget { return w.button }

func (w *comboboxWidget) Refresh(s *settings.Setting) {
	members := w.menu.GetComboMembers(s.Tag())
	label := "-"
	if i := w.menu.GetComboIndex(s.Tag()); i >= 0 && i < len(members) {
		label = members[i]
	}
	setButtonLabel(w.button, label)
	w.button.GetWidget().Disabled = !s.Primary.IsBound()
}

// Slider

type sliderWidget struct {
	menu      *settings.Menu
	container *widget.Container
	slider    *widget.Slider
	value     *widget.Label
}

func percent(v float64) int {
	return int(math.Round(v * 100))
}

func (sui *SettingsUI) newSlider(m *settings.Menu, s *settings.Setting) *sliderWidget {
	t := s.Tag()
	w := &sliderWidget{menu: m}

	w.container = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	w.slider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, 100),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ValueWidth-34, 14),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{
				Idle:     image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
				Hover:    image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
				Disabled: image.NewNineSliceColor(color.RGBA{30, 30, 30, 255}),
			},
			sui.buttonImage(),
		),
		widget.SliderOpts.FixedHandleSize(6),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			// Refresh moves the handle too; only user input changes the value.
			if percent(m.GetFloat(t)) == args.Current {
				return
			}
			m.SetFloat(t, float64(args.Current)/100)
		}),
	)

	w.value = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle:     cfg.Menu.TextColorSelected,
			Disabled: cfg.Menu.TextColorDisabled,
		}),
	)

	w.container.AddChild(w.slider)
	w.container.AddChild(w.value)
	return w
}

func (w *sliderWidget) Root() widget.PreferredSizeLocateableWidget { return w.container }

func (w *sliderWidget) Refresh(s *settings.Setting) {
	p := percent(w.menu.GetFloat(s.Tag()))
	w.slider.Current = p
	w.value.Label = fmt.Sprintf("%d%%", p)
	w.slider.GetWidget().Disabled = !s.Primary.IsBound()
}

// User input

type userInputWidget struct {
	menu  *settings.Menu
	input *widget.TextInput
}

func (sui *SettingsUI) newUserInput(m *settings.Menu, s *settings.Setting) *userInputWidget {
	t := s.Tag()
	maxChars := 0
	if u, ok := s.Value.(*settings.UserInput); ok {
		maxChars = u.MaxChars
	}

	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Menu.ValueWidth, 18),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{30, 30, 30, 255}),
		}),
		widget.TextInputOpts.Face(&sui.smallFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.Menu.TextColorNormal,
			Disabled:      cfg.Menu.TextColorDisabled,
			Caret:         cfg.Menu.TextColorSelected,
			DisabledCaret: cfg.Menu.TextColorDisabled,
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(3)),
		widget.TextInputOpts.IgnoreEmptySubmit(true),
		widget.TextInputOpts.Validation(func(newInputText string) (bool, *string) {
			return maxChars <= 0 || utf8.RuneCountInString(newInputText) <= maxChars, nil
		}),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			m.SetName(t, args.InputText)
		}),
	)
	return &userInputWidget{menu: m, input: input}
}

func (w *userInputWidget) Root() widget.PreferredSizeLocateableWidget { return w.input }

func (w *userInputWidget) Refresh(s *settings.Setting) {
	if !w.input.IsFocused() {
		w.input.SetText(w.menu.GetName(s.Tag()))
	}
	w.input.GetWidget().Disabled = !s.Primary.IsBound()
}

// Custom widget

// customWidget is a placeholder for game-provided widgets, named after their class.
type customWidget struct {
	menu  *settings.Menu
	class string
	label *widget.Label
}

func (sui *SettingsUI) newCustomWidget(m *settings.Menu, v *settings.CustomWidget) *customWidget {
	label := widget.NewLabel(
		widget.LabelOpts.Text(v.Class, &sui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColorDisabled,
		}),
	)
	return &customWidget{menu: m, class: v.Class, label: label}
}

func (w *customWidget) Name() string { return w.class }

func (w *customWidget) Root() widget.PreferredSizeLocateableWidget { return w.label }

func (w *customWidget) Refresh(s *settings.Setting) {
	w.label.Label = w.menu.ValueText(s.Tag())
}
