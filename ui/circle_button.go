package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"circlecalc/internal/calc"
)

// CircleButton is a round button with custom fill and text colors.
type CircleButton struct {
	widget.Button
	bgColor  color.Color
	txtColor color.Color
}

// NewCircleButton creates a round button with custom colors.
func NewCircleButton(label string, tapped func(), bgColor, txtColor color.Color) *CircleButton {
	btn := &CircleButton{
		bgColor:  bgColor,
		txtColor: txtColor,
	}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// NewKeyButton creates the button for a keypad key, colored by its role.
// tapped receives the key label.
func NewKeyButton(key string, tapped func(string)) *CircleButton {
	bg, fg := ColorDigit, ColorTextLight
	switch {
	case calc.IsAccentKey(key):
		bg = ColorAccent
	case key == calc.KeyClear || key == calc.KeySign || key == calc.KeyPercent:
		bg, fg = ColorFunction, ColorTextDark
	}
	return NewCircleButton(key, func() { tapped(key) }, bg, fg)
}

// CreateRenderer returns a custom renderer.
func (b *CircleButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	circle := canvas.NewCircle(b.bgColor)

	label := canvas.NewText(b.Text, b.txtColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = theme.TextSize() * 1.6

	return &circleBtnRenderer{
		btn:     b,
		circle:  circle,
		label:   label,
		objects: []fyne.CanvasObject{circle, label},
	}
}

type circleBtnRenderer struct {
	btn     *CircleButton
	circle  *canvas.Circle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

// Layout keeps the circle round by fitting it to the shorter side.
func (r *circleBtnRenderer) Layout(size fyne.Size) {
	d := size.Width
	if size.Height < d {
		d = size.Height
	}
	r.circle.Resize(fyne.NewSquareSize(d))
	r.circle.Move(fyne.NewPos((size.Width-d)/2, (size.Height-d)/2))

	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *circleBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	d := labelMin.Width
	if labelMin.Height > d {
		d = labelMin.Height
	}
	return fyne.NewSquareSize(d + pad*2)
}

func (r *circleBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text

	if r.btn.Disabled() {
		r.circle.FillColor = ColorDisabledFill
		r.label.Color = ColorDisabledText
	} else {
		r.circle.FillColor = r.btn.bgColor
		r.label.Color = r.btn.txtColor
	}

	r.circle.Refresh()
	r.label.Refresh()
}

func (r *circleBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *circleBtnRenderer) Destroy()                     {}
