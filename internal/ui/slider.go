package ui

import (
	"fyne.io/fyne/v2/widget"

	"github.com/gauransh/gitingest/internal/config"
	"github.com/gauransh/gitingest/internal/model"
	"github.com/gauransh/gitingest/internal/scale"
)

// SliderBinding keeps the size label, the visual fill, and the stored
// position in sync with the size-limit slider. A binding built without a
// slider or label is a permanent no-op: some server states render the form
// without a size control, and submission then falls back to the default
// position.
type SliderBinding struct {
	slider   *widget.Slider
	label    *widget.Label
	fill     *widget.ProgressBar
	settings *config.Settings

	position int
}

// NewSliderBinding binds the widgets and performs one initial update so the
// label matches the slider's starting position before any interaction. The
// fill bar and settings are optional.
func NewSliderBinding(slider *widget.Slider, label *widget.Label, fill *widget.ProgressBar, settings *config.Settings) *SliderBinding {
	sb := &SliderBinding{
		slider:   slider,
		label:    label,
		fill:     fill,
		settings: settings,
		position: model.DefaultSliderPosition,
	}

	if slider == nil || label == nil {
		return sb
	}

	slider.OnChanged = func(value float64) {
		sb.update(int(value))
	}
	sb.update(int(slider.Value))

	return sb
}

// Bound reports whether the binding drives real widgets.
func (sb *SliderBinding) Bound() bool {
	return sb.slider != nil && sb.label != nil
}

// Position returns the raw slider position, or the submission default when
// no slider is bound.
func (sb *SliderBinding) Position() int {
	if !sb.Bound() {
		return model.DefaultSliderPosition
	}
	return sb.position
}

// FillPercent returns the current visual fill of the slider track.
func (sb *SliderBinding) FillPercent() float64 {
	return scale.FillPercent(sb.Position())
}

func (sb *SliderBinding) update(position int) {
	position = scale.ClampPosition(position)
	sb.position = position

	sb.label.SetText(scale.FormatSize(scale.SizeForPosition(position)))
	if sb.fill != nil {
		sb.fill.SetValue(scale.FillPercent(position) / 100)
	}
	if sb.settings != nil {
		sb.settings.SetSliderPosition(position)
	}
}
