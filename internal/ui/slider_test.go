package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/gauransh/gitingest/internal/config"
	"github.com/gauransh/gitingest/internal/model"
	"github.com/gauransh/gitingest/internal/scale"
)

func TestSliderBindingInitialUpdate(t *testing.T) {
	test.NewApp()
	slider := widget.NewSlider(scale.MinPosition, scale.MaxPosition)
	slider.Value = 243
	label := widget.NewLabel("")

	sb := NewSliderBinding(slider, label, nil, nil)

	expected := scale.FormatSize(scale.SizeForPosition(243))
	if label.Text != expected {
		t.Errorf("Label after binding = %q, expected %q", label.Text, expected)
	}
	if sb.Position() != 243 {
		t.Errorf("Position() = %d, expected 243", sb.Position())
	}
}

func TestSliderBindingUpdatesOnChange(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	slider := widget.NewSlider(scale.MinPosition, scale.MaxPosition)
	label := widget.NewLabel("")
	fill := widget.NewProgressBar()

	sb := NewSliderBinding(slider, label, fill, settings)

	slider.SetValue(scale.MaxPosition)

	if label.Text != "100mb" {
		t.Errorf("Label at max position = %q, expected 100mb", label.Text)
	}
	if fill.Value != 1 {
		t.Errorf("Fill at max position = %v, expected 1", fill.Value)
	}
	if settings.GetSliderPosition() != scale.MaxPosition {
		t.Errorf("Stored position = %d, expected %d", settings.GetSliderPosition(), scale.MaxPosition)
	}

	slider.SetValue(250)
	if sb.FillPercent() != 50 {
		t.Errorf("FillPercent() = %v, expected 50", sb.FillPercent())
	}
}

func TestSliderBindingNoOpWithoutWidgets(t *testing.T) {
	sb := NewSliderBinding(nil, nil, nil, nil)

	if sb.Bound() {
		t.Error("Binding without widgets should not report bound")
	}
	if sb.Position() != model.DefaultSliderPosition {
		t.Errorf("Unbound Position() = %d, expected %d", sb.Position(), model.DefaultSliderPosition)
	}
}
