package main

import (
	"testing"

	"github.com/gauransh/gitingest/internal/config"
	"github.com/gauransh/gitingest/internal/model"
)

func TestResolveSliderPosition(t *testing.T) {
	cfg := &config.FileConfig{SliderPosition: 300}

	tests := []struct {
		flagValue int
		expected  int
	}{
		{unsetSliderPosition, 300}, // flag not given, config wins
		{0, 0},                     // explicit zero is not "unset"
		{250, 250},
		{9999, 500}, // explicit values are clamped
	}

	for _, tt := range tests {
		got := resolveSliderPosition(tt.flagValue, cfg)
		if got != tt.expected {
			t.Errorf("resolveSliderPosition(%d) = %d, expected %d", tt.flagValue, got, tt.expected)
		}
	}
}

func TestResolveSliderPositionWithoutConfigFile(t *testing.T) {
	got := resolveSliderPosition(unsetSliderPosition, config.DefaultFileConfig())
	if got != model.DefaultSliderPosition {
		t.Errorf("resolveSliderPosition(unset) = %d, expected the default %d", got, model.DefaultSliderPosition)
	}
}

func TestResolvePatterns(t *testing.T) {
	tests := []struct {
		exclude      []string
		include      []string
		expectedType model.PatternType
		expectedPat  string
	}{
		{nil, nil, model.PatternExclude, ""},
		{[]string{"*.md"}, nil, model.PatternExclude, "*.md"},
		{nil, []string{"src/", "*.go"}, model.PatternInclude, "src/ *.go"},
		// Include wins when both are given
		{[]string{"*.md"}, []string{"src/"}, model.PatternInclude, "src/"},
	}

	for _, tt := range tests {
		patternType, pattern := resolvePatterns(tt.exclude, tt.include)
		if patternType != tt.expectedType || pattern != tt.expectedPat {
			t.Errorf("resolvePatterns(%v, %v) = (%q, %q), expected (%q, %q)",
				tt.exclude, tt.include, patternType, pattern, tt.expectedType, tt.expectedPat)
		}
	}
}
