package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/gauransh/gitingest/internal/model"
	"github.com/gauransh/gitingest/internal/scale"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL           = "server_url"
	KeySliderPosition      = "slider_position"
	KeyRequestTimeout      = "request_timeout_seconds"
	KeyRememberCredentials = "remember_credentials"
	KeyGitUsername         = "git_username"
)

// Default values
const (
	DefaultServerURL           = "https://gitingest.com"
	DefaultRequestTimeoutSec   = 120
	DefaultRememberCredentials = false

	MinRequestTimeoutSec = 5
	MaxRequestTimeoutSec = 600
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the configured gitingest server base URL
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the gitingest server base URL
func (s *Settings) SetServerURL(url string) {
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, url)
}

// GetSliderPosition returns the last slider position, clamped to the slider
// range
func (s *Settings) GetSliderPosition() int {
	return scale.ClampPosition(
		s.app.Preferences().IntWithFallback(KeySliderPosition, model.DefaultSliderPosition))
}

// SetSliderPosition stores the slider position so the next launch starts
// where the user left off
func (s *Settings) SetSliderPosition(position int) {
	s.app.Preferences().SetInt(KeySliderPosition, scale.ClampPosition(position))
}

// GetRequestTimeout returns the submission timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeout)
	if seconds <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeoutSec)
		return DefaultRequestTimeoutSec * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeoutSeconds sets the submission timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeoutSec {
		seconds = MinRequestTimeoutSec
	}
	if seconds > MaxRequestTimeoutSec {
		seconds = MaxRequestTimeoutSec
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetRememberCredentials returns whether the git username is kept between
// sessions. The PAT is never persisted.
func (s *Settings) GetRememberCredentials() bool {
	return s.app.Preferences().BoolWithFallback(KeyRememberCredentials, DefaultRememberCredentials)
}

// SetRememberCredentials sets whether the git username is kept between
// sessions
func (s *Settings) SetRememberCredentials(remember bool) {
	s.app.Preferences().SetBool(KeyRememberCredentials, remember)
	if !remember {
		s.app.Preferences().RemoveValue(KeyGitUsername)
	}
}

// GetGitUsername returns the stored git username, if remembering is enabled
func (s *Settings) GetGitUsername() string {
	if !s.GetRememberCredentials() {
		return ""
	}
	return s.app.Preferences().String(KeyGitUsername)
}

// SetGitUsername stores the git username when remembering is enabled
func (s *Settings) SetGitUsername(username string) {
	if !s.GetRememberCredentials() {
		return
	}
	s.app.Preferences().SetString(KeyGitUsername, username)
}
