package model

import "strings"

// DefaultSliderPosition is the slider value submitted when no slider is
// bound to the form.
const DefaultSliderPosition = 50

// PatternType selects how the pattern field is applied on the server.
type PatternType string

const (
	PatternExclude PatternType = "exclude"
	PatternInclude PatternType = "include"
)

// IngestRequest is the complete set of values assembled for a single
// submission. It is built fresh per submission and discarded once the
// request resolves or fails.
type IngestRequest struct {
	// ID identifies the request in logs and the X-Request-ID header.
	ID string

	// Source is the repository reference or local path to ingest.
	Source string

	PatternType PatternType
	Pattern     string

	// Branch is optional; empty means the server default.
	Branch string

	// SliderPosition is the raw linear slider value in [0, 500]. The server
	// receives it verbatim in both max_file_size and slider_position.
	SliderPosition int

	GitUsername string
	GitPAT      string
}

// HasCredentials reports whether either credential field carries a
// non-blank value.
func (r IngestRequest) HasCredentials() bool {
	return strings.TrimSpace(r.GitUsername) != "" || strings.TrimSpace(r.GitPAT) != ""
}

// TrimmedCredentials returns the credential pair with surrounding
// whitespace removed.
func (r IngestRequest) TrimmedCredentials() (username, pat string) {
	return strings.TrimSpace(r.GitUsername), strings.TrimSpace(r.GitPAT)
}
