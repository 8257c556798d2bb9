package ingest

import (
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/gauransh/gitingest/internal/model"
)

// Form field names expected by the server.
const (
	FieldInputText      = "input_text"
	FieldPatternType    = "pattern_type"
	FieldPattern        = "pattern"
	FieldMaxFileSize    = "max_file_size"
	FieldSliderPosition = "slider_position"
	FieldBranch         = "branch"
	FieldGitUsername    = "git_username"
	FieldGitPAT         = "git_pat"
)

// writeSnapshot encodes the request as the multipart form the server expects.
// Both max_file_size and slider_position carry the raw slider value: the
// server derives the byte limit itself, and the historical form contract
// sends the position in both fields.
func writeSnapshot(w *multipart.Writer, req model.IngestRequest) error {
	position := req.SliderPosition
	if position < 0 {
		position = model.DefaultSliderPosition
	}

	patternType := req.PatternType
	if patternType == "" {
		patternType = model.PatternExclude
	}

	fields := []struct {
		name  string
		value string
	}{
		{FieldInputText, req.Source},
		{FieldPatternType, string(patternType)},
		{FieldPattern, req.Pattern},
		{FieldMaxFileSize, strconv.Itoa(position)},
		{FieldSliderPosition, strconv.Itoa(position)},
	}

	if req.Branch != "" {
		fields = append(fields, struct{ name, value string }{FieldBranch, req.Branch})
	}

	if req.HasCredentials() {
		username, pat := req.TrimmedCredentials()
		fields = append(fields,
			struct{ name, value string }{FieldGitUsername, username},
			struct{ name, value string }{FieldGitPAT, pat},
		)
	}

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("write form field %s: %w", f.name, err)
		}
	}

	return nil
}
