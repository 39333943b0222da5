package common

import (
	"encoding/json"
	"strings"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// DecodeResume parses a structured resume document from JSON, the
// interchange format produced by the AI parser and API clients.
func DecodeResume(content string) (types.ResumeDocument, error) {
	var resume types.ResumeDocument
	if err := json.Unmarshal([]byte(content), &resume); err != nil {
		return resume, errors.NewValidationError(errors.ErrCodeInvalidResume,
			"Resume file is not a valid JSON resume document", err)
	}
	return resume, nil
}

// DecodeJobDescription accepts either a JSON JobDescription object or
// raw posting text. Raw text becomes the description verbatim, so
// plain .txt postings work without any wrapping.
func DecodeJobDescription(content string) types.JobDescription {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") {
		var jd types.JobDescription
		if err := json.Unmarshal([]byte(trimmed), &jd); err == nil && jd.Description != "" {
			return jd
		}
	}
	return types.JobDescription{Description: content}
}
