package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseDataURL decodes a "data:<mime>;base64,<payload>" string as produced by
// canvas.toDataURL and FileReader.readAsDataURL. A bare base64 payload without
// the data: prefix is accepted too and reported with an empty content type.
func ParseDataURL(s string) (contentType string, data []byte, err error) {
	if s == "" {
		return "", nil, fmt.Errorf("empty payload")
	}

	payload := s
	if strings.HasPrefix(s, "data:") {
		idx := strings.Index(s, ";base64,")
		if idx < 0 {
			return "", nil, fmt.Errorf("invalid data URL")
		}
		contentType = s[len("data:"):idx]
		payload = s[idx+len(";base64,"):]
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}

	return contentType, data, nil
}
