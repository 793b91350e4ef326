package services

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DocumentPayload is a binary document encoded for transport.
type DocumentPayload struct {
	Data     string
	MIMEType string
}

type TextPayload struct {
	Text string
}

// FromDocument base64-encodes raw bytes. Type and size are left for the model to reject.
func FromDocument(raw []byte, mimeType string) DocumentPayload {
	return DocumentPayload{
		Data:     base64.StdEncoding.EncodeToString(raw),
		MIMEType: mimeType,
	}
}

// FromText passes text through unchanged. Rejecting blank input is the caller's job.
func FromText(raw string) TextPayload {
	return TextPayload{Text: raw}
}

// FromDataURL splits a "data:<mime>;base64,<data>" string as produced by a browser FileReader.
func FromDataURL(dataURL string) (DocumentPayload, error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return DocumentPayload{}, fmt.Errorf("not a data URL")
	}

	header, data, ok := strings.Cut(dataURL, ",")
	if !ok {
		return DocumentPayload{}, fmt.Errorf("data URL has no payload")
	}

	mimeType := strings.TrimPrefix(header, "data:")
	mimeType, _, _ = strings.Cut(mimeType, ";")

	return DocumentPayload{
		Data:     data,
		MIMEType: mimeType,
	}, nil
}

// decodePayload accepts plain base64 or a data URL. The media type is
// returned only for data URLs.
func decodePayload(data string) ([]byte, string, error) {
	var mimeType string
	if strings.HasPrefix(data, "data:") {
		payload, err := FromDataURL(data)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decode document payload: %w", err)
		}
		data, mimeType = payload.Data, payload.MIMEType
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode document payload: %w", err)
	}
	return raw, mimeType, nil
}
