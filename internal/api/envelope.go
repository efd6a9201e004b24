package api

import (
	"github.com/goccy/go-json"
)

func marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// DecodeData decodes a backend payload into out. Most endpoints wrap their
// payload as {"data": ..., "message": ...} but a few return the object bare,
// so the data field is unwrapped only when present.
func DecodeData(raw []byte, out any) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		return json.Unmarshal(envelope.Data, out)
	}

	return json.Unmarshal(raw, out)
}

// messageField pulls the human-readable message out of an error body, trying
// the field names the backend is known to use, in order.
func messageField(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}

	for _, key := range []string{"message", "error", "msg"} {
		if value, ok := body[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}
