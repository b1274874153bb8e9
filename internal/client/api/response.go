package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// RawResponse is a buffered HTTP response.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports a 2xx status.
func (r *RawResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON decodes the body as an object. Empty, non-JSON and non-object bodies
// decode to an empty map.
func (r *RawResponse) JSON() map[string]any {
	var out map[string]any
	if err := json.Unmarshal(r.Body, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// Decode unmarshals the body into v.
func (r *RawResponse) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}

// StringField returns body[key] when it is a non-empty string.
func StringField(body map[string]any, key string) (string, bool) {
	s, ok := body[key].(string)
	return s, ok && s != ""
}

// Classify turns a non-2xx response into an *Error and returns nil for 2xx.
func Classify(resp *RawResponse) *Error {
	if resp.IsSuccess() {
		return nil
	}
	msg, ok := StringField(resp.JSON(), "message")
	if !ok {
		msg = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
	}
	return &Error{
		Kind:       KindForStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    msg,
	}
}
