package dal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Envelope is the raw backend response body with shape probing helpers
type Envelope struct {
	StatusCode int
	Raw        []byte
}

// NewEnvelope builds an envelope from a response body
func NewEnvelope(status int, body []byte) *Envelope {
	return &Envelope{StatusCode: status, Raw: body}
}

// JSONEnvelope marshals v as the response body, handy for fakes
func JSONEnvelope(status int, v interface{}) *Envelope {
	body, err := json.Marshal(v)
	if err != nil {
		body = []byte(fmt.Sprintf(`{"success":false,"message":%q}`, err.Error()))
	}
	return NewEnvelope(status, body)
}

// Get returns the value at a gjson path
func (e *Envelope) Get(path string) gjson.Result {
	if e == nil || !gjson.ValidBytes(e.Raw) {
		return gjson.Result{}
	}
	if path == "" || path == "@this" {
		return gjson.ParseBytes(e.Raw)
	}
	return gjson.GetBytes(e.Raw, path)
}

// Valid reports whether the body is well-formed JSON
func (e *Envelope) Valid() bool {
	return e != nil && len(e.Raw) > 0 && gjson.ValidBytes(e.Raw)
}

// messagePaths is the preference order for human-readable failure messages
var messagePaths = []string{"data.message", "data.error", "message", "error", "error.message"}

// ErrorMessage extracts the most specific failure message present in the body
func (e *Envelope) ErrorMessage() string {
	if !e.Valid() {
		return ""
	}
	for _, p := range messagePaths {
		r := e.Get(p)
		if r.Type == gjson.String && strings.TrimSpace(r.String()) != "" {
			return r.String()
		}
	}
	// validation errors sometimes come back as an array of strings
	if r := e.Get("message"); r.IsArray() {
		var parts []string
		for _, item := range r.Array() {
			parts = append(parts, item.String())
		}
		return strings.Join(parts, "; ")
	}
	return ""
}
