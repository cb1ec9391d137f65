package schema

import "encoding/json"

// Envelope is the body every backend endpoint responds with.
// Data is left raw so callers decode it into the type the endpoint returns.
type Envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode,omitempty"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// Decode unmarshals envelope data into target; an absent data field leaves target untouched.
func (e *Envelope) Decode(target interface{}) error {
	if target == nil || len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	return json.Unmarshal(e.Data, target)
}

// NewEnvelope wraps data into a successful envelope.
func NewEnvelope(statusCode int, message string, data interface{}) (*Envelope, error) {
	ret := &Envelope{Success: statusCode < 400, StatusCode: statusCode, Message: message}
	if data == nil {
		return ret, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	ret.Data = raw
	return ret, nil
}
