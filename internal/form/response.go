package form

import "encoding/json"

// Response is the part of a lab server reply the submitter looks at.
// Anything else the solver returns is kept in Raw and otherwise ignored.
type Response struct {
	// IsFinished is the completion flag. Only a JSON true sets it.
	IsFinished bool

	// Progress is the reported completion percentage, when present.
	Progress *float64

	// Fields holds the top-level keys of an object reply, nil otherwise.
	Fields map[string]json.RawMessage

	Raw json.RawMessage
}

// ParseResponse decodes a reply without ever failing: malformed JSON, a
// non-object reply or a flag of the wrong type all produce a Response that
// is simply not finished.
func ParseResponse(body []byte) Response {
	resp := Response{Raw: append(json.RawMessage(nil), body...)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return resp
	}
	resp.Fields = fields

	if raw, ok := fields["IsFinished"]; ok {
		var finished bool
		if json.Unmarshal(raw, &finished) == nil {
			resp.IsFinished = finished
		}
	}

	if raw, ok := fields["Progress"]; ok {
		var progress float64
		if json.Unmarshal(raw, &progress) == nil {
			resp.Progress = &progress
		}
	}

	return resp
}
