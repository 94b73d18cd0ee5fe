// Package response defines the uniform envelope returned by every JSON
// endpoint.  A successful response carries its payload in Data; a failed one
// carries a human readable explanation in Message.
package response

// Envelope is the wire shape shared by all JSON endpoints.  Data is omitted
// when nil and Message is omitted when empty so that success responses read
// {"success":true,"data":...} and failures read {"success":false,"message":...}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps payload in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// Fail builds a failed envelope with the given explanation.
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
