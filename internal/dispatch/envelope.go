// Package dispatch routes named tool calls to their handlers and wraps every
// outcome in a uniform response envelope. It is the single execution path
// shared by the REST action endpoint, the JSON-RPC endpoint and the MCP
// server.
package dispatch

// Envelope is the response shape every tool returns. The data and error keys
// are always present in the serialized form, null when unset, and message is
// always populated.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   any    `json:"error"`
	Message string `json:"message"`
}

func ok(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

func fail(errMsg, message string) Envelope {
	return Envelope{Success: false, Error: errMsg, Message: message}
}
