/*
Package server implements msgpack IPC for history completion services.

The server speaks binary msgpack over stdin/stdout on a request response
model: clients send one structured message at a time and receive one
response. Each message carries an ID that is echoed back, so clients can
pipeline requests.

A completion request and its response:

	{"id": "req_001", "op": "complete", "p": "hello", "l": 24}
	{"id": "req_001", "s": [{"w": "hello world", "r": 1}], "c": 1, "t": 145}

History management uses the same envelope:

	{"id": "h_001", "op": "insert", "w": "hello world"}
	{"id": "h_002", "op": "delete", "w": "hello world"}
	{"id": "h_003", "op": "words"}

Inserts and deletes answer with a status message; "words" answers with the
completion response shape and no prefix constraint. Ranks are positional
only. The history lives in process memory and is discarded on exit.
*/
package server

// Request is the single envelope for every client message.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Word   string `msgpack:"w,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion - one completion candidate with its positional rank
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - answer to "complete" and "words" requests
type CompletionResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatusResponse - answer to "insert", "delete" and "health" requests
type StatusResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// RequestError holds basic error information for rejected requests
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
