/*
Package server implements msgpack IPC for buzzword lookup services.

The server provides a minimal request/response interface over stdin/stdout
using binary msgpack encoding. Each request carries an ID echoed back in the
response so clients can multiplex.

Lookup requests use this structure:

	{"id": "req_001", "op": "query", "q": "synergy"}

The server responds with ranked matches and related suggestions:

	{"id": "req_001", "st": "ok", "res": [{"p": "synergy", "s": 1.0, "m": "exact"}], "c": 1, "t": 145}

Invalid queries come back as a typed status rather than an error, so the
client can render the matching hint:

	{"id": "req_002", "st": "invalid", "r": "tooShort"}

Supported ops are "query", "similar", "related", "random" and "health".
The health op exists for clients that poll liveness before enabling their
search box.
*/
package server

// Request is an incoming IPC message.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Query string `msgpack:"q,omitempty"`
}

// MeaningPayload is one alternate interpretation of a phrase.
type MeaningPayload struct {
	Translation string `msgpack:"tr"`
	Context     string `msgpack:"ctx,omitempty"`
}

// ResultPayload is one ranked match.
type ResultPayload struct {
	Phrase       string           `msgpack:"p"`
	Translation  string           `msgpack:"tr"`
	Category     string           `msgpack:"cat,omitempty"`
	Context      string           `msgpack:"ctx,omitempty"`
	Alternatives []string         `msgpack:"alt,omitempty"`
	Secondary    []MeaningPayload `msgpack:"sec,omitempty"`
	Score        float64          `msgpack:"s"`
	MatchType    string           `msgpack:"m"`
	MatchedTerms []string         `msgpack:"h,omitempty"`
}

// SuggestionPayload is one proposed phrase.
type SuggestionPayload struct {
	Phrase   string `msgpack:"p"`
	Category string `msgpack:"cat,omitempty"`
}

// Response is the reply to any op. Status mirrors the engine's typed result:
// "ok", "empty" or "invalid" plus a reason code.
type Response struct {
	ID          string              `msgpack:"id"`
	Status      string              `msgpack:"st"`
	Reason      string              `msgpack:"r,omitempty"`
	Results     []ResultPayload     `msgpack:"res,omitempty"`
	Suggestions []SuggestionPayload `msgpack:"sug,omitempty"`
	Count       int                 `msgpack:"c"`
	TimeTaken   int64               `msgpack:"t"`
}

// ErrorResponse holds basic error information for malformed requests.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
