/*
Package server implements msgpack IPC for dictionary lookups.

Clients write msgpack-encoded requests to stdin and read one msgpack-encoded
response per request from stdout. The first value written by the server is a
ready marker:

	{"status": "ready"}

Every request carries an id that is echoed back and an op:

	{"id": "1", "op": "lookup", "w": "haf"}
	{"id": "2", "op": "suggest", "w": "ha", "l": 5, "o": 5}
	{"id": "3", "op": "suggest", "pat": "^h.*r$", "all": true}
	{"id": "4", "op": "fuzzy", "w": "hestt", "lvl": 1}
	{"id": "5", "op": "today"}
	{"id": "6", "op": "random"}

Suggestions come back ranked, rank 1 first, with timing in microseconds:

	{"id": "2", "s": [{"w": "hafa", "r": 1}, {"w": "hafr", "r": 2}], "c": 2, "t": 41}

Failures are reported as {"id": "...", "e": "message", "c": code}. The server
never writes history or favorites.
*/
package server

// Ops understood by the server.
const (
	OpLookup  = "lookup"
	OpSuggest = "suggest"
	OpFuzzy   = "fuzzy"
	OpToday   = "today"
	OpRandom  = "random"
)

// Error codes.
const (
	CodeBadRequest     = 400
	CodeNotFound       = 404
	CodeInvalidPattern = 422
	CodeInternal       = 500
)

// Request is any client message. Unused fields are omitted on the wire.
type Request struct {
	ID      string `msgpack:"id"`
	Op      string `msgpack:"op"`
	Word    string `msgpack:"w,omitempty"`
	Pattern string `msgpack:"pat,omitempty"`
	Level   *int   `msgpack:"lvl,omitempty"`
	Limit   int    `msgpack:"l,omitempty"`
	Offset  int    `msgpack:"o,omitempty"`
	All     bool   `msgpack:"all,omitempty"`
}

// Suggestion - one ranked word
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// SuggestResponse answers suggest and fuzzy requests.
type SuggestResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// LookupResponse answers lookup requests. On a miss Found is false and
// Suggestions holds the prefix suggestions for the word.
type LookupResponse struct {
	ID          string       `msgpack:"id"`
	Word        string       `msgpack:"w"`
	Found       bool         `msgpack:"f"`
	Definitions []string     `msgpack:"d,omitempty"`
	Variant     string       `msgpack:"v,omitempty"`
	Suggestions []Suggestion `msgpack:"s,omitempty"`
	TimeTaken   int64        `msgpack:"t"`
}

// WordResponse answers today and random requests.
type WordResponse struct {
	ID   string `msgpack:"id"`
	Word string `msgpack:"w"`
}

// ErrorResponse holds basic error information
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
