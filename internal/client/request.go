package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Request describes a single call against the TianNiu API.
type Request struct {
	// Method is the HTTP method (GET, POST, DELETE)
	Method string

	// Path is appended to the client's base URL, e.g. "/containers"
	Path string

	// Query holds the optional parameters the caller explicitly set
	Query Query

	// Body is JSON-encoded when non-nil. json.RawMessage and []byte are sent as-is.
	Body any
}

// Query is an ordered set of query parameters. A parameter is present only
// when Set was called for it, so zero values such as 0, "" and false are
// forwarded like any other value.
type Query struct {
	keys   []string
	values map[string]string
}

// Set records key with the string form of value. Supported value types are
// string, int and bool; anything else is formatted with fmt.Sprint.
func (q *Query) Set(key string, value any) {
	if q.values == nil {
		q.values = make(map[string]string)
	}
	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}

	switch v := value.(type) {
	case string:
		q.values[key] = v
	case int:
		q.values[key] = strconv.Itoa(v)
	case bool:
		q.values[key] = strconv.FormatBool(v)
	default:
		q.values[key] = fmt.Sprint(v)
	}
}

// Get returns the value for key and whether it was set.
func (q Query) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

// Len returns the number of parameters set.
func (q Query) Len() int {
	return len(q.keys)
}

// Encode renders the parameters in the order they were set.
func (q Query) Encode() string {
	parts := make([]string, 0, len(q.keys))
	for _, k := range q.keys {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(q.values[k]))
	}
	return strings.Join(parts, "&")
}

// ContainerPath builds "/containers/{id}" followed by an optional action
// segment such as "start" or "logs". The id is path-escaped.
func ContainerPath(id string, action ...string) string {
	p := "/containers/" + url.PathEscape(id)
	for _, a := range action {
		p += "/" + a
	}
	return p
}
