package core

import (
	"net/url"
	"strings"
)

// Param is a single named request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Its encoding is the canonical form
// that is both signed and sent, so order is significant.
type Params []Param

// Set replaces the value of key, or appends it when absent.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns the value of key and whether it is present.
func (p Params) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Encode serializes the parameters as key=value pairs joined by '&' in
// insertion order, escaping keys and values with url.QueryEscape.
func (p Params) Encode() string {
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}

// Request describes one endpoint call before it is signed.
type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Params Params `json:"params,omitempty"`
}

func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
	}
}

// SetParam sets a parameter and returns the request for chaining.
func (r *Request) SetParam(key, value string) *Request {
	r.Params.Set(key, value)
	return r
}

// SetParamIf sets a parameter only when value is non-empty.
func (r *Request) SetParamIf(key, value string) *Request {
	if value != "" {
		r.Params.Set(key, value)
	}
	return r
}
