package rpc

import "net/http"

// RequestOption decorates every outgoing request of a HttpClient.
type RequestOption interface {
	Set(req *http.Request)
}

type authWithApiKey struct {
	apiKey string
}

func AuthWithApiKey(apiKey string) RequestOption {
	return authWithApiKey{apiKey: apiKey}
}

func (a authWithApiKey) Set(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
}

type withHeader struct {
	key, value string
}

// WithHeader sets a static header on every request.
func WithHeader(key, value string) RequestOption {
	return withHeader{key: key, value: value}
}

func (h withHeader) Set(req *http.Request) {
	req.Header.Set(h.key, h.value)
}
