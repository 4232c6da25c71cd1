package xendit

import (
	"context"
	"net/url"
)

// fakeCall records one transport invocation.
type fakeCall struct {
	method  string
	path    string
	body    map[string]any
	query   url.Values
	headers map[string]string
}

// fakeRequester is a recording transport double returning a canned response.
type fakeRequester struct {
	calls    []fakeCall
	response map[string]any
	err      error
}

func (f *fakeRequester) record(method, path string, body map[string]any, query url.Values, headers map[string]string) (map[string]any, error) {
	f.calls = append(f.calls, fakeCall{method: method, path: path, body: body, query: query, headers: headers})
	if f.err != nil {
		return nil, f.err
	}
	if f.response != nil {
		return f.response, nil
	}
	return map[string]any{}, nil
}

func (f *fakeRequester) Get(_ context.Context, path string, query url.Values, headers map[string]string) (map[string]any, error) {
	return f.record("GET", path, nil, query, headers)
}

func (f *fakeRequester) Post(_ context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error) {
	return f.record("POST", path, body, nil, headers)
}

func (f *fakeRequester) Patch(_ context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error) {
	return f.record("PATCH", path, body, nil, headers)
}

func (f *fakeRequester) Put(_ context.Context, path string, body map[string]any, headers map[string]string) (map[string]any, error) {
	return f.record("PUT", path, body, nil, headers)
}

func (f *fakeRequester) Delete(_ context.Context, path string, query url.Values, headers map[string]string) (map[string]any, error) {
	return f.record("DELETE", path, nil, query, headers)
}
