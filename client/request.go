package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strings"

	"github.com/viant/taskmgr/schema"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Request describes one backend call. It is never mutated once built.
type Request struct {
	Method string
	Path   string
	Params map[string]string
	Query  url.Values
	Header http.Header
	Body   interface{}
	Form   *Form
}

// Form represents a multipart/form-data body
type Form struct {
	Fields map[string]string
	Files  map[string]*schema.File
}

// RequestOption customises a Request
type RequestOption func(r *Request)

// WithParam sets a path parameter, e.g. {id}
func WithParam(name, value string) RequestOption {
	return func(r *Request) {
		if r.Params == nil {
			r.Params = map[string]string{}
		}
		r.Params[name] = value
	}
}

// WithQuery adds a query parameter when value is not empty
func WithQuery(key, value string) RequestOption {
	return func(r *Request) {
		if value == "" {
			return
		}
		if r.Query == nil {
			r.Query = url.Values{}
		}
		r.Query.Add(key, value)
	}
}

// WithHeader sets a request header
func WithHeader(key, value string) RequestOption {
	return func(r *Request) {
		if r.Header == nil {
			r.Header = http.Header{}
		}
		r.Header.Set(key, value)
	}
}

// WithJSON sets a JSON body
func WithJSON(body interface{}) RequestOption {
	return func(r *Request) {
		r.Body = body
	}
}

// WithForm sets a multipart body
func WithForm(form *Form) RequestOption {
	return func(r *Request) {
		r.Form = form
	}
}

// NewRequest creates a request descriptor
func NewRequest(method, path string, options ...RequestOption) *Request {
	ret := &Request{Method: method, Path: path}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// URI expands path parameters and appends the query string
func (r *Request) URI() string {
	path := r.Path
	for name, value := range r.Params {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	if len(r.Query) > 0 {
		path += "?" + r.Query.Encode()
	}
	return path
}

// encode returns the request body and its content type
func (r *Request) encode() (io.Reader, string, error) {
	switch {
	case r.Form != nil:
		return r.Form.encode()
	case r.Body != nil:
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
	return nil, "", nil
}

// encode writes the form into memory so the body can be replayed after a refresh
func (f *Form) encode() (io.Reader, string, error) {
	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	for _, name := range sortedKeys(f.Fields) {
		if err := writer.WriteField(name, f.Fields[name]); err != nil {
			return nil, "", err
		}
	}
	for _, name := range sortedKeys(f.Files) {
		file := f.Files[name]
		if file == nil || file.Content == nil {
			continue
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(name), quoteEscaper.Replace(file.Name)))
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err = io.Copy(part, file.Content); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return bytes.NewReader(buffer.Bytes()), writer.FormDataContentType(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
