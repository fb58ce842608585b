package server

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodySize bounds the bytes read from a request body.
const maxBodySize = 10 << 20

// Request is a GraphQL operation taken from an HTTP request.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

var errMissingQuery = errors.New("must provide query string")

// parseRequest reads a Request from the query string of a GET, or from the
// body of a POST sent as application/json or application/graphql.
func parseRequest(r *http.Request) (*Request, error) {
	req := new(Request)

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if vars := q.Get("variables"); vars != "" {
			if err := json.UnmarshalFromString(vars, &req.Variables); err != nil {
				return nil, fmt.Errorf("variables are invalid JSON: %w", err)
			}
		}

	case http.MethodPost:
		body := io.LimitReader(r.Body, maxBodySize)

		contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		switch contentType {
		case "application/graphql":
			data, err := io.ReadAll(body)
			if err != nil {
				return nil, fmt.Errorf("read body: %w", err)
			}
			req.Query = string(data)

		case "application/json", "":
			if err := json.NewDecoder(body).Decode(req); err != nil {
				return nil, fmt.Errorf("POST body sent invalid JSON: %w", err)
			}

		default:
			return nil, fmt.Errorf("unsupported content type %q", contentType)
		}
	}

	if req.Query == "" {
		return nil, errMissingQuery
	}
	return req, nil
}
