package es

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/quarryapp/quarry/internal/domain"
	apperrors "github.com/quarryapp/quarry/internal/errors"
)

// allowedMethods are the HTTP methods the console accepts for custom calls.
var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
	http.MethodHead:   true,
}

// InfoRequest builds the root-info call used as a connection probe.
func InfoRequest() domain.RequestSpec {
	return domain.RequestSpec{Method: http.MethodGet, Path: "/"}
}

// SearchRequest builds POST /{index}/_search with the given Query-DSL body.
func SearchRequest(index, body string) (domain.RequestSpec, error) {
	if err := requireIndex(index); err != nil {
		return domain.RequestSpec{}, err
	}
	raw, err := validateBody("query", body)
	if err != nil {
		return domain.RequestSpec{}, err
	}
	return domain.RequestSpec{
		Method: http.MethodPost,
		Path:   "/" + url.PathEscape(index) + "/_search",
		Body:   raw,
	}, nil
}

// DocumentGetRequest builds GET /{index}/_doc/{id}. The ID is required.
func DocumentGetRequest(index, id string) (domain.RequestSpec, error) {
	if err := requireIndex(index); err != nil {
		return domain.RequestSpec{}, err
	}
	if err := requireID(id); err != nil {
		return domain.RequestSpec{}, err
	}
	return domain.RequestSpec{
		Method: http.MethodGet,
		Path:   "/" + url.PathEscape(index) + "/_doc/" + url.PathEscape(id),
	}, nil
}

// DocumentCreateRequest builds the indexing call for a document body.
// With an ID it is PUT /{index}/_doc/{id}; with an empty ID it is
// POST /{index}/_doc and the server assigns one.
func DocumentCreateRequest(index, id, body string) (domain.RequestSpec, error) {
	if err := requireIndex(index); err != nil {
		return domain.RequestSpec{}, err
	}
	raw, err := validateBody("document", body)
	if err != nil {
		return domain.RequestSpec{}, err
	}
	if len(raw) == 0 {
		return domain.RequestSpec{}, apperrors.ValidationError{Field: "document", Message: "document body must not be empty"}
	}

	if id == "" {
		return domain.RequestSpec{
			Method: http.MethodPost,
			Path:   "/" + url.PathEscape(index) + "/_doc",
			Body:   raw,
		}, nil
	}
	return domain.RequestSpec{
		Method: http.MethodPut,
		Path:   "/" + url.PathEscape(index) + "/_doc/" + url.PathEscape(id),
		Body:   raw,
	}, nil
}

// DocumentUpdateRequest builds POST /{index}/_update/{id} with an update
// payload (typically {"doc": {...}} or a script). The ID is required.
func DocumentUpdateRequest(index, id, body string) (domain.RequestSpec, error) {
	if err := requireIndex(index); err != nil {
		return domain.RequestSpec{}, err
	}
	if err := requireID(id); err != nil {
		return domain.RequestSpec{}, err
	}
	raw, err := validateBody("payload", body)
	if err != nil {
		return domain.RequestSpec{}, err
	}
	if len(raw) == 0 {
		return domain.RequestSpec{}, apperrors.ValidationError{Field: "payload", Message: "update payload must not be empty"}
	}
	return domain.RequestSpec{
		Method: http.MethodPost,
		Path:   "/" + url.PathEscape(index) + "/_update/" + url.PathEscape(id),
		Body:   raw,
	}, nil
}

// DocumentDeleteRequest builds DELETE /{index}/_doc/{id}. The ID is required.
func DocumentDeleteRequest(index, id string) (domain.RequestSpec, error) {
	if err := requireIndex(index); err != nil {
		return domain.RequestSpec{}, err
	}
	if err := requireID(id); err != nil {
		return domain.RequestSpec{}, err
	}
	return domain.RequestSpec{
		Method: http.MethodDelete,
		Path:   "/" + url.PathEscape(index) + "/_doc/" + url.PathEscape(id),
	}, nil
}

// CreateIndexRequest builds PUT /{index} with an index definition body.
func CreateIndexRequest(index string, body json.RawMessage) (domain.RequestSpec, error) {
	if err := requireIndex(index); err != nil {
		return domain.RequestSpec{}, err
	}
	return domain.RequestSpec{
		Method: http.MethodPut,
		Path:   "/" + url.PathEscape(index),
		Body:   body,
	}, nil
}

// RawRequest builds an arbitrary REST call for the API console. The path is
// used verbatim (query strings allowed) with a leading slash enforced; the
// body, when present, must be valid JSON.
func RawRequest(method, path, body string) (domain.RequestSpec, error) {
	method = strings.ToUpper(strings.TrimSpace(method))
	if !allowedMethods[method] {
		return domain.RequestSpec{}, apperrors.ValidationError{Field: "method", Message: fmt.Sprintf("unsupported method %q", method)}
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return domain.RequestSpec{}, apperrors.ValidationError{Field: "path", Message: "path must not be empty"}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	raw, err := validateBody("body", body)
	if err != nil {
		return domain.RequestSpec{}, err
	}

	return domain.RequestSpec{Method: method, Path: path, Body: raw}, nil
}

// IndexDefinition holds the create-index form fields, assembled into a
// single request body.
type IndexDefinition struct {
	Shards   int
	Replicas int
	Settings string // additional settings JSON object, optional
	Mappings string // mappings JSON object, optional
	Aliases  string // aliases JSON object, optional
}

// Body assembles the index definition into the JSON document expected by
// PUT /{index}. Extra settings are merged alongside the shard counts.
func (d IndexDefinition) Body() (json.RawMessage, error) {
	settings := map[string]any{}

	if extra, err := validateObject("settings", d.Settings); err != nil {
		return nil, err
	} else {
		for k, v := range extra {
			settings[k] = v
		}
	}
	if d.Shards > 0 {
		settings["number_of_shards"] = d.Shards
	}
	if d.Replicas >= 0 {
		settings["number_of_replicas"] = d.Replicas
	}

	doc := map[string]any{}
	if len(settings) > 0 {
		doc["settings"] = settings
	}

	if mappings, err := validateObject("mappings", d.Mappings); err != nil {
		return nil, err
	} else if mappings != nil {
		doc["mappings"] = mappings
	}

	if aliases, err := validateObject("aliases", d.Aliases); err != nil {
		return nil, err
	} else if aliases != nil {
		doc["aliases"] = aliases
	}

	return json.Marshal(doc)
}

// requireIndex rejects an empty index name before any request is built.
func requireIndex(index string) error {
	if strings.TrimSpace(index) == "" {
		return apperrors.ValidationError{Field: "index", Message: "index name must not be empty"}
	}
	return nil
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.ValidationError{Field: "id", Message: "document ID is required for this action"}
	}
	return nil
}

// validateBody checks that a body field holds valid JSON. Empty input is
// allowed and yields a nil body.
func validateBody(field, body string) (json.RawMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, apperrors.ValidationError{Field: field, Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return json.RawMessage(body), nil
}

// validateObject parses an optional JSON object field for the index form.
func validateObject(field, body string) (map[string]any, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(body), &obj); err != nil {
		return nil, apperrors.ValidationError{Field: field, Message: fmt.Sprintf("must be a JSON object: %v", err)}
	}
	return obj, nil
}
