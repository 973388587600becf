package es

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/quarryapp/quarry/internal/errors"
)

func TestSearchRequest(t *testing.T) {
	spec, err := SearchRequest("logs", `{"query":{"match_all":{}}}`)
	require.NoError(t, err)

	assert.Equal(t, "POST", spec.Method)
	assert.Equal(t, "/logs/_search", spec.Path)
	assert.JSONEq(t, `{"query":{"match_all":{}}}`, string(spec.Body))
}

func TestSearchRequest_Validation(t *testing.T) {
	_, err := SearchRequest("", `{}`)
	var vErr apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "index", vErr.Field)

	_, err = SearchRequest("logs", `{"a":}`)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "query", vErr.Field)
}

func TestDocumentGetRequest(t *testing.T) {
	spec, err := DocumentGetRequest("logs", "1")
	require.NoError(t, err)

	assert.Equal(t, "GET", spec.Method)
	assert.Equal(t, "/logs/_doc/1", spec.Path)
	assert.False(t, spec.HasBody())
}

func TestDocumentCreateRequest_WithID(t *testing.T) {
	spec, err := DocumentCreateRequest("logs", "42", `{"message":"hi"}`)
	require.NoError(t, err)

	assert.Equal(t, "PUT", spec.Method)
	assert.Equal(t, "/logs/_doc/42", spec.Path)
}

func TestDocumentCreateRequest_EmptyID(t *testing.T) {
	// Without an ID the server assigns one: POST with no ID segment.
	spec, err := DocumentCreateRequest("logs", "", `{"message":"hi"}`)
	require.NoError(t, err)

	assert.Equal(t, "POST", spec.Method)
	assert.Equal(t, "/logs/_doc", spec.Path)
}

func TestDocumentCreateRequest_EmptyBody(t *testing.T) {
	_, err := DocumentCreateRequest("logs", "1", "  ")
	var vErr apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "document", vErr.Field)
}

func TestDocumentUpdateRequest(t *testing.T) {
	spec, err := DocumentUpdateRequest("logs", "1", `{"doc":{"level":"warn"}}`)
	require.NoError(t, err)

	assert.Equal(t, "POST", spec.Method)
	assert.Equal(t, "/logs/_update/1", spec.Path)
}

func TestDocumentRequests_RequireID(t *testing.T) {
	var vErr apperrors.ValidationError

	_, err := DocumentGetRequest("logs", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "id", vErr.Field)

	_, err = DocumentUpdateRequest("logs", "", `{"doc":{}}`)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "id", vErr.Field)

	_, err = DocumentDeleteRequest("logs", "   ")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "id", vErr.Field)
}

func TestDocumentDeleteRequest(t *testing.T) {
	spec, err := DocumentDeleteRequest("logs", "1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE", spec.Method)
	assert.Equal(t, "/logs/_doc/1", spec.Path)
	assert.False(t, spec.HasBody())
}

func TestRawRequest(t *testing.T) {
	spec, err := RawRequest("delete", "logs/1", "")
	require.NoError(t, err)

	assert.Equal(t, "DELETE", spec.Method)
	assert.Equal(t, "/logs/1", spec.Path)
	assert.False(t, spec.HasBody())
}

func TestRawRequest_Validation(t *testing.T) {
	var vErr apperrors.ValidationError

	_, err := RawRequest("PATCH", "/logs", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "method", vErr.Field)

	_, err = RawRequest("GET", "  ", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "path", vErr.Field)

	_, err = RawRequest("POST", "/logs/_search", `{"a":}`)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "body", vErr.Field)
}

func TestRawRequest_PreservesQueryString(t *testing.T) {
	spec, err := RawRequest("GET", "/_cat/indices?format=json", "")
	require.NoError(t, err)
	assert.Equal(t, "/_cat/indices?format=json", spec.Path)
}

func TestCreateIndexRequest(t *testing.T) {
	body, err := IndexDefinition{Shards: 3, Replicas: 1}.Body()
	require.NoError(t, err)

	spec, err := CreateIndexRequest("logs", body)
	require.NoError(t, err)

	assert.Equal(t, "PUT", spec.Method)
	assert.Equal(t, "/logs", spec.Path)
	assert.JSONEq(t, `{"settings":{"number_of_shards":3,"number_of_replicas":1}}`, string(spec.Body))
}

func TestIndexDefinition_Body(t *testing.T) {
	def := IndexDefinition{
		Shards:   2,
		Replicas: 0,
		Settings: `{"index.refresh_interval":"30s"}`,
		Mappings: `{"properties":{"msg":{"type":"text"}}}`,
		Aliases:  `{"logs-read":{}}`,
	}

	body, err := def.Body()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &doc))

	assert.JSONEq(t, `{"number_of_shards":2,"number_of_replicas":0,"index.refresh_interval":"30s"}`, string(doc["settings"]))
	assert.JSONEq(t, `{"properties":{"msg":{"type":"text"}}}`, string(doc["mappings"]))
	assert.JSONEq(t, `{"logs-read":{}}`, string(doc["aliases"]))
}

func TestIndexDefinition_InvalidSections(t *testing.T) {
	var vErr apperrors.ValidationError

	_, err := IndexDefinition{Settings: `[1,2]`}.Body()
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "settings", vErr.Field)

	_, err = IndexDefinition{Mappings: `{"a":}`}.Body()
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "mappings", vErr.Field)

	_, err = IndexDefinition{Aliases: `not json`}.Body()
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "aliases", vErr.Field)
}

func TestInfoRequest(t *testing.T) {
	spec := InfoRequest()
	assert.Equal(t, "GET", spec.Method)
	assert.Equal(t, "/", spec.Path)
	assert.False(t, spec.HasBody())
}

func TestPathEscaping(t *testing.T) {
	spec, err := DocumentGetRequest("my index", "a/b")
	require.NoError(t, err)
	assert.Equal(t, "/my%20index/_doc/a%2Fb", spec.Path)
}
