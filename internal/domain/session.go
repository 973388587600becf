package domain

// SessionState is the single persisted application state: the last-used
// connection settings and editor contents. It is overwritten wholesale
// after each successful search.
type SessionState struct {
	Connection       Connection `json:"connection"`
	LastQuery        string     `json:"last_query,omitempty"`
	LastDocumentBody string     `json:"last_document_body,omitempty"`
}

// DefaultQuery is the search body pre-filled into a fresh session.
const DefaultQuery = `{
  "query": {
    "match_all": {}
  },
  "size": 10
}`

// DefaultDocumentBody is the update payload pre-filled into the document editor.
const DefaultDocumentBody = `{
  "doc": {
    "field_name": "new_value"
  }
}`

// DefaultSession returns the state used when no session file exists yet,
// or when the existing one cannot be read.
func DefaultSession() SessionState {
	return SessionState{
		Connection:       DefaultConnection(),
		LastQuery:        DefaultQuery,
		LastDocumentBody: DefaultDocumentBody,
	}
}
