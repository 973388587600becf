package domain

// Endpoint is a predefined (method, path) pair offered by the API console.
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

// ConsoleEndpoints lists the read-only cluster endpoints the console offers
// for double-click execution.
var ConsoleEndpoints = []Endpoint{
	{Method: "GET", Path: "/", Description: "Cluster info"},
	{Method: "GET", Path: "/_cluster/health", Description: "Cluster health"},
	{Method: "GET", Path: "/_cat/indices?format=json", Description: "List indices"},
	{Method: "GET", Path: "/_aliases", Description: "All aliases"},
	{Method: "GET", Path: "/_mapping", Description: "All mappings"},
	{Method: "GET", Path: "/_cat/shards?format=json", Description: "Shard allocation"},
	{Method: "GET", Path: "/_nodes/stats", Description: "Node statistics"},
	{Method: "GET", Path: "/_cluster/settings", Description: "Cluster settings"},
}

// IndexTemplate is a named preset for the create-index form.
type IndexTemplate struct {
	Name     string
	Shards   int
	Replicas int
	Settings string // additional settings JSON, may be empty
	Mappings string // mappings JSON, may be empty
	Aliases  string // aliases JSON, may be empty
}

// IndexTemplates are the static presets selectable in the create-index panel.
var IndexTemplates = []IndexTemplate{
	{
		Name:     "Basic",
		Shards:   1,
		Replicas: 1,
	},
	{
		Name:     "Logs",
		Shards:   3,
		Replicas: 1,
		Settings: `{
  "index.refresh_interval": "30s"
}`,
		Mappings: `{
  "properties": {
    "@timestamp": { "type": "date" },
    "level": { "type": "keyword" },
    "message": { "type": "text" }
  }
}`,
	},
	{
		Name:     "Documents",
		Shards:   1,
		Replicas: 2,
		Mappings: `{
  "properties": {
    "title": { "type": "text" },
    "created_at": { "type": "date" },
    "tags": { "type": "keyword" }
  }
}`,
		Aliases: `{
  "documents-read": {}
}`,
	},
}
