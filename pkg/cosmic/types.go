package cosmic

// Config carries the bucket credentials. BaseURL is overridable so tests
// can point the client at a local server.
type Config struct {
	BucketSlug string
	ReadKey    string
	WriteKey   string
	BaseURL    string
}

// FindOptions narrows a find-by-type query. Props limits the returned
// fields; Depth controls how many levels of embedded object references
// the store resolves.
type FindOptions struct {
	Props []string
	Depth int
}

// NewObject is the generic envelope the store accepts on insert.
type NewObject struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Metadata map[string]any `json:"metadata"`
}

// apiError is the store's error response body.
type apiError struct {
	Message string `json:"message"`
}
