package domain

type Project struct {
	Object
	Metadata ProjectMetadata `json:"metadata"`
}

type ProjectMetadata struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Technologies  string  `json:"technologies,omitempty"`
	LiveURL       string  `json:"live_url,omitempty"`
	GithubURL     string  `json:"github_url,omitempty"`
	FeaturedImage *Image  `json:"featured_image,omitempty"`
	Gallery       []Image `json:"gallery,omitempty"`
	ProjectType   *KV     `json:"project_type,omitempty"`
	Featured      bool    `json:"featured"`
}

// ProjectInput is the create payload. ProjectType carries the select
// key; Featured distinguishes "omitted" from an explicit false.
type ProjectInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies,omitempty"`
	LiveURL      string `json:"live_url,omitempty"`
	GithubURL    string `json:"github_url,omitempty"`
	ProjectType  string `json:"project_type,omitempty"`
	Featured     *bool  `json:"featured,omitempty"`
}

// Title derives the object title for a new project.
func (in ProjectInput) Title() string { return in.Name }

// Metadata builds the stored metadata, defaulting featured to false when
// the caller omitted it.
func (in ProjectInput) Metadata() map[string]any {
	m := map[string]any{
		"name":        in.Name,
		"description": in.Description,
		"featured":    in.Featured != nil && *in.Featured,
	}
	if in.Technologies != "" {
		m["technologies"] = in.Technologies
	}
	if in.LiveURL != "" {
		m["live_url"] = in.LiveURL
	}
	if in.GithubURL != "" {
		m["github_url"] = in.GithubURL
	}
	if in.ProjectType != "" {
		m["project_type"] = in.ProjectType
	}
	return m
}
