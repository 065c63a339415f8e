// Package domain defines the content records the dashboard manages. Every
// record is a store object whose type tag fixes the shape of its metadata.
package domain

// Type tags as stored in the bucket.
const (
	TypeProjects       = "projects"
	TypeSkills         = "skills"
	TypeWorkExperience = "work-experience"
	TypeTestimonials   = "testimonials"
)

// Object is the base shape shared by every stored record. The id, slug
// and timestamps are assigned by the store. Timestamps stay as the ISO
// strings the store returns; parsing happens at the point of use.
type Object struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
}

// KV is an enumerated metafield value: a stable machine key plus its
// display label. The key is authoritative for filtering and grouping.
type KV struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Image is an uploaded media reference resolved by depth-1 expansion.
type Image struct {
	URL      string `json:"url"`
	ImgixURL string `json:"imgix_url"`
}
