package domain

type Testimonial struct {
	Object
	Metadata TestimonialMetadata `json:"metadata"`
}

type TestimonialMetadata struct {
	Name        string `json:"name"`
	Position    string `json:"position,omitempty"`
	Company     string `json:"company,omitempty"`
	Testimonial string `json:"testimonial"`
	Rating      *KV    `json:"rating,omitempty"`
	Photo       *Image `json:"photo,omitempty"`
	Featured    bool   `json:"featured"`
}

type TestimonialInput struct {
	Name        string `json:"name"`
	Position    string `json:"position,omitempty"`
	Company     string `json:"company,omitempty"`
	Testimonial string `json:"testimonial"`
	Rating      string `json:"rating,omitempty"`
	Featured    *bool  `json:"featured,omitempty"`
}

// Title derives the object title, e.g. "Jane Doe Testimonial".
func (in TestimonialInput) Title() string {
	return in.Name + " Testimonial"
}

func (in TestimonialInput) Metadata() map[string]any {
	m := map[string]any{
		"name":        in.Name,
		"testimonial": in.Testimonial,
		"featured":    in.Featured != nil && *in.Featured,
	}
	if in.Position != "" {
		m["position"] = in.Position
	}
	if in.Company != "" {
		m["company"] = in.Company
	}
	if in.Rating != "" {
		m["rating"] = in.Rating
	}
	return m
}
