package domain

// CategoryOther is the bucket for skills without a category.
const CategoryOther = "other"

type Skill struct {
	Object
	Metadata SkillMetadata `json:"metadata"`
}

type SkillMetadata struct {
	Name            string `json:"name"`
	Category        KV     `json:"category"`
	Proficiency     *KV    `json:"proficiency,omitempty"`
	YearsExperience *int   `json:"years_experience,omitempty"`
}

// SkillInput is the create payload; category and proficiency carry the
// select keys.
type SkillInput struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Proficiency     string `json:"proficiency,omitempty"`
	YearsExperience *int   `json:"years_experience,omitempty"`
}

func (in SkillInput) Title() string { return in.Name }

func (in SkillInput) Metadata() map[string]any {
	m := map[string]any{
		"name":     in.Name,
		"category": in.Category,
	}
	if in.Proficiency != "" {
		m["proficiency"] = in.Proficiency
	}
	if in.YearsExperience != nil {
		m["years_experience"] = *in.YearsExperience
	}
	return m
}

// GroupSkillsByCategory partitions skills by their category key, with
// uncategorized skills collected under "other".
func GroupSkillsByCategory(skills []Skill) map[string][]Skill {
	groups := make(map[string][]Skill)
	for _, s := range skills {
		key := s.Metadata.Category.Key
		if key == "" {
			key = CategoryOther
		}
		groups[key] = append(groups[key], s)
	}
	return groups
}
