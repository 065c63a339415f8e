package domain

type WorkExperience struct {
	Object
	Metadata WorkExperienceMetadata `json:"metadata"`
}

type WorkExperienceMetadata struct {
	JobTitle        string `json:"job_title"`
	Company         string `json:"company"`
	CompanyWebsite  string `json:"company_website,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date,omitempty"`
	CurrentPosition bool   `json:"current_position"`
	Description     string `json:"description,omitempty"`
	Achievements    string `json:"achievements,omitempty"`
	Technologies    string `json:"technologies,omitempty"`
	CompanyLogo     *Image `json:"company_logo,omitempty"`
}

type WorkExperienceInput struct {
	JobTitle        string `json:"job_title"`
	Company         string `json:"company"`
	CompanyWebsite  string `json:"company_website,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date,omitempty"`
	CurrentPosition *bool  `json:"current_position,omitempty"`
	Description     string `json:"description,omitempty"`
	Achievements    string `json:"achievements,omitempty"`
	Technologies    string `json:"technologies,omitempty"`
}

// Title derives the object title, e.g. "Senior Engineer at Acme".
func (in WorkExperienceInput) Title() string {
	return in.JobTitle + " at " + in.Company
}

func (in WorkExperienceInput) Metadata() map[string]any {
	m := map[string]any{
		"job_title":        in.JobTitle,
		"company":          in.Company,
		"start_date":       in.StartDate,
		"current_position": in.CurrentPosition != nil && *in.CurrentPosition,
	}
	if in.CompanyWebsite != "" {
		m["company_website"] = in.CompanyWebsite
	}
	if in.EndDate != "" {
		m["end_date"] = in.EndDate
	}
	if in.Description != "" {
		m["description"] = in.Description
	}
	if in.Achievements != "" {
		m["achievements"] = in.Achievements
	}
	if in.Technologies != "" {
		m["technologies"] = in.Technologies
	}
	return m
}
