package models

type AgencyReference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Timezone string `json:"timezone"`
	Color    string `json:"color"`
}

func NewAgencyReference(id, name, url, timezone, color string) AgencyReference {
	return AgencyReference{
		ID:       id,
		Name:     name,
		URL:      url,
		Timezone: timezone,
		Color:    color,
	}
}
