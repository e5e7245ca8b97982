package dto

type PhilosopherResponse struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Era           string   `json:"era"`
	Biography     string   `json:"biography"`
	CoreThemes    []string `json:"core_themes"`
	TeachingStyle string   `json:"teaching_style"`
}

type ListPhilosophersResponse struct {
	Philosophers []PhilosopherResponse `json:"philosophers"`
}
