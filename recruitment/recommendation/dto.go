package recommendation

import "github.com/Abraxas-365/internmatch/recruitment/internship"

// RecommendationsResponse - ranked internships for one profile
type RecommendationsResponse struct {
	Items []ScoredInternship `json:"items"`
	Count int                `json:"count"`
}

// ScoreResponse - unfiltered score of a single internship
type ScoreResponse struct {
	Internship internship.Internship `json:"internship"`
	Score      int                   `json:"score"`
	Breakdown  Breakdown             `json:"breakdown"`
}

// NewRecommendationsResponse trims ranked to limit. A limit <= 0 keeps everything.
func NewRecommendationsResponse(ranked []ScoredInternship, limit int) *RecommendationsResponse {
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return &RecommendationsResponse{
		Items: ranked,
		Count: len(ranked),
	}
}
