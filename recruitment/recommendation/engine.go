// Package recommendation scores internships against a candidate profile.
//
// A score is the sum of four independent clauses: location affinity, sector affinity,
// skill overlap and interest overlap. Ranking keeps only positive scores, ordered
// from best to worst with ties left in catalog order.
package recommendation

import (
	"slices"
	"strings"

	"github.com/Abraxas-365/internmatch/recruitment/internship"
)

// Clause weights
const (
	LocationWeight = 3
	SectorWeight   = 3
	SkillWeight    = 1
	InterestWeight = 1
)

// CandidateProfile is what a candidate is matched on. Empty fields mean "no preference".
type CandidateProfile struct {
	DesiredLocation  string   `json:"desired_location,omitempty"`
	SectorPreference string   `json:"sector_preference,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Interests        []string `json:"interests,omitempty"`
}

// ScoredInternship is an internship annotated with its match score
type ScoredInternship struct {
	internship.Internship
	Score int `json:"score"`
}

// Breakdown is the per-clause contribution to a score
type Breakdown struct {
	Location  int `json:"location"`
	Sector    int `json:"sector"`
	Skills    int `json:"skills"`
	Interests int `json:"interests"`
}

// Total sums every clause
func (b Breakdown) Total() int {
	return b.Location + b.Sector + b.Skills + b.Interests
}

// ============================================================================
// Clauses
// ============================================================================

// LocationMatches reports whether location contains desired, ignoring case.
// An empty desired location never matches.
func LocationMatches(desired, location string) bool {
	if desired == "" {
		return false
	}
	return strings.Contains(strings.ToLower(location), strings.ToLower(desired))
}

// SectorMatches reports a case-insensitive exact match. An empty preference never matches.
func SectorMatches(preference, sector string) bool {
	if preference == "" {
		return false
	}
	return strings.EqualFold(preference, sector)
}

// SkillOverlap counts the skills found among requirements, ignoring case.
// Each skill entry counts at most once; duplicate entries count separately.
func SkillOverlap(skills, requirements []string) int {
	if len(skills) == 0 || len(requirements) == 0 {
		return 0
	}

	required := make(map[string]struct{}, len(requirements))
	for _, r := range requirements {
		required[strings.ToLower(r)] = struct{}{}
	}

	n := 0
	for _, s := range skills {
		if s == "" {
			continue
		}
		if _, ok := required[strings.ToLower(s)]; ok {
			n++
		}
	}
	return n
}

// InterestOverlap counts the interests that appear in the title or the description, ignoring case.
// Each interest entry counts at most once.
func InterestOverlap(interests []string, title, description string) int {
	if len(interests) == 0 {
		return 0
	}

	title = strings.ToLower(title)
	description = strings.ToLower(description)

	n := 0
	for _, interest := range interests {
		if interest == "" {
			continue
		}
		i := strings.ToLower(interest)
		if strings.Contains(title, i) || strings.Contains(description, i) {
			n++
		}
	}
	return n
}

// ============================================================================
// Scoring
// ============================================================================

// Explain returns how each clause contributes to the score of item
func Explain(profile CandidateProfile, item internship.Internship) Breakdown {
	var b Breakdown
	if LocationMatches(profile.DesiredLocation, item.Location) {
		b.Location = LocationWeight
	}
	if SectorMatches(profile.SectorPreference, item.Sector) {
		b.Sector = SectorWeight
	}
	b.Skills = SkillWeight * SkillOverlap(profile.Skills, item.Requirements)
	b.Interests = InterestWeight * InterestOverlap(profile.Interests, item.Title, item.Description)
	return b
}

// ScoreOne scores a single internship without filtering
func ScoreOne(profile CandidateProfile, item internship.Internship) int {
	return Explain(profile, item).Total()
}

// Rank scores every internship, drops the ones scoring zero and sorts the rest by
// descending score. Equal scores keep their input order.
func Rank(profile CandidateProfile, items []internship.Internship) []ScoredInternship {
	ranked := make([]ScoredInternship, 0, len(items))
	for _, item := range items {
		if item.Requirements == nil {
			item.Requirements = []string{}
		}

		score := ScoreOne(profile, item)
		if score <= 0 {
			continue
		}
		ranked = append(ranked, ScoredInternship{Internship: item, Score: score})
	}

	slices.SortStableFunc(ranked, func(a, b ScoredInternship) int {
		return b.Score - a.Score
	})

	return ranked
}
