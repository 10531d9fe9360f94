package engine

import "fmt"

// achievementTiers maps the exact level landed on to a tier name. Levels in
// between (or skipped over by a large award) unlock nothing.
var achievementTiers = map[int]string{
	5:  "Bronze",
	10: "Silver",
	20: "Gold",
	30: "Platinum",
}

// checkAchievements records the tier achievement for an area that just landed
// on a threshold level. Returns the unlocked name, or "" if the level is not a
// threshold or the achievement already exists.
func (s *Service) checkAchievements(area string, level int) string {
	tier, ok := achievementTiers[level]
	if !ok {
		return ""
	}
	name := fmt.Sprintf("%s - %s Tier", area, tier)
	for _, existing := range s.profile.Achievements {
		if existing == name {
			return ""
		}
	}
	s.profile.Achievements = append(s.profile.Achievements, name)
	return name
}
