package progression

import "scoutquest/internal/model"

// DefaultRanks is used when the ranks table is empty.
var DefaultRanks = []model.Rank{
	{
		ID:          1,
		Name:        "Scout",
		Color:       "bg-scout-sky",
		MinPoints:   0,
		Description: "The beginning of your journey. Learn the basic skills and values of scouting.",
	},
	{
		ID:          2,
		Name:        "Pathfinder",
		Color:       "bg-scout-moss",
		MinPoints:   100,
		Description: "You've mastered the basics and are ready to explore more advanced skills.",
	},
	{
		ID:          3,
		Name:        "Adventurer",
		Color:       "bg-scout-earth",
		MinPoints:   250,
		Description: "An experienced scout who has demonstrated proficiency in multiple skill areas.",
	},
	{
		ID:          4,
		Name:        "Ranger",
		Color:       "bg-scout-sunset",
		MinPoints:   500,
		Description: "A highly skilled scout who can lead others and tackle complex challenges.",
	},
	{
		ID:          5,
		Name:        "Eagle",
		Color:       "bg-scout-ruby",
		MinPoints:   1000,
		Description: "The highest rank. You embody the values and skills of scouting at their finest.",
	},
}

// DefaultRewards is used when the rewards table is empty.
var DefaultRewards = []model.Reward{
	{ID: "bronze-pin", Name: "Bronze Scout Pin", PointsRequired: 50,
		Description: "Awarded to scouts who have earned 50 achievement points. A symbol of dedication to the scouting path."},
	{ID: "silver-pin", Name: "Silver Scout Pin", PointsRequired: 150,
		Description: "Awarded to scouts who have earned 150 achievement points. A mark of growing expertise in scouting skills."},
	{ID: "gold-pin", Name: "Gold Scout Pin", PointsRequired: 300,
		Description: "Awarded to scouts who have earned 300 achievement points. Represents significant accomplishment in the scouting program."},
	{ID: "bronze-medal", Name: "Bronze Medal of Achievement", PointsRequired: 500,
		Description: "A prestigious award for scouts who have earned 500 achievement points. Signifies exceptional dedication to scouting ideals."},
	{ID: "silver-medal", Name: "Silver Medal of Achievement", PointsRequired: 750,
		Description: "A rare honor bestowed upon scouts who have earned 750 achievement points. Demonstrates remarkable commitment and skill."},
	{ID: "gold-medal", Name: "Gold Medal of Achievement", PointsRequired: 1000,
		Description: "The pinnacle achievement for scouts who have earned 1000 achievement points. Reserved for those who exemplify scouting at its finest."},
	{ID: "ultimate-award", Name: "Ultimate Scout Award", PointsRequired: 1500,
		Description: "The rarest and most prestigious recognition, awarded to scouts who have earned 1500 achievement points. A testament to extraordinary dedication and mastery of scouting skills."},
}

var Categories = []model.AchievementCategory{
	{ID: "outdoor", Name: "Outdoor Skills", Color: "bg-scout-pine",
		Description: "Develop skills for outdoor living, survival, and appreciation of nature."},
	{ID: "citizenship", Name: "Citizenship", Color: "bg-scout-sky",
		Description: "Learn about your community, country, and role as a responsible citizen."},
	{ID: "personal-development", Name: "Personal Development", Color: "bg-scout-sunset",
		Description: "Focus on personal growth, leadership, and character building."},
	{ID: "stem", Name: "STEM", Color: "bg-scout-moss",
		Description: "Explore science, technology, engineering, and mathematics."},
	{ID: "emergency", Name: "Emergency Preparedness", Color: "bg-scout-ruby",
		Description: "Learn critical skills for handling emergencies and providing assistance."},
}

func KnownCategory(id string) bool {
	for _, c := range Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
