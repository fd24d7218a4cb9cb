package entity

// SeasonType classifies demand
type SeasonType string

const (
	SeasonHigh     SeasonType = "high"
	SeasonShoulder SeasonType = "shoulder"
	SeasonLow      SeasonType = "low"
)

// Season is a static reference range of months, inclusive and non-wrapping
type Season struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	StartMonth  int        `json:"startMonth"`
	EndMonth    int        `json:"endMonth"`
	Type        SeasonType `json:"type"`
	Description string     `json:"description"`
}

// Contains reports whether month (1-12) falls inside the season
func (s Season) Contains(month int) bool {
	return month >= s.StartMonth && month <= s.EndMonth
}

// ResolveSeason returns the first season containing month, falling back to the
// first season of the table.
func ResolveSeason(seasons []Season, month int) Season {
	for _, s := range seasons {
		if s.Contains(month) {
			return s
		}
	}
	if len(seasons) == 0 {
		return Season{}
	}
	return seasons[0]
}
