package model

// SwapReactionTitle is one of the canned broadcast titles for a song
// swap rating tier. A random row for the tier headlines the broadcast
// announcing the rating.
type SwapReactionTitle struct {
	ID       int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Reaction int64  `json:"reaction" gorm:"column:reaction;not null;index"`
	Title    string `json:"title" gorm:"column:title;type:varchar(255);not null"`
}

func (SwapReactionTitle) TableName() string {
	return "swap_reaction_titles"
}
