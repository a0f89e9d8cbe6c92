package models

// Question belongs to exactly one theme. Ordering within a theme follows the
// declared position, not insertion order.
type Question struct {
	ID       string        `bson:"_id" json:"id"`
	ThemeID  string        `bson:"theme_id" json:"theme_id"`
	Position int           `bson:"position" json:"position"`
	Text     LocalizedText `bson:"text" json:"text"`
	Options  LocalizedList `bson:"options" json:"options"`
}

// OptionCount returns the number of selectable options. The English option
// list is the canonical scale; translations must match its length.
func (q *Question) OptionCount() int {
	return len(q.Options.EN)
}
