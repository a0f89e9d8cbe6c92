package models

// Theme is a named grouping of related questions, scored independently.
// Display fields (title, description, icon, color, tips) are opaque to the
// engine. Themes are immutable once the catalog is loaded.
type Theme struct {
	ID          string        `bson:"_id" json:"id"`
	Position    int           `bson:"position" json:"position"`
	Title       LocalizedText `bson:"title" json:"title"`
	Description LocalizedText `bson:"description" json:"description"`
	Icon        string        `bson:"icon" json:"icon"`
	Color       string        `bson:"color" json:"color"`
	Tips        LocalizedList `bson:"tips" json:"tips"`
}
