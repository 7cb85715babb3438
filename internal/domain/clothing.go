package domain

// ClothingItem is a single garment in the user's catalog. The catalog is
// owned by the wardrobe side of the application; the engine only reads it.
type ClothingItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category,omitempty"`
	Color     string   `json:"color,omitempty"`
	Material  string   `json:"material,omitempty"`
	Seasons   []string `json:"seasons,omitempty"`
	Occasions []string `json:"occasions,omitempty"`
	Favorite  bool     `json:"favorite"`
	TimesWorn int      `json:"times_worn"`
	ImageURL  string   `json:"image_url,omitempty"`
}
