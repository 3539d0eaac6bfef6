package domain

// TherapyKind enumerates the supported complementary therapies.
type TherapyKind string

const (
	TherapyCrystal TherapyKind = "crystal"
	TherapyColor   TherapyKind = "color"
	TherapyAroma   TherapyKind = "aroma"
	TherapyMusic   TherapyKind = "music"
	TherapyPrana   TherapyKind = "prana"
)

// TherapyContent is a static therapy recommendation sheet.
type TherapyContent struct {
	Kind        TherapyKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Items       []string    `json:"items,omitempty"`
}

// ChakraPanel pairs a chakra with its description and stored image key.
type ChakraPanel struct {
	Number   int    `json:"number"`
	Name     string `json:"name"`
	Quadrant string `json:"quadrant"`
	Short    string `json:"short,omitempty"`
	Long     string `json:"long,omitempty"`
	ImageKey string `json:"image_key,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
