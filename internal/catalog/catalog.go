package catalog

import "joedank_back_end/internal/models"

// Catalogue statique de la boutique. Les prix et noms font autorité ici :
// le client n'envoie que des IDs, jamais de prix.

var Beats = []models.Beat{
	{ID: "beat-001", Title: "BLOOD MONEY", BPM: 140, Key: "F# Minor", Price: 29.99, Tags: []string{"Dark", "Trap", "Hard"}},
	{ID: "beat-002", Title: "GOLDEN HOUR", BPM: 95, Key: "A Major", Price: 34.99, Tags: []string{"Melodic", "R&B", "Lush"}},
	{ID: "beat-003", Title: "ROULETTE", BPM: 128, Key: "D Minor", Price: 24.99, Tags: []string{"Club", "Drill", "Bass"}},
	{ID: "beat-004", Title: "DIAMOND TEETH", BPM: 145, Key: "C# Minor", Price: 39.99, Tags: []string{"Trap", "808", "Premium"}},
	{ID: "beat-005", Title: "LUCKY SEVEN", BPM: 85, Key: "G Major", Price: 19.99, Tags: []string{"Lo-Fi", "Smooth", "Chill"}},
	{ID: "beat-006", Title: "ACE OF SPADES", BPM: 160, Key: "B Minor", Price: 44.99, Tags: []string{"Drill", "UK", "Dark", "Elite"}},
}

var Drumkits = []models.Drumkit{
	{ID: "dk-001", Title: "INFERNO 808 KIT", Subtitle: "Trap / Drill Percussion Pack", Price: 29.99, Tags: []string{"808s", "Trap", "Drill", "Claps"}, Badge: "BESTSELLER", Files: "247 Files / WAV"},
	{ID: "dk-002", Title: "VELVET NOIR KIT", Subtitle: "Lo-Fi / Jazz Drum Textures", Price: 24.99, Tags: []string{"Lo-Fi", "Jazz", "Vinyl", "Warm"}, Badge: "NEW DROP", Files: "189 Files / WAV"},
	{ID: "dk-003", Title: "CHROME GOD KIT", Subtitle: "Afrobeats / Amapiano Rhythms", Price: 34.99, Tags: []string{"Afrobeats", "Amapiano", "Perc"}, Badge: "LIMITED", Files: "312 Files / WAV"},
}

var Merch = []models.MerchItem{
	{ID: "m-001", Title: "JACKPOT HOODIE", Subtitle: "Heavy-weight fleece / Embroidered", Price: 89.99, Sizes: []string{"S", "M", "L", "XL", "XXL"}, Badge: "HOT"},
	{ID: "m-002", Title: "DEALER TEE", Subtitle: "100% Cotton / Screen printed", Price: 44.99, Sizes: []string{"XS", "S", "M", "L", "XL"}},
	{ID: "m-003", Title: "HIGH ROLLER CAP", Subtitle: "6-panel structured / Embroidered", Price: 54.99, Sizes: []string{"One Size"}, Badge: "COLLAB"},
}

// Product est la vue unifiée d'une fiche produit, toutes catégories confondues
type Product struct {
	ID       string
	Name     string
	Price    float64
	Category string
	Sizes    []string
}

// FindProduct retrouve un produit par son ID stable
func FindProduct(productID string) (Product, bool) {
	for _, b := range Beats {
		if b.ID == productID {
			return Product{ID: b.ID, Name: b.Title, Price: b.Price, Category: models.CategoryBeat}, true
		}
	}
	for _, dk := range Drumkits {
		if dk.ID == productID {
			return Product{ID: dk.ID, Name: dk.Title, Price: dk.Price, Category: models.CategoryDrumkit}, true
		}
	}
	for _, m := range Merch {
		if m.ID == productID {
			return Product{ID: m.ID, Name: m.Title, Price: m.Price, Category: models.CategoryMerch, Sizes: m.Sizes}, true
		}
	}
	return Product{}, false
}

// HasSize vérifie qu'une taille est proposée pour ce produit
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
