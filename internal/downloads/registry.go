package downloads

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
)

// Registre des liens de téléchargement. Chaque produit digital (beat ou kit)
// pointe vers son fichier livrable : URL externe ou objet MinIO ("minio://clé").
// Rempli au déploiement, jamais modifié à l'exécution.

type Entry struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
}

type Registry struct {
	byID   map[string]Entry
	byName map[string]Entry // clé : nom en MAJUSCULES
}

func NewRegistry(entries []Entry) *Registry {
	r := &Registry{
		byID:   make(map[string]Entry),
		byName: make(map[string]Entry),
	}
	for _, e := range entries {
		if e.ProductID != "" {
			r.byID[e.ProductID] = e
		}
		r.byName[strings.ToUpper(strings.TrimSpace(e.Name))] = e
	}
	return r
}

// LookupByID retrouve un lien par l'ID stable du produit
func (r *Registry) LookupByID(productID string) (Entry, bool) {
	e, ok := r.byID[productID]
	return e, ok
}

// LookupByName retrouve un lien par nom affiché (insensible à la casse).
// Un produit absent n'est pas une erreur : pas de lien, c'est tout.
func (r *Registry) LookupByName(name string) (Entry, bool) {
	e, ok := r.byName[strings.ToUpper(strings.TrimSpace(name))]
	return e, ok
}

// DeliveryURL résout l'URL finale à envoyer au client.
// Les entrées "minio://" deviennent des liens signés à durée limitée.
func (r *Registry) DeliveryURL(ctx context.Context, e Entry) (string, error) {
	if key, ok := strings.CutPrefix(e.URL, "minio://"); ok {
		return presign(ctx, key)
	}
	return e.URL, nil
}

// defaultEntries couvre le catalogue digital actuel (beats + kits)
var defaultEntries = []Entry{
	{ProductID: "beat-001", Name: "BLOOD MONEY", URL: "https://cdn.joedankbeats.com/beats/blood-money.zip"},
	{ProductID: "beat-002", Name: "GOLDEN HOUR", URL: "https://cdn.joedankbeats.com/beats/golden-hour.zip"},
	{ProductID: "beat-003", Name: "ROULETTE", URL: "https://cdn.joedankbeats.com/beats/roulette.zip"},
	{ProductID: "beat-004", Name: "DIAMOND TEETH", URL: "https://cdn.joedankbeats.com/beats/diamond-teeth.zip"},
	{ProductID: "beat-005", Name: "LUCKY SEVEN", URL: "https://cdn.joedankbeats.com/beats/lucky-seven.zip"},
	{ProductID: "beat-006", Name: "ACE OF SPADES", URL: "https://cdn.joedankbeats.com/beats/ace-of-spades.zip"},
	{ProductID: "dk-001", Name: "INFERNO 808 KIT", URL: "minio://kits/inferno-808-kit.zip"},
	{ProductID: "dk-002", Name: "VELVET NOIR KIT", URL: "minio://kits/velvet-noir-kit.zip"},
	{ProductID: "dk-003", Name: "CHROME GOD KIT", URL: "minio://kits/chrome-god-kit.zip"},
}

// Load construit le registre : fichier JSON DOWNLOADS_FILE si présent,
// sinon les entrées par défaut du catalogue
func Load() *Registry {
	path := os.Getenv("DOWNLOADS_FILE")
	if path == "" {
		return NewRegistry(defaultEntries)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Lecture %s impossible (%v) — registre par défaut", path, err)
		return NewRegistry(defaultEntries)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ JSON invalide dans %s (%v) — registre par défaut", path, err)
		return NewRegistry(defaultEntries)
	}

	log.Printf("✅ Registre de téléchargements chargé : %d entrées depuis %s", len(entries), path)
	return NewRegistry(entries)
}
