package models

type Beat struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	BPM   int      `json:"bpm"`
	Key   string   `json:"key"`
	Price float64  `json:"price"`
	Tags  []string `json:"tags"`
}

type Drumkit struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Price    float64  `json:"price"`
	Tags     []string `json:"tags"`
	Badge    string   `json:"badge,omitempty"`
	Files    string   `json:"files"`
}

type MerchItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Price    float64  `json:"price"`
	Sizes    []string `json:"sizes"`
	Badge    string   `json:"badge,omitempty"`
}
