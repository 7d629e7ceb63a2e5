package entity

type Image struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	RadiusPx float64 `json:"radius_px"`
	Options  Options `json:"options"`
}

type RoundResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	URL    string `json:"url"`
}
