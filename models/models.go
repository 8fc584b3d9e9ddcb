package models

// Listing represents a single scraped resale catalog entry. PriceText keeps
// the original formatting from the source page (currency symbols, ranges).
type Listing struct {
	Name      string `json:"name"`
	PriceText string `json:"price_text"`
}

// ParsedPrice holds the numeric values extracted from a listing's price text.
// When the text contains a single price, Lo == Hi == Mid.
type ParsedPrice struct {
	Lo  float64 `json:"lo"`
	Hi  float64 `json:"hi"`
	Mid float64 `json:"mid"`
}

// OfferRequest represents an inbound request to compute a purchase offer
type OfferRequest struct {
	Model     string `json:"model" validate:"required"`
	Condition string `json:"condition" validate:"required"`
	Notes     string `json:"notes"`
}

// OfferResponse is the structured result of an offer computation. Offer and
// ReferenceMidpoint are pointers so "no offer" serializes as null rather than 0.
type OfferResponse struct {
	Found             bool     `json:"found"`
	Offer             *float64 `json:"offer"`
	Match             string   `json:"match,omitempty"`
	ReferencePrice    string   `json:"reference_price,omitempty"`
	ReferenceMidpoint *float64 `json:"reference_midpoint,omitempty"`
	Policy            string   `json:"policy,omitempty"`
	Message           string   `json:"message,omitempty"`
	Model             string   `json:"model"`
	Condition         string   `json:"condition"`
	Notes             string   `json:"notes"`
}
