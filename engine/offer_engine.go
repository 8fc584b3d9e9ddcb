package engine

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"paddleoffer/matching"
	"paddleoffer/models"
	"paddleoffer/pricing"
)

// PolicyStatement accompanies every priced offer
const PolicyStatement = "offer equals 50% of the current used-price midpoint"

// ErrValidation indicates a request with missing required fields. No cache
// or network access happens for invalid requests.
var ErrValidation = errors.New("model and condition are required")

// CatalogProvider supplies the current catalog, refreshing as needed
type CatalogProvider interface {
	GetOrRefresh(ctx context.Context) ([]models.Listing, error)
}

// OfferEngine orchestrates cache, matcher and price parser, and applies the
// fixed pricing policy. Responses never carry the source URL or any other
// upstream identity.
type OfferEngine struct {
	catalog  CatalogProvider
	validate *validator.Validate
}

// NewOfferEngine creates an offer engine over the given catalog provider
func NewOfferEngine(catalog CatalogProvider) *OfferEngine {
	return &OfferEngine{
		catalog:  catalog,
		validate: validator.New(),
	}
}

// ComputeOffer produces the offer-or-explanation result for one request.
// "No match" and "unparsable price" are success outcomes, not errors; the
// only error cases are invalid input and total catalog unavailability.
func (e *OfferEngine) ComputeOffer(ctx context.Context, req models.OfferRequest) (*models.OfferResponse, error) {
	if err := e.validate.Struct(&req); err != nil {
		return nil, ErrValidation
	}

	listings, err := e.catalog.GetOrRefresh(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.OfferResponse{
		Model:     req.Model,
		Condition: req.Condition,
		Notes:     req.Notes,
	}

	match := matching.Match(req.Model, listings)
	if match == nil {
		resp.Message = "no current resale listing matches that model"
		return resp, nil
	}

	resp.Found = true
	resp.Match = match.Name

	parsed := pricing.Parse(match.PriceText)
	if parsed == nil {
		resp.Message = "a matching listing was found but its price could not be read"
		return resp, nil
	}

	offer := pricing.Offer(parsed.Mid)
	mid := parsed.Mid
	resp.Offer = &offer
	resp.ReferencePrice = match.PriceText
	resp.ReferenceMidpoint = &mid
	resp.Policy = PolicyStatement
	return resp, nil
}
