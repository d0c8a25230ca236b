package handler

import (
	"matchmaker/internal/matching/catalog"
	"matchmaker/internal/matching/evaluator"
	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
	id "matchmaker/pkg/domain"
)

// EvaluateResponse is one directional verdict.
type EvaluateResponse struct {
	OwnerID     id.ProfileID `json:"owner_id"`
	CandidateID id.ProfileID `json:"candidate_id"`
	evaluator.Result
}

// MutualResponse carries both directional verdicts.
type MutualResponse struct {
	ProfileA  id.ProfileID     `json:"profile_a"`
	ProfileB  id.ProfileID     `json:"profile_b"`
	AAcceptsB evaluator.Result `json:"a_accepts_b"`
	BAcceptsA evaluator.Result `json:"b_accepts_a"`
	Mutual    bool             `json:"mutual"`
}

// CandidatesResponse lists eligible candidates, most recently updated first.
type CandidatesResponse struct {
	OwnerID    id.ProfileID      `json:"owner_id"`
	Mutual     bool              `json:"mutual"`
	Count      int               `json:"count"`
	Candidates []*models.Profile `json:"candidates"`
}

// FilterResponse shows the filter a candidate search would run.
type FilterResponse struct {
	OwnerID id.ProfileID  `json:"owner_id"`
	Filter  filter.Filter `json:"filter"`
}

// CatalogEntry describes one condition kind.
type CatalogEntry struct {
	Kind  models.ConditionKind `json:"kind"`
	Tag   catalog.Tag          `json:"tag"`
	Reads models.Attribute     `json:"reads,omitempty"`
}

// CatalogResponse lists the condition kinds and the authoring limits.
type CatalogResponse struct {
	MaxDealBreakers int            `json:"max_deal_breakers"`
	ScaleVersion    int            `json:"scale_version"`
	Kinds           []CatalogEntry `json:"kinds"`
}

func toCatalogResponse(entries []catalog.Entry, maxDealBreakers int) CatalogResponse {
	kinds := make([]CatalogEntry, len(entries))
	for i, e := range entries {
		kinds[i] = CatalogEntry{Kind: e.Kind, Tag: e.Tag, Reads: e.Reads}
	}
	return CatalogResponse{
		MaxDealBreakers: maxDealBreakers,
		ScaleVersion:    scale.Version,
		Kinds:           kinds,
	}
}
