// Package handler exposes the matching service to operators over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"matchmaker/internal/matching/catalog"
	"matchmaker/internal/matching/evaluator"
	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/mutual"
	"matchmaker/internal/matching/service"
	id "matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/platform/httputil"
	"matchmaker/pkg/requestcontext"
)

// Service defines the matching operations the handler calls.
type Service interface {
	SaveProfile(ctx context.Context, profile *models.Profile) error
	GetProfile(ctx context.Context, profileID id.ProfileID) (*models.Profile, error)
	SaveIdealType(ctx context.Context, profileID id.ProfileID, prefs models.PreferenceSet) (*models.IdealType, error)
	GetIdealType(ctx context.Context, profileID id.ProfileID) (*models.IdealType, error)
	Evaluate(ctx context.Context, ownerID, candidateID id.ProfileID) (evaluator.Result, error)
	CheckMutual(ctx context.Context, aID, bID id.ProfileID) (mutual.Verdict, error)
	FindCandidates(ctx context.Context, ownerID id.ProfileID, opts service.FindOptions) ([]*models.Profile, error)
	ExplainFilter(ctx context.Context, ownerID id.ProfileID) (filter.Filter, error)
	MaxDealBreakers() int
}

// Handler serves the admin matching endpoints.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new matching Handler.
func New(svc Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:  logger,
		service: svc,
	}
}

// Register registers the matching routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/catalog", h.HandleCatalog)
	r.Route("/admin/profiles/{id}", func(r chi.Router) {
		r.Put("/", h.HandlePutProfile)
		r.Get("/", h.HandleGetProfile)
		r.Put("/ideal-type", h.HandlePutIdealType)
		r.Get("/ideal-type", h.HandleGetIdealType)
		r.Get("/ideal-type/filter", h.HandleExplainFilter)
		r.Get("/candidates", h.HandleFindCandidates)
		r.Get("/evaluate/{candidateID}", h.HandleEvaluate)
		r.Get("/mutual/{otherID}", h.HandleCheckMutual)
	})
}

func (h *Handler) HandlePutProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	profileID, ok := h.pathProfileID(w, r, "id")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PutProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	profile := req.ToProfile(profileID)
	if err := h.service.SaveProfile(ctx, profile); err != nil {
		h.fail(ctx, w, "failed to save profile", err, "profile_id", profileID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID, ok := h.pathProfileID(w, r, "id")
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(ctx, profileID)
	if err != nil {
		h.fail(ctx, w, "failed to get profile", err, "profile_id", profileID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) HandlePutIdealType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	profileID, ok := h.pathProfileID(w, r, "id")
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PutIdealTypeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	idealType, err := h.service.SaveIdealType(ctx, profileID, req.PreferenceSet)
	if err != nil {
		h.fail(ctx, w, "failed to save ideal type", err, "profile_id", profileID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, idealType)
}

func (h *Handler) HandleGetIdealType(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID, ok := h.pathProfileID(w, r, "id")
	if !ok {
		return
	}

	idealType, err := h.service.GetIdealType(ctx, profileID)
	if err != nil {
		h.fail(ctx, w, "failed to get ideal type", err, "profile_id", profileID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, idealType)
}

func (h *Handler) HandleExplainFilter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID, ok := h.pathProfileID(w, r, "id")
	if !ok {
		return
	}

	f, err := h.service.ExplainFilter(ctx, profileID)
	if err != nil {
		h.fail(ctx, w, "failed to compile filter", err, "profile_id", profileID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FilterResponse{OwnerID: profileID, Filter: f})
}

// HandleFindCandidates accepts ?mutual=true and ?limit=N. A missing limit
// uses the service default.
func (h *Handler) HandleFindCandidates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	profileID, ok := h.pathProfileID(w, r, "id")
	if !ok {
		return
	}
	opts, err := parseFindOptions(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	candidates, err := h.service.FindCandidates(ctx, profileID, opts)
	if err != nil {
		h.fail(ctx, w, "failed to find candidates", err, "profile_id", profileID)
		return
	}
	if candidates == nil {
		candidates = []*models.Profile{}
	}
	httputil.WriteJSON(w, http.StatusOK, CandidatesResponse{
		OwnerID:    profileID,
		Mutual:     opts.Mutual,
		Count:      len(candidates),
		Candidates: candidates,
	})
}

func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID, ok := h.pathProfileID(w, r, "id")
	if !ok {
		return
	}
	candidateID, ok := h.pathProfileID(w, r, "candidateID")
	if !ok {
		return
	}

	res, err := h.service.Evaluate(ctx, ownerID, candidateID)
	if err != nil {
		h.fail(ctx, w, "failed to evaluate candidate", err, "owner_id", ownerID, "candidate_id", candidateID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, EvaluateResponse{OwnerID: ownerID, CandidateID: candidateID, Result: res})
}

func (h *Handler) HandleCheckMutual(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	aID, ok := h.pathProfileID(w, r, "id")
	if !ok {
		return
	}
	bID, ok := h.pathProfileID(w, r, "otherID")
	if !ok {
		return
	}

	v, err := h.service.CheckMutual(ctx, aID, bID)
	if err != nil {
		h.fail(ctx, w, "failed to check mutual compatibility", err, "profile_a", aID, "profile_b", bID)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, MutualResponse{
		ProfileA:  aID,
		ProfileB:  bID,
		AAcceptsB: v.AAcceptsB,
		BAcceptsA: v.BAcceptsA,
		Mutual:    v.Mutual,
	})
}

func (h *Handler) HandleCatalog(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, toCatalogResponse(catalog.Entries(), h.service.MaxDealBreakers()))
}

func (h *Handler) pathProfileID(w http.ResponseWriter, r *http.Request, param string) (id.ProfileID, bool) {
	profileID, err := id.ParseProfileID(chi.URLParam(r, param))
	if err != nil {
		h.logger.WarnContext(r.Context(), "invalid profile ID in path",
			"param", param,
			"error", err,
			"request_id", requestcontext.RequestID(r.Context()),
		)
		httputil.WriteError(w, err)
		return id.ProfileID{}, false
	}
	return profileID, true
}

// fail logs at error level only for server-side failures; client errors such
// as unknown profiles are expected traffic.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err, "request_id", requestcontext.RequestID(ctx))
	if httputil.DomainCodeToHTTPStatus(codeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

func codeOf(err error) dErrors.Code {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return de.Code
	}
	return dErrors.CodeInternal
}

func parseFindOptions(r *http.Request) (service.FindOptions, error) {
	var opts service.FindOptions
	q := r.URL.Query()
	if raw := q.Get("mutual"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, dErrors.New(dErrors.CodeBadRequest, "mutual must be true or false")
		}
		opts.Mutual = v
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return opts, dErrors.New(dErrors.CodeBadRequest, "limit must be an integer")
		}
		opts.Limit = n
	}
	return opts, nil
}
