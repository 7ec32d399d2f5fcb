// package http implements the HTTP transport layer for the service.
// It handles incoming requests, decodes them, calls the appropriate service methods,
// and encodes the responses.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/YusovID/reputation-engine/internal/apperrors"
	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/YusovID/reputation-engine/internal/service"
	"github.com/YusovID/reputation-engine/internal/validation"
	"github.com/YusovID/reputation-engine/pkg/api"
	"github.com/YusovID/reputation-engine/pkg/logger/sl"
	"github.com/YusovID/reputation-engine/swagger"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxRequestBodyBytes caps every JSON request body.
const maxRequestBodyBytes = 1 << 20

var _ api.ServerInterface = (*Server)(nil)

// Server holds the dependencies for the HTTP server, including the logger and service interfaces.
type Server struct {
	log               *slog.Logger
	reputationService service.ReputationService
	feedbackService   service.FeedbackService
}

// NewServer creates a new instance of the HTTP server.
func NewServer(
	log *slog.Logger,
	rs service.ReputationService,
	fs service.FeedbackService,
) *Server {
	return &Server{
		log:               log,
		reputationService: rs,
		feedbackService:   fs,
	}
}

// Routes sets up the router with all middleware and API endpoints.
// API routes are generated from swagger/openapi.yaml into pkg/api.
func (s *Server) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(s.requestID)
	mux.Use(s.logRequest)
	mux.Use(s.metricsMiddleware)
	mux.Use(dropEmptyQueryParams)

	mux.Handle("/swagger/openapi.yaml", swagger.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	return api.HandlerWithOptions(s, api.ChiServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: s.handleParamError,
	})
}

func (s *Server) Healthz(w http.ResponseWriter, _ *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) GetSnapshot(w http.ResponseWriter, r *http.Request, businessID string) {
	const op = "internal.transport.http.GetSnapshot"

	if err := validation.ValidateID("businessId", businessID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	snapshot, err := s.reputationService.GetSnapshot(r.Context(), businessID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, toAPISnapshot(*snapshot))
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request, businessID string, params api.GetGoalsParams) {
	const op = "internal.transport.http.GetGoals"

	if err := validation.ValidateID("businessId", businessID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	goals, err := s.reputationService.GetGoals(r.Context(), businessID, targetsOf(params.Targets))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, toAPIGoals(goals))
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request, businessID string, params api.GetDashboardParams) {
	const op = "internal.transport.http.GetDashboard"

	if err := validation.ValidateID("businessId", businessID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	dashboard, err := s.reputationService.GetDashboard(r.Context(), businessID, targetsOf(params.Targets))
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.Dashboard{
		Snapshot:   toAPISnapshot(dashboard.Snapshot),
		Goals:      toAPIGoals(dashboard.Goals),
		ReviewUrls: nonNilLinks(dashboard.ReviewURLs),
	})
}

func (s *Server) AddReview(w http.ResponseWriter, r *http.Request, businessID string) {
	const op = "internal.transport.http.AddReview"

	if err := validation.ValidateID("businessId", businessID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req api.AddReviewJSONRequestBody
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	in := service.NewReview{
		BusinessID: businessID,
		Rating:     *req.Rating,
		Source:     domain.Source(req.Source),
	}
	if req.CreatedAt != nil {
		in.CreatedAt = *req.CreatedAt
	}

	review, err := s.reputationService.AddReview(r.Context(), in)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, toAPIReview(review))
}

func (s *Server) ReplyToReview(w http.ResponseWriter, r *http.Request, reviewID string) {
	const op = "internal.transport.http.ReplyToReview"

	if err := validation.ValidateID("reviewId", reviewID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	review, err := s.reputationService.ReplyToReview(r.Context(), reviewID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, toAPIReview(review))
}

func (s *Server) RateExperience(w http.ResponseWriter, r *http.Request, customerToken string) {
	const op = "internal.transport.http.RateExperience"

	if err := validation.ValidateID("customerToken", customerToken); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req api.RateExperienceJSONRequestBody
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	decision, err := s.feedbackService.RateExperience(r.Context(), customerToken, *req.Rating)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.RoutingDecision{
		RoutingDecision: api.Routing(decision.Decision()),
		ReviewUrls:      decision.ReviewURLs(),
	})
}

func (s *Server) CreateFeedbackRequest(w http.ResponseWriter, r *http.Request, businessID string) {
	const op = "internal.transport.http.CreateFeedbackRequest"

	if err := validation.ValidateID("businessId", businessID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	req, err := s.feedbackService.IssueFeedbackRequest(r.Context(), businessID)
	if err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusCreated, api.FeedbackRequest{
		Token:      req.Token,
		BusinessId: req.BusinessID,
		CreatedAt:  req.CreatedAt,
	})
}

func (s *Server) SetPlatformLink(w http.ResponseWriter, r *http.Request, businessID string, platform string) {
	const op = "internal.transport.http.SetPlatformLink"

	if err := validation.ValidateID("businessId", businessID); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := validation.ValidateID("platform", platform); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	var req api.SetPlatformLinkJSONRequestBody
	if err := s.decodeAndValidate(w, r, &req); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	if err := s.feedbackService.SetPlatformLink(r.Context(), businessID, platform, req.Url); err != nil {
		s.handleServiceError(w, r, op, err)
		return
	}

	s.respond(w, http.StatusOK, api.PlatformLink{Platform: platform, Url: req.Url})
}

// respond is a helper function to encode data to JSON and write it to the response.
// It centralizes setting the Content-Type header and writing the status code.
func (s *Server) respond(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.log.Error("failed to encode response", sl.Err(err))
		}
	}
}

// respondError is a convenience wrapper around respond for sending simple error messages.
func (s *Server) respondError(w http.ResponseWriter, code int, message string) {
	s.respond(w, code, map[string]string{"error": message})
}

// respondAPIError formats and sends a structured error response that conforms to the OpenAPI document.
func (s *Server) respondAPIError(w http.ResponseWriter, code int, apiCode api.ErrorResponseErrorCode, message string) {
	var errResp api.ErrorResponse
	errResp.Error.Code = apiCode
	errResp.Error.Message = message

	s.respond(w, code, errResp)
}

// decodeAndValidate is a helper that deserializes a bounded JSON request body into a struct
// and then runs validation checks on it.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err)
	}

	if err := validation.ValidateStruct(v); err != nil {
		return err
	}

	return nil
}

// handleParamError receives path and query binding failures from the generated router.
func (s *Server) handleParamError(w http.ResponseWriter, r *http.Request, err error) {
	const op = "internal.transport.http.bindParameters"

	s.handleServiceError(w, r, op, fmt.Errorf("%w: %w", apperrors.ErrInvalidRequest, err))
}

// handleServiceError provides centralized error handling for all HTTP handlers.
// It logs the internal error and maps it to a user-friendly HTTP response.
// Rating and goal target errors are client input problems and always map to 400.
func (s *Server) handleServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := s.log.With(slog.String("op", op), slog.String("request_id", getRequestID(r.Context())))

	var (
		validationErr *validation.ValidationError
		tooLargeErr   *http.MaxBytesError
		ratingErr     *apperrors.InvalidRatingError
		targetErr     *apperrors.InvalidGoalTargetError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn("request rejected", sl.Err(err))
		wrappedErr := fmt.Errorf("%w: %s", apperrors.ErrValidation, validationErr.Error())
		s.respondError(w, http.StatusBadRequest, wrappedErr.Error())
	case errors.As(err, &tooLargeErr):
		log.Warn("request rejected", sl.Err(err))
		s.respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, apperrors.ErrInvalidRequest):
		log.Warn("request rejected", sl.Err(err))
		s.respondError(w, http.StatusBadRequest, "invalid request")
	case errors.As(err, &ratingErr):
		log.Warn("request rejected", sl.Err(err))
		s.respondAPIError(w, http.StatusBadRequest, api.INVALIDRATING, ratingErr.Error())
	case errors.As(err, &targetErr):
		log.Warn("request rejected", sl.Err(err))
		s.respondAPIError(w, http.StatusBadRequest, api.INVALIDGOALTARGET, targetErr.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		log.Warn("resource not found", sl.Err(err))
		s.respondAPIError(w, http.StatusNotFound, api.NOTFOUND, "resource not found")
	default:
		log.Error("service error occurred", sl.Err(err))
		s.respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
