// package repository defines the interfaces for the collaborators the reputation service depends on.
// These interfaces abstract storage, caching and event delivery from the service layer.
package repository

import (
	"context"
	"time"

	"github.com/YusovID/reputation-engine/internal/domain"
	"github.com/jmoiron/sqlx"
)

// ReviewRepository defines the contract for the review store.
type ReviewRepository interface {
	// ListReviews returns every review of a business, oldest first.
	// A business without reviews yields an empty slice, not an error.
	ListReviews(ctx context.Context, businessID string) ([]domain.Review, error)

	// CreateReview inserts a new review. The rating must already be validated.
	CreateReview(ctx context.Context, review *domain.Review) error

	// MarkReplied stamps the owner reply time of a review and returns the updated row.
	// It returns apperrors.ErrNotFound if the review does not exist.
	MarkReplied(ctx context.Context, reviewID string, repliedAt time.Time) (*domain.Review, error)
}

// PlatformLinkRepository defines the contract for the platform-integration config store.
type PlatformLinkRepository interface {
	// GetPlatformLinks returns platform name -> public review URL for a business.
	// A business with no platforms configured yields an empty map.
	GetPlatformLinks(ctx context.Context, businessID string) (map[string]string, error)

	// UpsertPlatformLink sets the review URL of one platform, replacing any previous URL.
	UpsertPlatformLink(ctx context.Context, businessID, platform, url string) error
}

// FeedbackRepository defines the contract for public feedback links and their responses.
type FeedbackRepository interface {
	// GetFeedbackRequest resolves a customer token to its feedback request.
	// It returns apperrors.ErrNotFound if the token is unknown.
	GetFeedbackRequest(ctx context.Context, token string) (*domain.FeedbackRequest, error)

	// CreateFeedbackRequest stores a newly issued customer token.
	CreateFeedbackRequest(ctx context.Context, req *domain.FeedbackRequest) error

	// RecordResponse stores the audit row of a gate evaluation and stamps the request as rated.
	// It is expected to be executed within a transaction.
	RecordResponse(ctx context.Context, tx *sqlx.Tx, resp *domain.FeedbackResponse) error
}

// SnapshotCache caches computed snapshots per business.
// A miss is reported as (nil, nil).
type SnapshotCache interface {
	Get(ctx context.Context, businessID string) (*domain.ReputationSnapshot, error)
	Set(ctx context.Context, businessID string, snapshot domain.ReputationSnapshot) error
	Invalidate(ctx context.Context, businessID string) error
}

// AuditPublisher delivers routing decisions to the compliance audit stream.
type AuditPublisher interface {
	PublishRouting(ctx context.Context, resp *domain.FeedbackResponse, reviewURLs map[string]string) error
}
