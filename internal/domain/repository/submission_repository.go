package repository

import (
	"context"

	"github.com/nhero-website/internal/domain"
)

// SubmissionRepository writes leads into the CMS. These are the only
// mutations the site ever performs.
type SubmissionRepository interface {
	CreateContactSubmission(ctx context.Context, sub *domain.ContactSubmission) error
	CreateBusinessQuoteSubmission(ctx context.Context, sub *domain.BusinessQuoteSubmission) error
}
