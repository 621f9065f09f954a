package dashboard

import "context"

// Service defines business operations for Dashboard domain
type Service interface {
	GetSummary(ctx context.Context) (*Summary, error)
}
