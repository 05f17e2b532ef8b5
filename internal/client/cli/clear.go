package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/reviewboard/internal/client/api"
)

// RunClear удаляет все отзывы. Админский токен берется из окружения
// (REVIEWBOARD_ADMIN_TOKEN) или запрашивается интерактивно.
func RunClear(ctx context.Context, client api.ClientAPI, token string) error {
	if token == "" {
		var err error
		token, err = readPassword("Admin token: ")
		if err != nil {
			return fmt.Errorf("failed to read admin token: %w", err)
		}
	}
	if token == "" {
		return fmt.Errorf("admin token is required")
	}

	resp, err := client.ClearReviews(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to clear reviews: %w", err)
	}

	fmt.Printf("%s (removed %d)\n", resp.Message, resp.Removed)
	return nil
}
