package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/reviewboard/internal/client/api"
	pkgapi "github.com/iudanet/reviewboard/pkg/api"
)

// RunAdd публикует новый отзыв с текстом из аргументов
func RunAdd(ctx context.Context, args []string, client api.ClientAPI) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("missing review text. Usage: reviewctl add <text>")
	}

	created, err := client.AddReview(ctx, pkgapi.AddReviewRequest{Text: text})
	if err != nil {
		return fmt.Errorf("failed to add review: %w", err)
	}

	fmt.Printf("Review published: %s\n", created.ID)
	return nil
}
