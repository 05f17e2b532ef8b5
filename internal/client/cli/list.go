package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/reviewboard/internal/client/api"
)

// RunList выводит текущую коллекцию отзывов
func RunList(ctx context.Context, client api.ClientAPI) error {
	reviews, err := client.ListReviews(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reviews: %w", err)
	}

	if len(reviews) == 0 {
		fmt.Println("No reviews yet.")
		return nil
	}

	fmt.Printf("=== Reviews (%d) ===\n\n", len(reviews))
	for i, review := range reviews {
		fmt.Printf("%d. [%s] %s\n", i+1, review.CreatedAt.Format("2006-01-02 15:04"), stars(review.Rating))
		fmt.Printf("   %s\n", review.Text)
		fmt.Printf("   id: %s\n\n", review.ID)
	}

	return nil
}

// stars рисует оценку звездочками
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	result := ""
	for i := 0; i < rating; i++ {
		result += "★"
	}
	for i := rating; i < 5; i++ {
		result += "☆"
	}
	return result
}
