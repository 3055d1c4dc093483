package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	fmt.Println("=== Authentication Status ===")
	fmt.Println()

	isAuth, err := c.session.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !isAuth {
		fmt.Println("Status: Not authenticated")
		fmt.Println()
		fmt.Println("Run 'taskkeeper login' to authenticate.")
		return nil
	}

	username, err := c.session.Username(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	fmt.Println("Status: Authenticated")
	fmt.Printf("Logged in as: %s\n", username)

	return nil
}
