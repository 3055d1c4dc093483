package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/taskkeeper/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Logging in...")

	resp, err := c.apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Логин возвращает только токен; для статуса запоминаем email
	if err := c.session.Save(ctx, resp.Token, email); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	c.state.SetAuthenticated(true, email)

	fmt.Println()
	fmt.Println("✓ Login successful!")

	return nil
}
