package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/taskkeeper/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("Registering user...")

	resp, err := c.apiClient.Register(ctx, api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Регистрация сразу возвращает токен: сохраняем сессию
	if err := c.session.Save(ctx, resp.Token, resp.User.Username); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	c.state.SetAuthenticated(true, resp.User.Username)

	fmt.Println()
	fmt.Println("✓ Registration successful!")
	fmt.Printf("User ID: %s\n", resp.User.ID)
	fmt.Printf("Username: %s\n", resp.User.Username)
	fmt.Printf("Email: %s\n", resp.User.Email)
	fmt.Println()
	fmt.Println("You are now logged in.")

	return nil
}
