package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context) error {
	// Сервер сессий не хранит: выход - это удаление локального токена
	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	c.state.SetAuthenticated(false, "")

	fmt.Println("✓ Logged out")
	return nil
}
