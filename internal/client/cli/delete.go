package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: taskkeeper delete <id>")
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if err := c.apiClient.DeleteTodo(ctx, args[0]); err != nil {
		return err
	}
	c.state.RemoveTodo(args[0])

	fmt.Println("✓ Todo deleted")
	return nil
}
