package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: taskkeeper get <id>")
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	todo, err := c.apiClient.GetTodo(ctx, args[0])
	if err != nil {
		return err
	}
	c.state.UpsertTodo(todoFromResponse(*todo))

	printTodo(*todo)
	return nil
}
