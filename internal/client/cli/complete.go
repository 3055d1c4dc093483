package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/taskkeeper/pkg/api"
)

func (c *Cli) runSetCompleted(ctx context.Context, args []string, completed bool) error {
	if len(args) < 1 {
		if completed {
			return fmt.Errorf("usage: taskkeeper complete <id>")
		}
		return fmt.Errorf("usage: taskkeeper uncomplete <id>")
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	// Явный указатель: isCompleted=false тоже должен примениться
	todo, err := c.apiClient.UpdateTodo(ctx, args[0], api.UpdateTodoRequest{
		IsCompleted: &completed,
	})
	if err != nil {
		return err
	}
	c.state.UpsertTodo(todoFromResponse(*todo))

	if completed {
		fmt.Println("✓ Todo marked as completed")
	} else {
		fmt.Println("✓ Todo marked as not completed")
	}
	return nil
}
