package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/taskkeeper/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	fmt.Println("=== New Todo ===")
	fmt.Println()

	title, err := readInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	description, err := readInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	dueInput, err := readInput("Due date YYYY-MM-DD (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read due date: %w", err)
	}

	var dueDate *time.Time
	if dueInput != "" {
		parsed, err := parseDueDate(dueInput)
		if err != nil {
			return err
		}
		dueDate = &parsed
	}

	todo, err := c.apiClient.CreateTodo(ctx, api.CreateTodoRequest{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
	})
	if err != nil {
		return err
	}
	c.state.UpsertTodo(todoFromResponse(*todo))

	fmt.Println()
	fmt.Println("✓ Todo created!")
	printTodo(*todo)

	return nil
}
