package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/taskkeeper/pkg/api"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: taskkeeper update <id> [-title ...] [-description ...] [-done true|false] [-due YYYY-MM-DD]")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	title := fs.String("title", "", "new title")
	description := fs.String("description", "", "new description")
	done := fs.Bool("done", false, "completion flag")
	due := fs.String("due", "", "due date, YYYY-MM-DD or RFC3339")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	// Отправляем только явно переданные флаги: отсутствующее поле
	// не должно затирать значение на сервере
	var req api.UpdateTodoRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = title
		case "description":
			req.Description = description
		case "done":
			req.IsCompleted = done
		}
	})

	if *due != "" {
		parsed, err := parseDueDate(*due)
		if err != nil {
			return err
		}
		req.DueDate = &parsed
	}

	if req.Title == nil && req.Description == nil && req.IsCompleted == nil && req.DueDate == nil {
		return fmt.Errorf("nothing to update: pass at least one of -title, -description, -done, -due")
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	todo, err := c.apiClient.UpdateTodo(ctx, id, req)
	if err != nil {
		return err
	}
	c.state.UpsertTodo(todoFromResponse(*todo))

	fmt.Println("✓ Todo updated!")
	printTodo(*todo)
	return nil
}
