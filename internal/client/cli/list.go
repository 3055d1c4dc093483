package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/iudanet/taskkeeper/internal/client/state"
	"github.com/iudanet/taskkeeper/internal/models"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	sortBy := fs.String("sort", state.SortByDueDate, "sort field: title, dueDate, isCompleted")
	order := fs.String("order", string(state.SortAsc), "sort order: asc, desc")
	filterText := fs.String("filter", "", "filter text")
	filterBy := fs.String("filter-by", state.FilterByTitle, "filter field: title, description, isCompleted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	todos, err := c.apiClient.ListTodos(ctx)
	if err != nil {
		return err
	}

	// Кладем список в контейнер состояния и рендерим его снимок
	items := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		items = append(items, todoFromResponse(t))
	}
	c.state.SetTodos(items)

	visible := c.state.GetState().Todos
	visible = state.FilterTodos(visible, *filterText, *filterBy)
	visible = state.SortTodos(visible, *sortBy, state.SortOrder(*order))

	if len(visible) == 0 {
		fmt.Println("No todos found.")
		return nil
	}

	for _, todo := range visible {
		printTodoLine(todo)
	}
	fmt.Printf("\n%d todo(s), %d completed\n", len(items), len(c.state.CompletedTodos()))

	return nil
}
