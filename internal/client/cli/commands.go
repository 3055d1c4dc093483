package cli

import (
	"context"
	"fmt"
	"os"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "add":
		err = c.runAdd(ctx)
	case "list":
		err = c.runList(ctx, args)
	case "get":
		err = c.runGet(ctx, args)
	case "complete":
		err = c.runSetCompleted(ctx, args, true)
	case "uncomplete":
		err = c.runSetCompleted(ctx, args, false)
	case "update":
		err = c.runUpdate(ctx, args)
	case "delete":
		err = c.runDelete(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// requireAuth загружает сохраненный токен и настраивает API клиент
func (c *Cli) requireAuth(ctx context.Context) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return fmt.Errorf("not authenticated. Please run 'taskkeeper login' first")
	}
	c.apiClient.SetToken(token)
	return nil
}
