package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/iudanet/taskkeeper/internal/client/api"
	"github.com/iudanet/taskkeeper/internal/client/session"
	"github.com/iudanet/taskkeeper/internal/client/state"
)

// Cli связывает API клиент, сессию и контейнер состояния
type Cli struct {
	apiClient *api.Client
	session   *session.Session
	state     *state.Container
}

func New(apiClient *api.Client, sess *session.Session) *Cli {
	return &Cli{
		apiClient: apiClient,
		session:   sess,
		state:     state.NewContainer(),
	}
}

func PrintUsage() {
	fmt.Println("TaskKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  taskkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: taskkeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                 Register new user")
	fmt.Println("  login                    Login to server")
	fmt.Println("  logout                   Logout and forget the saved session")
	fmt.Println("  status                   Show authentication status")
	fmt.Println("  add                      Add a new todo")
	fmt.Println("  list [flags]             List todos (-sort, -order, -filter, -filter-by)")
	fmt.Println("  get <id>                 Show one todo")
	fmt.Println("  complete <id>            Mark todo as completed")
	fmt.Println("  uncomplete <id>          Mark todo as not completed")
	fmt.Println("  update <id> [flags]      Update todo fields (-title, -description, -done, -due)")
	fmt.Println("  delete <id>              Delete todo")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  taskkeeper register")
	fmt.Println("  taskkeeper login")
	fmt.Println("  taskkeeper add")
	fmt.Println("  taskkeeper list -sort dueDate")
	fmt.Println("  taskkeeper list -filter milk -filter-by title")
	fmt.Println("  taskkeeper complete b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  taskkeeper update b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 -due 2026-09-15")
	fmt.Println("  taskkeeper --server https://example.com login")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

// parseDueDate принимает дату в формате YYYY-MM-DD или RFC3339
func parseDueDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC3339", value)
	}
	return t, nil
}
