// Package protocol implements the line-oriented text protocol: a dispatcher
// translating request lines into registry calls, and the TCP server that
// carries them.
package protocol

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/usermgmt/user-registry/internal/core/domain"
	"github.com/usermgmt/user-registry/internal/core/ports"
	"github.com/usermgmt/user-registry/internal/core/validation"
	"github.com/usermgmt/user-registry/internal/protocol/metrics"
)

const helpText = "Available commands:\n" +
	"CREATE username email first_name last_name - Create a new user\n" +
	"GET <username|email|id> - Get user information\n" +
	"LIST - List all users\n" +
	"DELETE <username|email|id> - Delete a user\n" +
	"HELP - Show this help message"

// Dispatcher parses a request line, invokes the registry and formats the
// response text. Malformed input (wrong arg count, unknown command, empty
// line) is answered here and never reaches the registry.
type Dispatcher struct {
	service ports.UserService
	logger  zerolog.Logger
}

func NewDispatcher(service ports.UserService, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{service: service, logger: logger}
}

// Dispatch handles one request and returns the complete response block.
// The request is a single line of whitespace-separated tokens; the first
// token is the command verb, matched case-sensitively.
func (d *Dispatcher) Dispatch(ctx context.Context, request string) string {
	parts := strings.Fields(validation.Sanitize(request))
	if len(parts) == 0 {
		return "ERROR: Empty request"
	}

	command := parts[0]
	start := time.Now()
	response := d.run(ctx, command, parts[1:])
	metrics.CommandDuration.WithLabelValues(commandLabel(command)).Observe(time.Since(start).Seconds())
	metrics.CommandsTotal.WithLabelValues(commandLabel(command), outcome(response)).Inc()
	return response
}

func (d *Dispatcher) run(ctx context.Context, command string, args []string) string {
	switch command {
	case "CREATE":
		return d.handleCreate(ctx, args)
	case "GET":
		return d.handleGet(ctx, args)
	case "LIST":
		return d.handleList(ctx)
	case "DELETE":
		return d.handleDelete(ctx, args)
	case "HELP":
		return helpText
	default:
		return "ERROR: Unknown command. Type HELP for available commands."
	}
}

func (d *Dispatcher) handleCreate(ctx context.Context, args []string) string {
	if len(args) < 4 {
		return "ERROR: Usage: CREATE username email first_name last_name"
	}

	user, err := d.service.CreateUser(ctx, ports.CreateUserInput{
		Username:  args[0],
		Email:     args[1],
		FirstName: args[2],
		LastName:  args[3],
	})
	if err != nil {
		return errorResponse(err)
	}
	return fmt.Sprintf("OK: User created with ID: %s", user.ID)
}

func (d *Dispatcher) handleGet(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "ERROR: Usage: GET <username|email|id>"
	}

	user, err := d.resolve(ctx, args[0])
	if err != nil {
		return errorResponse(err)
	}
	return formatUserInfo(user)
}

func (d *Dispatcher) handleList(ctx context.Context) string {
	users, err := d.service.ListUsers(ctx)
	if err != nil {
		return errorResponse(err)
	}
	if len(users) == 0 {
		return "No users found"
	}

	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, fmt.Sprintf("%s (%s)", u.Username, u.Email))
	}
	return "Users:\n" + strings.Join(lines, "\n")
}

func (d *Dispatcher) handleDelete(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "ERROR: Usage: DELETE <username|email|id>"
	}

	user, err := d.resolve(ctx, args[0])
	if err != nil {
		return errorResponse(err)
	}
	if err := d.service.DeleteUser(ctx, user.ID); err != nil {
		return errorResponse(err)
	}
	return "OK: User deleted"
}

// resolve maps an identifier token to a user: a parseable UUID is an ID, a
// token containing '@' is an email, anything else is a username. GET and
// DELETE share this rule.
func (d *Dispatcher) resolve(ctx context.Context, token string) (*domain.User, error) {
	if id, err := uuid.Parse(token); err == nil {
		return d.service.GetUserByID(ctx, id)
	}
	if strings.Contains(token, "@") {
		return d.service.GetUserByEmail(ctx, token)
	}
	return d.service.GetUserByUsername(ctx, token)
}

func formatUserInfo(u *domain.User) string {
	return fmt.Sprintf(
		"User ID: %s\n"+
			"Username: %s\n"+
			"Email: %s\n"+
			"Name: %s %s\n"+
			"Role: %s\n"+
			"Status: %s\n"+
			"Created: %s\n"+
			"Updated: %s",
		u.ID,
		u.Username,
		u.Email,
		u.FirstName, u.LastName,
		u.Role,
		u.Status,
		u.CreatedAt.Format(time.RFC3339),
		u.UpdatedAt.Format(time.RFC3339),
	)
}

func errorResponse(err error) string {
	return "ERROR: " + err.Error()
}

func outcome(response string) string {
	if strings.HasPrefix(response, "ERROR:") {
		return "error"
	}
	return "ok"
}

// commandLabel keeps the metrics label set bounded: anything outside the
// fixed verb set is reported as "unknown".
func commandLabel(command string) string {
	switch command {
	case "CREATE", "GET", "LIST", "DELETE", "HELP":
		return command
	default:
		return "unknown"
	}
}
