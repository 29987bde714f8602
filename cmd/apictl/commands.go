package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/macrotrack/macrotrack-console/internal/client"
	"github.com/macrotrack/macrotrack-console/internal/config"
	"github.com/macrotrack/macrotrack-console/internal/crypto"
	"github.com/macrotrack/macrotrack-console/internal/model"
	"github.com/macrotrack/macrotrack-console/internal/service"
)

var errUsage = errors.New("usage: apictl [-server URL] [-token TOKEN] <health|signup|login|me|reset|sendgrid|test-table|goals|inspect-token> [flags]")

// run executes one command and returns the process exit status.
func run(ctx context.Context, args []string, cfg config.Config, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("apictl", flag.ContinueOnError)
	global.SetOutput(stderr)
	server := global.String("server", cfg.APIBaseURL, "backend base URL")
	token := global.String("token", cfg.APIToken, "bearer token for authenticated endpoints")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	api := client.New(*server, client.WithToken(*token))
	c := &cli{
		auth:   service.NewAuthService(api),
		goals:  service.NewGoalsService(api),
		stderr: stderr,
	}

	result, err := c.dispatch(ctx, global.Arg(0), global.Args()[1:])
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		if detail, ok := client.Detail(err); ok {
			fmt.Fprintln(stderr, "Detail:", detail)
		}
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			return 2
		}
		return 1
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

type cli struct {
	auth   *service.AuthService
	goals  *service.GoalsService
	stderr io.Writer
}

func (c *cli) dispatch(ctx context.Context, cmd string, args []string) (any, error) {
	switch cmd {
	case "health":
		return c.auth.TestConnection(ctx)
	case "signup":
		return c.signup(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "me":
		return c.auth.GetCurrentUser(ctx)
	case "reset":
		return c.reset(ctx, args)
	case "sendgrid":
		return c.auth.TestSendGrid(ctx)
	case "test-table":
		return c.auth.TestTable(ctx)
	case "goals":
		return c.goalsCmd(ctx, args)
	case "inspect-token":
		if len(args) != 1 {
			return nil, fmt.Errorf("inspect-token takes exactly one token: %w", errUsage)
		}
		return crypto.InspectToken(args[0])
	default:
		return nil, fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c *cli) signup(ctx context.Context, args []string) (any, error) {
	fs := c.flags("signup")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	generate := fs.Bool("generate", false, "generate a random password")
	length := fs.Int("length", 16, "length of the generated password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *generate {
		pw, err := crypto.GeneratePassword(*length)
		if err != nil {
			return nil, fmt.Errorf("generate password: %w", err)
		}
		*password = pw
		fmt.Fprintln(c.stderr, "Generated password:", pw)
	}

	return c.auth.Signup(ctx, model.SignupRequest{Email: *email, Password: *password})
}

func (c *cli) login(ctx context.Context, args []string) (any, error) {
	fs := c.flags("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return c.auth.Login(ctx, model.LoginRequest{Email: *email, Password: *password})
}

func (c *cli) reset(ctx context.Context, args []string) (any, error) {
	fs := c.flags("reset")
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return c.auth.RequestPasswordReset(ctx, *email)
}

// goalsCmd handles "goals get" and "goals set". set creates the goals when
// every value is given and updates only the given values otherwise.
func (c *cli) goalsCmd(ctx context.Context, args []string) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("goals needs get or set: %w", errUsage)
	}

	switch args[0] {
	case "get":
		return c.goals.Get(ctx)
	case "set":
		fs := c.flags("goals set")
		calories := fs.Int("calories", -1, "total daily calories")
		protein := fs.Float64("protein", -1, "protein percentage")
		carbs := fs.Float64("carbs", -1, "carbohydrate percentage")
		fat := fs.Float64("fat", -1, "fat percentage")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, err
		}

		var req model.MacroGoalsRequest
		if *calories >= 0 {
			req.TotalCalories = calories
		}
		if *protein >= 0 {
			req.ProteinPct = protein
		}
		if *carbs >= 0 {
			req.CarbPct = carbs
		}
		if *fat >= 0 {
			req.FatPct = fat
		}

		if req.Complete() {
			return c.goals.Create(ctx, req)
		}
		return c.goals.Update(ctx, req)
	default:
		return nil, fmt.Errorf("unknown goals command %q: %w", args[0], errUsage)
	}
}
