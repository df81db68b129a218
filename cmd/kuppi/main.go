package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kuppi-app/kuppi-go/internal/pkg/apierrors"
	"github.com/kuppi-app/kuppi-go/internal/pkg/config"
	"github.com/kuppi-app/kuppi-go/internal/pkg/logger"
	"github.com/kuppi-app/kuppi-go/internal/pkg/models"
	"github.com/kuppi-app/kuppi-go/session"
	gateway_http "github.com/kuppi-app/kuppi-go/session/gateway/http"
	"github.com/kuppi-app/kuppi-go/session/repository"
	"github.com/kuppi-app/kuppi-go/session/usecase"
	"go.uber.org/zap"
)

const usage = `usage: kuppi [-config path] <command> [args]

commands:
  status                                 show session state
  signup -email E -name N -password P    register and mail a signup OTP
  verify -email E -code C [-purpose P]   verify an OTP (purpose: signup|reset)
  login -email E -password P             log in
  reset-request -email E                 mail a password reset OTP
  reset -email E -password P             set a new password (after verify)
  logout                                 end the session
`

func main() {
	configPath := flag.String("config", ".env", "path to .env config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting kuppi client",
		zap.String("app", configs.App.Name),
		zap.String("environment", configs.App.Environment),
	)

	store, closeStore, err := buildStore(configs)
	if err != nil {
		zapLogger.Fatal("Failed to initialize session store", zap.Error(err))
	}
	defer closeStore()

	authGW := gateway_http.NewAuthClient(configs.API.BaseURL, configs.API.Timeout)
	manager := usecase.NewManager(authGW, store, configs)

	ctx := context.Background()
	if err := manager.Start(ctx); err != nil {
		zapLogger.Warn("Session hydration incomplete", zap.Error(err))
	}

	if err := run(ctx, manager, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintln(os.Stderr, apierrors.DisplayMessage(err))
		zapLogger.Debug("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func buildStore(configs *models.Config) (session.TokenStore, func(), error) {
	switch configs.Session.Backend {
	case "redis":
		store, err := repository.NewRedisStore(configs.Redis, configs.Session.Profile)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return repository.NewFileStore(configs.Session.FilePath), func() {}, nil
	}
}

func run(ctx context.Context, manager session.SessionUC, command string, args []string) error {
	switch command {
	case "status":
		printState(manager.State())
		return nil

	case "signup":
		fs := flag.NewFlagSet("signup", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		name := fs.String("name", "", "display name")
		password := fs.String("password", "", "account password")
		fs.Parse(args)

		resp, err := manager.SignUp(ctx, &models.Credentials{
			Email:    *email,
			Name:     *name,
			Password: *password,
		})
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil

	case "verify":
		fs := flag.NewFlagSet("verify", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		code := fs.String("code", "", "6-digit OTP code")
		purpose := fs.String("purpose", "signup", "signup or reset")
		fs.Parse(args)

		p := models.OTPPurposeSignup
		if *purpose == "reset" {
			p = models.OTPPurposePasswordReset
		}
		resp, err := manager.VerifyOTP(ctx, &models.OTPVerification{
			Email:   *email,
			Code:    *code,
			Purpose: p,
		})
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "account password")
		fs.Parse(args)

		if err := manager.Login(ctx, &models.Credentials{
			Email:    *email,
			Password: *password,
		}); err != nil {
			return err
		}
		printState(manager.State())
		return nil

	case "reset-request":
		fs := flag.NewFlagSet("reset-request", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		fs.Parse(args)

		resp, err := manager.RequestPasswordReset(ctx, *email)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil

	case "reset":
		fs := flag.NewFlagSet("reset", flag.ExitOnError)
		email := fs.String("email", "", "account email")
		password := fs.String("password", "", "new password")
		fs.Parse(args)

		resp, err := manager.ResetPassword(ctx, *email, *password)
		if err != nil {
			return err
		}
		fmt.Println(resp.Message)
		return nil

	case "logout":
		manager.Logout(ctx)
		fmt.Println("Logged out.")
		return nil

	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func printState(state models.AuthState) {
	if state.IsAuthenticated() {
		fmt.Printf("Logged in as %s <%s>\n", state.User.Name, state.User.Email)
		return
	}
	fmt.Println("Not logged in.")
}
