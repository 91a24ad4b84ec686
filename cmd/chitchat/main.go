package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chitchat/domain/chat"
	apperrors "chitchat/errors"
	"chitchat/internal"
	"chitchat/rest"
	"chitchat/runtime"
	"chitchat/services"
	"chitchat/session"
	"chitchat/state"
	"chitchat/stream"
)

// Exit codes to provide meaningful status to the operating system.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chitchat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the session lifecycle, and
// centralizes error reporting so deferred cleanups always execute.
func run() (int, error) {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Session storage (BadgerDB)
	options := badger.DefaultOptions(config.SessionDBPath).WithLogger(nil)
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("session database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing session database...")
		_ = db.Close()
	}()

	sessionStore := session.NewStore(db)
	api := rest.NewClient(config.ServerURL, logger)
	auth := services.NewAuthService(logger, api, sessionStore)

	// 3. Identity: persisted session or interactive login
	user, err := sessionStore.Load()
	if stderrors.Is(err, apperrors.ErrNotAuthenticated) {
		user, err = loginFlow(ctx, auth, bufio.NewScanner(os.Stdin))
	}
	if err != nil {
		return exitRuntime, err
	}
	color.Green.Printf("Signed in as %s (id %s)\n", user.Name, user.ID)

	// 4. Stream, state, reconciler
	manager, err := stream.NewManager(logger, config.ServerURL, user.ID,
		config.ReconnectBackoff, config.ReconnectMax, config.StreamBufferSize)
	if err != nil {
		return exitRuntime, err
	}

	rooms := state.NewRoomCache()
	presence := state.NewPresenceTracker()
	typing := state.NewTypingTracker(config.TypingHardExpiry)
	friends := state.NewFriendList()
	inbox := state.NewInbox()

	emitter := services.NewTypingEmitter(manager, config.TypingIdle)
	svc := services.NewChatService(logger, api, manager, user, rooms, presence, typing, friends, inbox, emitter)

	callbacks := runtime.Callbacks{
		OnMessage: func(roomID string, msg chat.Message) {
			if selected, ok := rooms.Selected(); ok && selected == roomID {
				fmt.Printf("[%s] %s: %s\n", msg.Timestamp, msg.Sender.Name, renderContent(msg))
			}
		},
		OnAlert: func(text string) {
			color.Yellow.Printf("\n! %s\n", text)
		},
	}
	reconciler := runtime.NewReconciler(logger, manager.Events(), api, manager, user.ID,
		rooms, presence, typing, friends, inbox, callbacks)

	supervisor := runtime.NewSupervisor(logger).Add(manager, reconciler)
	go supervisor.Run(ctx)

	// 5. Initial hydration; failures keep the UI usable with whatever
	// is cached, so they are reported but not fatal.
	if _, err := svc.RefreshRooms(ctx); err != nil {
		logger.Warn("Initial room fetch failed", "err", err)
	}
	if _, err := svc.RefreshFriends(ctx); err != nil {
		logger.Warn("Initial friends fetch failed", "err", err)
	}
	if _, err := svc.RefreshNotifications(ctx); err != nil {
		logger.Warn("Initial notification fetch failed", "err", err)
	}

	// 6. Interactive loop
	repl := newREPL(logger, svc, auth, manager, typing, presence)
	replErr := repl.run(ctx)

	// Clean teardown: close the connection before leaving, never
	// leaking it behind the exiting process.
	_ = manager.Close()
	supervisor.Stop()

	if replErr != nil && !stderrors.Is(replErr, context.Canceled) {
		return exitRuntime, replErr
	}
	return exitOK, nil
}

// loginFlow runs the interactive authentication dialog until a login
// succeeds or input ends.
func loginFlow(ctx context.Context, auth *services.AuthService, scanner *bufio.Scanner) (chat.User, error) {
	for {
		choice := prompt(scanner, "login or register? [l/r]: ")
		switch strings.ToLower(choice) {
		case "r", "register":
			username := prompt(scanner, "username: ")
			email := prompt(scanner, "email: ")
			password := prompt(scanner, "password: ")
			if err := auth.Register(ctx, username, email, password); err != nil {
				color.Red.Printf("registration failed: %v\n", err)
				continue
			}
			color.Green.Println("registered, now log in")
		case "l", "login", "":
			email := prompt(scanner, "email: ")
			password := prompt(scanner, "password: ")
			user, err := auth.Login(ctx, email, password)
			if err != nil {
				color.Red.Printf("login failed: %v\n", err)
				continue
			}
			return user, nil
		default:
			color.Red.Println("unknown choice")
		}
		if ctx.Err() != nil {
			return chat.User{}, ctx.Err()
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func renderContent(msg chat.Message) string {
	if msg.Attachment == nil {
		return msg.Content
	}
	if msg.Content == "" {
		return fmt.Sprintf("<%s>", msg.Attachment.OriginalName)
	}
	return fmt.Sprintf("%s <%s>", msg.Content, msg.Attachment.OriginalName)
}
