// Command mindsync is a terminal front end for the MindSync state core:
// mood check-ins, AI chat sessions and session recaps, persisted between
// runs through the configured storage backend.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bmichals25/MindSync/internal/config"
	"github.com/bmichals25/MindSync/internal/database"
	"github.com/bmichals25/MindSync/internal/identity"
	"github.com/bmichals25/MindSync/internal/kv"
	"github.com/bmichals25/MindSync/internal/model"
	"github.com/bmichals25/MindSync/internal/persist"
	"github.com/bmichals25/MindSync/internal/service"
	"github.com/bmichals25/MindSync/internal/store"
	"github.com/bmichals25/MindSync/internal/token"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	setLogLevel(cfg.LogLevel)

	ctx := context.Background()

	kvStore, cleanup, err := openKV(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage backend")
	}
	defer cleanup()

	gateway := persist.New(kvStore)
	snapshot := gateway.Rehydrate(ctx)

	stores := store.NewFromSnapshot(store.Collaborators{
		Identity: identity.NewInMemory(),
		Tokens:   token.NewMinter(cfg.AuthTokenSecret),
		KV:       kvStore,
	}, snapshot)
	gateway.Watch(stores)

	ai := service.NewAIService(cfg.OpenAIAPIKey, cfg.AIModel)
	tts := service.NewTTSService(cfg.ElevenLabsAPIKey)
	chat := service.NewChatService(stores.Sessions, stores.Settings, ai)

	stores.Auth.CheckAuth(ctx)
	if auth := stores.Auth.State(); auth.IsAuthenticated {
		fmt.Printf("Welcome back, %s\n", auth.User.Email)
	} else {
		fmt.Println("Not signed in. Use /register or /login.")
	}

	repl(ctx, cfg, stores, gateway, chat, tts)
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func openKV(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		return kv.NewMemory(), noop, nil
	case config.BackendFile:
		fileStore, err := kv.NewFile(cfg.StateDirOrDefault())
		return fileStore, noop, err
	case config.BackendRedis:
		redisStore, err := kv.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return redisStore, func() { redisStore.Close() }, nil
	case config.BackendPostgres:
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		pgStore, err := kv.NewPostgres(ctx, db)
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		return pgStore, func() { db.Close() }, nil
	}
	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func repl(ctx context.Context, cfg *config.Config, stores *store.Store, gateway *persist.Gateway, chat *service.ChatService, tts *service.TTSService) {
	scanner := bufio.NewScanner(os.Stdin)
	var currentSession string

	fmt.Println("Type /help for commands; plain text chats in the active session.")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, "/") {
			if currentSession == "" {
				fmt.Println("No active session. /start one first.")
				continue
			}
			reply, err := chat.SendMessage(ctx, currentSession, line)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Println(reply.Content)
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "/help":
			printHelp()
		case "/login":
			if len(args) < 2 {
				fmt.Println("usage: /login <email> <password>")
				continue
			}
			stores.Auth.Login(ctx, args[0], args[1])
			printAuth(stores.Auth.State())
		case "/register":
			if len(args) < 4 {
				fmt.Println("usage: /register <email> <password> <first> <last>")
				continue
			}
			stores.Auth.Register(ctx, args[0], args[1], args[2], args[3])
			printAuth(stores.Auth.State())
		case "/logout":
			stores.Auth.Logout(ctx)
			fmt.Println("Signed out.")
		case "/mood":
			if len(args) < 2 {
				fmt.Println("usage: /mood <happy|neutral|sad|anxious|angry|calm|stressed> <1-10> [notes]")
				continue
			}
			intensity, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("intensity must be a number")
				continue
			}
			entry := stores.Moods.Add(model.MoodType(args[0]), intensity, strings.Join(args[2:], " "))
			if currentSession != "" {
				stores.Moods.LinkToSession(entry.Timestamp, currentSession, false)
			}
			fmt.Printf("Recorded %s (%d/10)\n", entry.Value, entry.Intensity)
		case "/moods":
			for _, entry := range stores.Moods.All() {
				fmt.Printf("%s  %-9s %2d/10  %s\n",
					entry.Timestamp.Format(time.DateTime), entry.Value, entry.Intensity, entry.Notes)
			}
		case "/start":
			session := chat.StartSession(strings.Join(args, " "), model.ModeChat)
			currentSession = session.ID
			fmt.Println(service.Greeting)
		case "/end":
			if currentSession == "" {
				fmt.Println("No active session.")
				continue
			}
			stores.Sessions.End(currentSession, strings.Join(args, " "))
			if session := stores.Sessions.Get(currentSession); session != nil {
				fmt.Printf("Session ended after %d minute(s), %d message(s).\n",
					session.Duration, len(session.Messages))
			}
			currentSession = ""
		case "/sessions":
			for _, session := range stores.Sessions.All() {
				fmt.Printf("%s  %-20s %s  %2d min  %d msgs\n",
					session.Date.Format(time.DateTime), session.Title,
					session.Mode, session.Duration, len(session.Messages))
			}
		case "/todo":
			if currentSession == "" || len(args) == 0 {
				fmt.Println("usage (inside a session): /todo <text>")
				continue
			}
			stores.Sessions.AddActionItem(currentSession, strings.Join(args, " "))
		case "/voices":
			voices, err := tts.GetVoices(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			for _, voice := range voices {
				fmt.Printf("%s  %s\n", voice.VoiceID, voice.Name)
			}
		case "/say":
			settings := stores.Settings.State()
			if !settings.Voice.Enabled || settings.Voice.VoiceID == "" {
				fmt.Println("Voice is disabled or no voice selected.")
				continue
			}
			audio, err := tts.Synthesize(ctx, service.SynthesizeOptions{
				Text:    strings.Join(args, " "),
				VoiceID: settings.Voice.VoiceID,
			})
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			out := filepath.Join(cfg.StateDirOrDefault(), "speech.mp3")
			if err := os.WriteFile(out, audio, 0o600); err != nil {
				fmt.Println("error:", err)
				continue
			}
			fmt.Printf("Wrote %d bytes to %s\n", len(audio), out)
		case "/reset-settings":
			stores.Settings.Reset()
			fmt.Println("Settings restored to defaults.")
		case "/quit", "/exit":
			gateway.Flush(stores)
			return
		default:
			fmt.Println("Unknown command; /help lists them.")
		}
	}
}

func printAuth(state model.AuthState) {
	switch {
	case state.Error != "":
		fmt.Println("error:", state.Error)
	case state.IsAuthenticated:
		fmt.Printf("Signed in as %s\n", state.User.Email)
	default:
		fmt.Println("Not signed in.")
	}
}

func printHelp() {
	fmt.Println(`Commands:
  /login <email> <password>            sign in
  /register <email> <pw> <first> <last> create an account and sign in
  /logout                              sign out
  /mood <value> <1-10> [notes]         record a mood check-in
  /moods                               list mood history
  /start [title]                       start a chat session
  /end [summary]                       end the active session
  /sessions                            list past sessions
  /todo <text>                         add an action item to the session
  /voices                              list text-to-speech voices
  /say <text>                          synthesize speech with the set voice
  /reset-settings                      restore default settings
  /quit                                flush state and exit`)
}
