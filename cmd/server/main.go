package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hamid/folio/config"
	"github.com/hamid/folio/internal/agent"
	"github.com/hamid/folio/internal/db"
	"github.com/hamid/folio/internal/llm"
	"github.com/hamid/folio/internal/query"
	"github.com/hamid/folio/internal/server"
)

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	ctx := context.Background()
	if err := database.Seed(ctx); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	apiKey := cfg.GeminiKey
	baseURL := cfg.GeminiBaseURL
	switch cfg.LLMProvider {
	case "anthropic":
		apiKey = cfg.AnthropicKey
	case "openai":
		apiKey = cfg.OpenAIKey
	case "ollama":
		baseURL = cfg.OllamaBaseURL
	}

	client, err := llm.NewClient(llm.ProviderConfig{
		Provider:  cfg.LLMProvider,
		APIKey:    apiKey,
		AuthToken: cfg.AnthropicToken,
		Model:     cfg.LLMModel,
		BaseURL:   baseURL,
	})
	if err != nil {
		log.Fatalf("failed to create LLM client: %v", err)
	}

	engine := query.New(database, cfg.OwnerName)
	assistant := agent.New(engine, client, cfg.ContactEmail, cfg.MaxContextTokens)

	if len(os.Args) > 1 && os.Args[1] == "chat" {
		runCLI(assistant)
		return
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: server.New(engine, assistant).Router(),
	}

	go func() {
		log.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("shutting down.")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func runCLI(assistant *agent.Agent) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	// Check if stdin is a pipe (non-interactive)
	stat, _ := os.Stdin.Stat()
	isPipe := (stat.Mode() & os.ModeCharDevice) == 0

	if !isPipe {
		fmt.Print("folio> ")
	}

	var history []llm.Message

	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			if !isPipe {
				fmt.Print("folio> ")
			}
			continue
		}
		if input == "exit" || input == "quit" {
			break
		}

		reply, newHistory, err := assistant.Run(ctx, history, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else {
			fmt.Println(reply)
			history = newHistory
		}

		if isPipe {
			break // single exchange in pipe mode
		}
		fmt.Print("folio> ")
	}
}
