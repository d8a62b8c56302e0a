// README: One-shot CampusGPT demo against Gemini; prints the reply and whether a trip plan was produced.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"campusos/internal/ai"
)

func main() {
	log := logrus.New()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider, err := ai.NewGeminiProvider(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer provider.Close()

	chain := ai.NewChain(ai.ChainConfig{Providers: []ai.Provider{provider}, Logger: log})

	history := []ai.Message{
		{Role: ai.RoleUser, Text: "Hi!"},
		{Role: ai.RoleAssistant, Text: "Hey! 👋 Kaha jana hai is weekend?"},
	}
	userMessage := "Rishikesh weekend trip for 5 friends under ₹2000 each"
	if len(os.Args) > 1 {
		userMessage = os.Args[1]
	}
	fmt.Printf("User: %s\n", userMessage)

	reply, trip := chain.GetReply(ctx, userMessage, history)

	fmt.Printf("AI Reply: %s\n", reply)
	fmt.Printf("Trip generated: %t\n", trip)
}
