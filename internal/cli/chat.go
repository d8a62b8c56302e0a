package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"campusos/internal/ai"
)

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().Bool("local", false, "Skip remote providers and use the offline planner only")
	chatCmd.Flags().Duration("timeout", ai.DefaultTimeout, "Per-provider reply timeout")
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to CampusGPT, the trip planner",
	Long: `Starts an interactive CampusGPT session. Gemini is used when GEMINI_API_KEY
is set and ChatGPT when OPENAI_API_KEY is set; without either, or when they
fail, replies come from the offline planner. Type "exit" to quit.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, _ []string) error {
	local, _ := cmd.Flags().GetBool("local")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(logrus.WarnLevel)

	var providers []ai.Provider
	if !local {
		var closeFn func()
		providers, closeFn = ai.BuildProviders(cmd.Context(), ai.ProviderKeys{
			GeminiKey:      os.Getenv("GEMINI_API_KEY"),
			OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
			OpenAIModel:    os.Getenv("OPENAI_MODEL"),
			OpenAIEndpoint: os.Getenv("OPENAI_ENDPOINT"),
		}, log)
		defer closeFn()
	}
	chain := ai.NewChain(ai.ChainConfig{Providers: providers, Timeout: timeout, Logger: log})

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	var history []ai.Message
	fmt.Fprint(out, "you> ")
	for in.Scan() {
		msg := strings.TrimSpace(in.Text())
		switch msg {
		case "":
			fmt.Fprint(out, "you> ")
			continue
		case "exit", "quit":
			return nil
		}

		reply, trip := chain.GetReply(cmd.Context(), msg, history)
		fmt.Fprintf(out, "campusgpt> %s\n", reply)
		if trip {
			fmt.Fprintln(out, "[trip plan generated]")
		}
		history = append(history,
			ai.Message{Role: ai.RoleUser, Text: msg},
			ai.Message{Role: ai.RoleAssistant, Text: reply},
		)
		fmt.Fprint(out, "you> ")
	}
	return in.Err()
}
