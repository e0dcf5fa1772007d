package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alsokkary/promptsmith"
)

// chatCmd starts an interactive chat session. Type "exit" to quit and
// "reset" to clear the conversation history.
func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat with the agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			agent, err := promptsmith.NewAgentWithConfig(cfg)
			if err != nil {
				return err
			}

			fmt.Printf("Chatting with %s/%s (session %s)\n", cfg.Provider, cfg.Model, agent.SessionID())
			fmt.Println("Type 'exit' to quit, 'reset' to clear conversation")
			fmt.Println()

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("You: ")
				if !scanner.Scan() {
					break
				}
				input := strings.TrimSpace(scanner.Text())

				switch {
				case input == "":
					continue
				case strings.EqualFold(input, "exit"):
					fmt.Println("Goodbye!")
					return nil
				case strings.EqualFold(input, "reset"):
					agent.Reset()
					fmt.Println("Conversation history cleared")
					fmt.Println()
					continue
				}

				response, err := agent.Chat(context.Background(), input)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
					continue
				}
				fmt.Printf("Assistant: %s\n\n", response)
			}
			return scanner.Err()
		},
	}
}
