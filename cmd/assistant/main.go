package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/udityamerit/portfolio-assistant/internal/adapters/facts"
	"github.com/udityamerit/portfolio-assistant/internal/adapters/llm"
	"github.com/udityamerit/portfolio-assistant/internal/adapters/storage/memory"
	"github.com/udityamerit/portfolio-assistant/internal/app/assistant"
	"github.com/udityamerit/portfolio-assistant/internal/config"
	"github.com/udityamerit/portfolio-assistant/internal/profile"
)

func main() {
	var (
		transportFlag string
		relayURL      string
		githubUser    string
	)

	root := &cobra.Command{
		Use:   "assistant",
		Short: "Interactive portfolio assistant chat",
		Long: "Chats about " + profile.Name + "'s work. Trivial questions are answered " +
			"locally; everything else goes through the configured model transport.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadDotEnv()
			cfg := config.LoadAssistant()

			if transportFlag != "" {
				cfg.Transport = config.TransportMode(transportFlag)
			}
			if relayURL != "" {
				cfg.RelayURL = relayURL
			}
			if githubUser != "" {
				cfg.GitHubUser = githubUser
			}

			svc, err := buildService(cfg)
			if err != nil {
				return err
			}
			return runChat(cmd, svc)
		},
	}

	root.Flags().StringVar(&transportFlag, "transport", "", "model transport: relay, direct or mock")
	root.Flags().StringVar(&relayURL, "relay-url", "", "base URL of the relay service")
	root.Flags().StringVar(&githubUser, "github-user", "", "GitHub account for live facts")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildService(cfg *config.AssistantConfig) (*assistant.Service, error) {
	var transport llm.Transport
	switch cfg.Transport {
	case config.TransportDirect:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("direct transport requires GEMINI_API_KEY")
		}
		transport = llm.NewDirectTransport(cfg.APIKey, cfg.ModelName)
	case config.TransportMock:
		transport = llm.NewMockTransport()
	default:
		transport = llm.NewRelayTransport(cfg.RelayURL)
	}

	gatherer := facts.NewGatherer(cfg.GitHubUser)
	client := llm.NewClient(transport, gatherer)

	return assistant.NewService(client, memory.NewMessageStore()), nil
}

func runChat(cmd *cobra.Command, svc *assistant.Service) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Hello! I'm %s's assistant. Ask me anything (ctrl-d to quit).\n\n", profile.Name)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		result, err := svc.Send(cmd.Context(), text)
		if err != nil {
			fmt.Fprintf(out, "! %v\n", err)
			continue
		}

		reply := result.AssistantMessage
		fmt.Fprintln(out, reply.Text)
		if labels := visibleSources(reply.Sources); len(labels) > 0 {
			fmt.Fprintf(out, "  sources: %s\n", strings.Join(labels, ", "))
		}
		fmt.Fprintln(out)
	}
	return scanner.Err()
}

// visibleSources drops error-class labels; they mark fallbacks, not
// provenance worth showing.
func visibleSources(sources []string) []string {
	var out []string
	for _, s := range sources {
		if strings.Contains(s, "Error") {
			continue
		}
		out = append(out, s)
	}
	return out
}
