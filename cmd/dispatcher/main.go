// cmd/dispatcher/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"agent-relay/internal/agents/dispatcher"
	"agent-relay/internal/common/config"
	"agent-relay/internal/common/logger"
)

var (
	query   string
	debug   bool
	cfgFile string

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var rootCmd = &cobra.Command{
	Use:   "dispatcher",
	Short: "Ask about the weather or request a joke",
	Long: `Classifies a free-text question and forwards it to the weather or joke relay.
Without --query an interactive prompt is started.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		level := "warn"
		if debug {
			level = "debug"
		}
		zapLog := logger.New(level, "console")
		defer zapLog.Sync()

		d := dispatcher.New(&dispatcher.Config{
			WeatherRelayURL: cfg.Endpoints.WeatherRelayURL,
			JokeRelayURL:    cfg.Endpoints.JokeRelayURL,
			Timeout:         config.GetDuration(cfg.Dispatcher.Timeout),
		}, logger.NewZapAdapter(zapLog))
		defer d.Close()

		if query != "" {
			answer(cmd.Context(), d, query)
			return nil
		}
		return interactive(cmd.Context(), d)
	},
}

func main() {
	rootCmd.Flags().StringVarP(&query, "query", "q", "", "ask a single question and exit")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.Flags().BoolVarP(&debug, "debug", "D", false, "enable debug logging")

	cobra.CheckErr(rootCmd.ExecuteContext(context.Background()))
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	return config.Load()
}

func interactive(ctx context.Context, d *dispatcher.Dispatcher) error {
	fmt.Println(titleStyle.Render("🤖 Weather & Jokes"))
	fmt.Println("Ask me about weather in New York, London, Tokyo, Paris, or Sydney, or tell me a joke!")

	for {
		var q string
		prompt := &survey.Input{Message: "What would you like to know?"}
		if err := survey.AskOne(prompt, &q); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		q = strings.TrimSpace(q)
		switch strings.ToLower(q) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		answer(ctx, d, q)
	}
}

func answer(ctx context.Context, d *dispatcher.Dispatcher, q string) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Thinking..."
	s.Start()
	result := d.Dispatch(ctx, q)
	s.Stop()

	if result.Type == dispatcher.ResultError {
		fmt.Println(errorStyle.Render(dispatcher.Render(result)))
		return
	}
	fmt.Println(dispatcher.Render(result))
}
