// Command cli is a terminal client for the trivia API: pick a
// category, answer against the clock, see your results.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knowledgetester/trivia/internal/client"
	"github.com/knowledgetester/trivia/internal/event"
	"github.com/knowledgetester/trivia/internal/results"
	"github.com/knowledgetester/trivia/internal/session"
)

func main() {
	baseURL := flag.String("api", "http://localhost:3000/api", "API base URL")
	flag.Parse()

	if err := run(*baseURL); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(baseURL string) error {
	ctx := context.Background()
	eb := event.NewBus()
	defer eb.Stop()

	cl := client.New(client.Config{
		BaseURL:  baseURL,
		EventBus: eb,
	})

	engine := session.NewEngine(session.Config{
		Fetcher:  cl,
		EventBus: eb,
		OnTick: func(remaining int, warning bool) {
			if warning && remaining > 0 {
				fmt.Printf("\n  [%ds left]\n> ", remaining)
			}
		},
	})

	in := bufio.NewScanner(os.Stdin)

	name := prompt(in, "Your name: ")
	categories := cl.Categories(ctx)

	fmt.Println("Categories:")
	for i, c := range categories {
		fmt.Printf("  %d. %s\n", i+1, c)
	}

	category := ""
	for category == "" {
		pick, err := strconv.Atoi(prompt(in, "Pick a category: "))
		if err != nil || pick < 1 || pick > len(categories) {
			fmt.Println("Enter a number from the list.")
			continue
		}
		category = categories[pick-1]
	}

	if err := engine.Start(ctx, name, category); err != nil {
		return err
	}

	for engine.Screen() == session.ScreenQuiz {
		snap, err := engine.Snapshot()
		if err != nil {
			return err
		}
		if snap.Screen != session.ScreenQuiz {
			break
		}

		printQuestion(snap)

		switch input := prompt(in, "> "); input {
		case "n":
			engine.Next()
		case "p":
			engine.Previous()
		case "s":
			if err := engine.Submit(); err != nil {
				fmt.Println(err)
			}
		case "q":
			engine.GoHome()
			return nil
		default:
			pick, err := strconv.Atoi(input)
			if err != nil {
				fmt.Println("Commands: 1-4 answer, n next, p previous, s submit, q quit.")
				continue
			}
			if err := engine.SelectOption(pick - 1); err != nil {
				fmt.Println(err)
			}
		}
	}

	snap, err := engine.Snapshot()
	if err != nil {
		return err
	}

	printResults(results.Summarize(snap))
	return nil
}

func printQuestion(s session.Snapshot) {
	q := s.Questions[s.CurrentIndex]

	fmt.Printf("\n[%s] Question %d / %d (%s)\n", strings.ToUpper(s.Category), s.CurrentIndex+1, len(s.Questions), q.Difficulty)
	fmt.Println(q.Question)
	for i, o := range q.Options {
		marker := " "
		if a, ok := s.Answers[s.CurrentIndex]; ok && a == i {
			marker = "*"
		}
		fmt.Printf("  %s %d. %s\n", marker, i+1, o)
	}
}

func printResults(sum results.Summary) {
	fmt.Printf("\n%s, you scored %d out of %d (%d%%)\n", sum.PlayerName, sum.Score, sum.Total, sum.Percentage)
	for _, st := range sum.Stats {
		fmt.Printf("  %-10s %s\n", st.Label, st.Value)
	}
}

func prompt(in *bufio.Scanner, message string) string {
	fmt.Print(message)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}
