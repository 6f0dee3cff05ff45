// Command boardroom generates a report on a topic from the command line.
//
// Usage:
//
//	boardroom "benefits and risks of AI in healthcare"
//
// The topic may also be piped on stdin. API keys are read from the
// environment (or a .env file): ANTHROPIC_API_KEY, OPENAI_API_KEY,
// GROQ_API_KEY, or GOOGLE_API_KEY, first match wins.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mwhitby/boardroom/client"
	"github.com/mwhitby/boardroom/graph"
	"github.com/mwhitby/boardroom/report"
)

func main() {
	godotenv.Load()

	parallel := flag.Bool("parallel", false, "run each team's workers concurrently")
	verbose := flag.Bool("v", false, "print each worker's log line as the run progresses")
	flag.Parse()

	task := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if task == "" {
		task = readStdinTask()
	}
	if task == "" {
		fmt.Fprintln(os.Stderr, "usage: boardroom [-parallel] [-v] <topic>")
		os.Exit(2)
	}

	ctx := context.Background()

	c, err := client.New(ctx, client.FromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := []report.Option{report.WithBackendName(c.Name())}
	if *parallel {
		opts = append(opts, report.WithConcurrentTeams())
	}

	var engineOpts []graph.Option
	var reporter *graph.Reporter
	progressDone := make(chan struct{})
	if *verbose {
		reporter = graph.NewReporter()
		engineOpts = append(engineOpts, graph.WithReporter(reporter))
		go func() {
			defer close(progressDone)
			for ev := range reporter.Events() {
				if ev.Type == graph.EventStepEnd && ev.Message != "" {
					fmt.Fprintln(os.Stderr, ev.Message)
				}
			}
		}()
	} else {
		close(progressDone)
	}

	engine, err := report.New(c, opts...).Engine(engineOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	result, err := engine.Run(ctx, task)
	if reporter != nil {
		reporter.Close()
	}
	<-progressDone
	if err != nil {
		fmt.Fprintf(os.Stderr, "report generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(result.State.FinalReport)

	if result.Degraded() {
		fmt.Fprintln(os.Stderr)
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
	}
}

func readStdinTask() string {
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return ""
	}
	var sb strings.Builder
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}
