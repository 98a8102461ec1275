// Package main implements a command-line front end for the chart advisor:
// it collects the two form fields and a session credential, submits them to
// the recommendation server and prints the result.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/chartadvisor/chart-advisor/internal/client"
	"github.com/chartadvisor/chart-advisor/internal/guide"
	"github.com/chartadvisor/chart-advisor/internal/session"
)

// credentialEnv names the variable holding the session credential.
const credentialEnv = "CHARTADVISOR_CREDENTIAL"

const defaultServer = "http://localhost:8080"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
	}

	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

// options holds the parsed command line.
type options struct {
	server          string
	dataDescription string
	objective       string
	showGuide       bool
	verbose         bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	flags := flag.NewFlagSet("advisor", flag.ContinueOnError)
	flags.SetOutput(stderr)

	opts := &options{}
	flags.StringVar(&opts.server, "server", defaultServer, "base URL of the recommendation server")
	flags.StringVar(&opts.dataDescription, "data", "", "description of the data to chart")
	flags.StringVar(&opts.objective, "objective", "", "what the chart should convey")
	flags.BoolVar(&opts.showGuide, "guide", false, "print the chart selection guide and exit")
	flags.BoolVar(&opts.verbose, "v", false, "log diagnostics to stderr")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// run executes one invocation and returns the process exit code.
func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout, stderr io.Writer,
	getenv func(string) string,
) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showGuide {
		fmt.Fprintln(stdout, guide.Text())
		return 0
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	c, err := client.New(opts.server, client.WithLogger(log))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	controller := session.NewController(session.NewCredentialSlot(""), c, log)

	// Field checks come before the credential prompt so a bad invocation
	// never asks for a secret.
	if opts.dataDescription == "" || opts.objective == "" {
		fmt.Fprintf(stderr, "error: %v\n", session.ErrMissingInput)
		return 1
	}

	credential, err := readCredential(getenv, stdin, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if err := controller.SubmitCredential(credential); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	rec, err := controller.Submit(ctx, opts.dataDescription, opts.objective)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Chart type: %s\n", rec.ChartType)
	fmt.Fprintf(stdout, "Reasoning: %s\n", rec.Reasoning)
	return 0
}

// readCredential takes the credential from the environment, or the first
// line of stdin when the variable is unset.
func readCredential(getenv func(string) string, stdin io.Reader, stderr io.Writer) (string, error) {
	if v := getenv(credentialEnv); v != "" {
		return v, nil
	}

	fmt.Fprintf(stderr, "Enter %s: ", session.DefaultCredentialName)
	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
