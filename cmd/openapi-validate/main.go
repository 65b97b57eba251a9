// Command openapi-validate validates a captured HTTP request against an
// OpenAPI operation definition.
//
// The operation is given as a YAML file holding the operation object
// (parameters and requestBody, as they appear under a path item). The
// request is given as a JSON file with optional "body", "headers",
// "params", and "query" members.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	openapi "github.com/klangenk/open-api"
	"github.com/klangenk/open-api/requestvalidator"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("openapi-validate v%s\n", openapi.Version())
	case "help", "-h", "--help":
		printUsage()
	default:
		code, err := run(os.Args[1:])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(code)
	}
}

// requestFile is the on-disk shape of a captured request.
type requestFile struct {
	Body    any            `json:"body"`
	Headers map[string]any `json:"headers"`
	Params  map[string]any `json:"params"`
	Query   map[string]any `json:"query"`
}

type runFlags struct {
	operation string
	format    string
	quiet     bool
}

func setupFlags() (*flag.FlagSet, *runFlags) {
	fs := flag.NewFlagSet("openapi-validate", flag.ContinueOnError)
	flags := &runFlags{}

	fs.StringVar(&flags.operation, "operation", "", "path to the operation YAML file (required)")
	fs.StringVar(&flags.format, "format", "text", "output format: text or json")
	fs.BoolVar(&flags.quiet, "q", false, "quiet mode: no output, result in the exit code only")
	fs.BoolVar(&flags.quiet, "quiet", false, "quiet mode: no output, result in the exit code only")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: openapi-validate --operation <operation.yaml> <request.json>\n\n")
		_, _ = fmt.Fprintf(output, "Validate a captured HTTP request against an OpenAPI operation.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  openapi-validate --operation create-pet.yaml request.json\n")
		_, _ = fmt.Fprintf(output, "  openapi-validate --operation create-pet.yaml --format json request.json\n")
		_, _ = fmt.Fprintf(output, "\nExit Codes:\n")
		_, _ = fmt.Fprintf(output, "  0    Request is valid\n")
		_, _ = fmt.Fprintf(output, "  1    Usage or input error\n")
		_, _ = fmt.Fprintf(output, "  2    Request failed validation\n")
	}

	return fs, flags
}

func run(args []string) (int, error) {
	fs, flags := setupFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, nil
		}
		return 1, err
	}
	if flags.operation == "" || fs.NArg() != 1 {
		fs.Usage()
		return 1, fmt.Errorf("an --operation file and exactly one request file are required")
	}
	if flags.format != "text" && flags.format != "json" {
		return 1, fmt.Errorf("unknown format %q", flags.format)
	}

	opData, err := os.ReadFile(flags.operation)
	if err != nil {
		return 1, fmt.Errorf("reading operation file: %w", err)
	}
	reqData, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return 1, fmt.Errorf("reading request file: %w", err)
	}

	var captured requestFile
	if err := json.Unmarshal(reqData, &captured); err != nil {
		return 1, fmt.Errorf("decoding request file: %w", err)
	}

	v, err := requestvalidator.New(requestvalidator.WithOperationYAML(opData))
	if err != nil {
		return 1, fmt.Errorf("building validator: %w", err)
	}

	result := v.Validate(&requestvalidator.Request{
		Body:    captured.Body,
		Headers: captured.Headers,
		Params:  captured.Params,
		Query:   captured.Query,
	})
	if result == nil {
		if !flags.quiet && flags.format == "text" {
			fmt.Println("Request is valid")
		}
		if !flags.quiet && flags.format == "json" {
			fmt.Println(`{"valid":true}`)
		}
		return 0, nil
	}

	if !flags.quiet {
		if err := printResult(result, flags.format); err != nil {
			return 1, err
		}
	}
	return 2, nil
}

func printResult(result *requestvalidator.Result, format string) error {
	if format == "json" {
		out, err := json.MarshalIndent(struct {
			Valid  bool                               `json:"valid"`
			Status int                                `json:"status"`
			Errors []requestvalidator.ValidationError `json:"errors"`
		}{false, result.Status, result.Errors}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Request failed validation (status %d):\n", result.Status)
	for _, e := range result.Errors {
		location := e.Location
		if location == "" {
			location = "request"
		}
		if e.Path != "" {
			fmt.Printf("  [%s] %s: %s\n", location, e.Path, e.Message)
			continue
		}
		fmt.Printf("  [%s] %s\n", location, e.Message)
	}
	return nil
}

func printUsage() {
	fmt.Println("openapi-validate - validate HTTP requests against OpenAPI operations")
	fmt.Println()
	fs, _ := setupFlags()
	fs.Usage()
}
