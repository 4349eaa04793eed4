package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/discern/internal/catalog"
	"github.com/unbound-force/discern/internal/config"
	"github.com/unbound-force/discern/internal/decision"
	"github.com/unbound-force/discern/internal/engine"
	"github.com/unbound-force/discern/internal/report"
	"github.com/unbound-force/discern/internal/schema"
	"github.com/unbound-force/discern/internal/taxonomy"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "discern",
		Short: "Discern classifies text utterances into intents, deterministically",
		Long: `Discern classifies natural-language utterances into intents
using weighted keyword and phrase signals. Classification is
pure and deterministic: the same text and hints always produce
the same result.`,
		Version: version,
	}

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newPatternsCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// classifyParams holds the parsed flags for the classify command.
type classifyParams struct {
	text          string
	format        string
	expect        []string
	exclude       []string
	minConfidence float64
	maxIntents    int
	domain        string
	patternsFile  string
	configFile    string
	store         string
	redisAddr     string
	executionRef  string
	interactive   bool
	stdin         io.Reader
	stdout        io.Writer
	stderr        io.Writer
}

// runClassify is the extracted, testable body of the classify command.
func runClassify(ctx context.Context, p classifyParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}
	if p.store != "none" && p.store != "memory" && p.store != "redis" {
		return fmt.Errorf("invalid store %q: must be 'none', 'memory', or 'redis'", p.store)
	}

	text := p.text
	if text == "-" {
		raw, err := io.ReadAll(p.stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(raw)
	}

	cat, cfg, err := loadClassifierInputs(p.patternsFile, p.configFile)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, p.store, p.redisAddr)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	opts := []engine.Option{
		engine.WithConfig(cfg),
		engine.WithTelemetry(decision.NewLogRecorder(logger)),
		engine.WithAgentVersion(version),
	}
	if store != nil {
		opts = append(opts, engine.WithStore(store))
	}
	eng := engine.New(cat, opts...)

	req := engine.Request{
		Text:         text,
		Hints:        buildHints(p),
		ExecutionRef: p.executionRef,
	}
	if p.domain != "" {
		req.Context = &taxonomy.RequestContext{Domain: p.domain}
	}

	result, err := eng.Classify(ctx, req)
	if err != nil {
		var perr *decision.PersistenceError
		if !errors.As(err, &perr) {
			return err
		}
		// The classification itself succeeded; only the event write
		// failed. Report it and keep going.
		logger.Warn("decision event not persisted", "err", perr)
	}

	if p.interactive {
		return runInteractiveResult(result)
	}

	switch p.format {
	case "json":
		return report.WriteJSON(p.stdout, result)
	default:
		return report.WriteText(p.stdout, result)
	}
}

// loadClassifierInputs resolves the pattern catalog and scoring
// configuration, falling back to built-in defaults when no file is
// given.
func loadClassifierInputs(patternsFile, configFile string) (*catalog.Catalog, *config.Config, error) {
	cat := catalog.Default()
	if patternsFile != "" {
		loaded, err := catalog.Load(patternsFile)
		if err != nil {
			return nil, nil, err
		}
		cat = loaded
	}

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	return cat, cfg, nil
}

// openStore builds the decision event store named by kind. A nil
// store means events are not persisted.
func openStore(ctx context.Context, kind, redisAddr string) (decision.Store, error) {
	switch kind {
	case "memory":
		return decision.NewMemoryStore(), nil
	case "redis":
		return decision.NewRedisStore(ctx, decision.RedisConfig{Addr: redisAddr})
	default:
		return nil, nil
	}
}

// buildHints converts flag values into classification hints. Returns
// nil when no hint flag was set so the engine treats the request as
// unhinted.
func buildHints(p classifyParams) *taxonomy.Hints {
	if len(p.expect) == 0 && len(p.exclude) == 0 && p.minConfidence == 0 && p.maxIntents == 0 {
		return nil
	}
	return &taxonomy.Hints{
		ExpectedIntents: toIntentTypes(p.expect),
		ExcludedIntents: toIntentTypes(p.exclude),
		MinConfidence:   p.minConfidence,
		MaxIntents:      p.maxIntents,
	}
}

func toIntentTypes(names []string) []taxonomy.IntentType {
	if len(names) == 0 {
		return nil
	}
	out := make([]taxonomy.IntentType, 0, len(names))
	for _, n := range names {
		out = append(out, taxonomy.IntentType(strings.ToUpper(strings.TrimSpace(n))))
	}
	return out
}

func newClassifyCmd() *cobra.Command {
	var (
		format        string
		expect        []string
		exclude       []string
		minConfidence float64
		maxIntents    int
		domain        string
		patternsFile  string
		configFile    string
		store         string
		redisAddr     string
		executionRef  string
		interactive   bool
	)

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify an utterance into intents",
		Long: `Classify a text utterance and report the primary intent,
secondary intents, multi-intent structure, and ambiguity
assessment. Pass '-' to read the utterance from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd.Context(), classifyParams{
				text:          args[0],
				format:        format,
				expect:        expect,
				exclude:       exclude,
				minConfidence: minConfidence,
				maxIntents:    maxIntents,
				domain:        domain,
				patternsFile:  patternsFile,
				configFile:    configFile,
				store:         store,
				redisAddr:     redisAddr,
				executionRef:  executionRef,
				interactive:   interactive,
				stdin:         os.Stdin,
				stdout:        os.Stdout,
				stderr:        os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().StringSliceVar(&expect, "expect", nil,
		"intent types to boost (may be repeated)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil,
		"intent types to drop (may be repeated)")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0,
		"drop candidates below this confidence (0 = no floor)")
	cmd.Flags().IntVar(&maxIntents, "max-intents", 0,
		"keep at most this many candidates (0 = no cap)")
	cmd.Flags().StringVar(&domain, "domain", "",
		"caller domain recorded with the request context")
	cmd.Flags().StringVar(&patternsFile, "patterns", "",
		"YAML pattern catalog (default: built-in catalog)")
	cmd.Flags().StringVar(&configFile, "config", "",
		"YAML scoring configuration (default: built-in constants)")
	cmd.Flags().StringVar(&store, "store", "none",
		"decision event store: none, memory, or redis")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379",
		"redis address for --store=redis")
	cmd.Flags().StringVar(&executionRef, "execution-ref", "",
		"caller execution reference recorded on the decision event")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing the result")

	return cmd
}

// patternsParams holds the parsed flags for the patterns command.
type patternsParams struct {
	patternsFile string
	stdout       io.Writer
}

// runPatterns is the extracted, testable body of the patterns command.
func runPatterns(p patternsParams) error {
	cat := catalog.Default()
	if p.patternsFile != "" {
		loaded, err := catalog.Load(p.patternsFile)
		if err != nil {
			return err
		}
		cat = loaded
	}
	return report.WritePatterns(p.stdout, cat)
}

func newPatternsCmd() *cobra.Command {
	var patternsFile string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the active pattern catalog",
		Long: `List every intent pattern the classifier matches against,
with its keywords, phrases, and base weight.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatterns(patternsParams{
				patternsFile: patternsFile,
				stdout:       os.Stdout,
			})
		},
	}

	cmd.Flags().StringVar(&patternsFile, "patterns", "",
		"YAML pattern catalog (default: built-in catalog)")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [input|result]",
		Short: "Print the JSON Schema for requests or results",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of classification requests ('input') or of
classify --format=json output ('result').`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"input", "result"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "input":
				_, err := fmt.Fprintln(cmd.OutOrStdout(), schema.InputSchema)
				return err
			case "result":
				_, err := fmt.Fprintln(cmd.OutOrStdout(), schema.ResultSchema)
				return err
			default:
				return fmt.Errorf("unknown schema %q: must be 'input' or 'result'", args[0])
			}
		},
	}
	return cmd
}
