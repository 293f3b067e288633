// Package main provides the CLI entrypoint for AutoOffer.
//
// AutoOffer assists with filling out web forms: recognized screen text is
// matched against a stored resume template and the matching value is
// proposed ready to paste. The CLI exposes the matching engine and the
// template store; screen capture, OCR and the real clipboard are external
// collaborators.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/666fy666/AutoOffer/internal/app"
	"github.com/666fy666/AutoOffer/internal/config"
	"github.com/666fy666/AutoOffer/internal/match"
	"github.com/666fy666/AutoOffer/internal/template"
)

const usage = `Usage: autooffer [-config FILE] [-template FILE] COMMAND [ARGS]

Commands:
  match TEXT           rank template fields for recognized text
  search QUERY         fuzzy-search field labels
  fields               list all fields
  get LABEL            print the value of a field
  set LABEL VALUE      set a field value (adds the field if missing)
  add LABEL VALUE      add a new field
  del LABEL            delete a field
  rename OLD NEW VALUE rename a field and set its value
`

func main() {
	configPath := flag.String("config", "config.yaml", "config file path")
	templatePath := flag.String("template", "", "override the template file path")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	err := run(*configPath, *templatePath, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(configPath, templatePath string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command\n\n%s", usage)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if templatePath != "" {
		cfg.TemplatePath = templatePath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	store, err := template.Open(cfg.TemplatePath)
	if err != nil {
		return err
	}

	matcher := match.NewMatcher(cfg.MatchThreshold)
	suggester := app.NewSuggester(store, matcher, stdoutCopier{}, logger, cfg.SearchThreshold)

	cmd, args := args[0], args[1:]

	switch cmd {
	case "match":
		return runMatch(suggester, args)
	case "search":
		return runSearch(suggester, args)
	case "fields":
		return runFields(store)
	case "get":
		return runGet(store, args)
	case "set":
		return runMutation(args, 2, func() error { return store.Set(args[0], args[1]) })
	case "add":
		return runMutation(args, 2, func() error { return store.Add(args[0], args[1]) })
	case "del":
		return runMutation(args, 1, func() error { return store.Delete(args[0]) })
	case "rename":
		return runMutation(args, 3, func() error { return store.Rename(args[0], args[1], args[2]) })
	default:
		return fmt.Errorf("unknown command %q\n\n%s", cmd, usage)
	}
}

// stdoutCopier stands in for the system clipboard, which is out of scope
// for the core: the value is printed for the caller to pick up.
type stdoutCopier struct{}

func (stdoutCopier) Copy(text string) error {
	_, err := fmt.Println(text)

	return err
}

func runMatch(suggester *app.Suggester, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("match needs exactly one TEXT argument")
	}

	sug, err := suggester.Suggest(args[0])
	if err != nil {
		return err
	}

	switch sug.Outcome {
	case app.OutcomeNone:
		fmt.Fprintln(os.Stderr, "no match")
	case app.OutcomeCopied:
		best := sug.Candidates.Best()
		fmt.Fprintf(os.Stderr, "matched %s (%d%%)\n", best.Label, best.Percent())
	case app.OutcomeChoose:
		fmt.Fprintln(os.Stderr, "multiple matches:")

		for i, c := range sug.Candidates {
			fmt.Fprintf(os.Stderr, "  %d. %s (%d%%, %s)\n", i+1, c.Label, c.Percent(), c.Kind)
		}
	}

	return nil
}

func runSearch(suggester *app.Suggester, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("search needs exactly one QUERY argument")
	}

	matches := suggester.SearchLabels(args[0])
	if len(matches) == 0 {
		fmt.Fprintln(os.Stderr, "no labels found")

		return nil
	}

	for _, m := range matches {
		fmt.Printf("%s\t%.0f%%\n", m.Label, m.Score*100)
	}

	return nil
}

func runFields(store *template.Store) error {
	for _, f := range store.Fields() {
		if f.Value == "" {
			fmt.Printf("%s\t(empty)\n", f.Label)

			continue
		}

		fmt.Printf("%s\t%s\n", f.Label, f.Value)
	}

	return nil
}

func runGet(store *template.Store, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("get needs exactly one LABEL argument")
	}

	value, ok := store.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", template.ErrFieldNotFound, args[0])
	}

	fmt.Println(value)

	return nil
}

func runMutation(args []string, want int, mutate func() error) error {
	if len(args) != want {
		return fmt.Errorf("expected %d arguments, got %d\n\n%s", want, len(args), usage)
	}

	return mutate()
}
