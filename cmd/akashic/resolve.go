package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
	"github.com/vladimiradmaev/akashic-rays/internal/services"
)

// narratorEnv holds the provider keys read when --narrate is set
type narratorEnv struct {
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	OpenAIAPIKey string        `env:"OPENAI_API_KEY"`
	Timeout      time.Duration `env:"NARRATOR_TIMEOUT" envDefault:"15s"`
}

type resolveOptions struct {
	profile domain.UserProfile
	preset  string
	format  string
	tab     string
	narrate bool
}

func newResolveCmd() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a profile into a reading",
		Example: `  akashic resolve --name "Carl Jung" --date 1875-07-26 --time 19:29 --place "Kesswil, Switzerland"
  akashic resolve --preset 3:0 --format yaml
  akashic resolve --name "Alice Bailey" --tab vehicles --narrate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.profile.Name, "name", "", "full name")
	f.StringVar(&opts.profile.BirthDate, "date", "", "birth date, free text")
	f.StringVar(&opts.profile.BirthTime, "time", "", "birth time, free text")
	f.StringVar(&opts.profile.BirthPlace, "place", "", "birth place, free text")
	f.StringVar(&opts.preset, "preset", "", "use a preset as <group>:<index> (see akashic presets)")
	f.StringVarP(&opts.format, "format", "f", formatText, "output format: text, json or yaml")
	f.StringVar(&opts.tab, "tab", "all", "text view: all, overview, origins, karmic or vehicles")
	f.BoolVar(&opts.narrate, "narrate", false, "ask Gemini/OpenAI for the synthesis paragraph")
	cmd.MarkFlagsMutuallyExclusive("name", "preset")

	return cmd
}

func runResolve(cmd *cobra.Command, opts resolveOptions) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}

	profile := opts.profile
	if opts.preset != "" {
		p, err := parsePreset(opts.preset)
		if err != nil {
			return err
		}
		profile = p
	}
	if opts.preset == "" && !profileFlagsSet(cmd) {
		profile = akashic.DefaultProfile()
	}

	var tabs []render.Tab
	if opts.tab == "all" {
		tabs = render.Tabs()
	} else {
		tab, ok := render.ParseTab(opts.tab)
		if !ok {
			return fmt.Errorf("unknown tab %q", opts.tab)
		}
		tabs = []render.Tab{tab}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	narrator, closeNarrator, err := cliNarrator(ctx, opts.narrate)
	if err != nil {
		return err
	}
	defer closeNarrator()

	svc := services.NewReadingService(akashic.NewResolver(), narrator)
	reading := svc.Resolve(ctx, profile)

	if opts.format != formatText {
		return writeStructured(cmd.OutOrStdout(), opts.format, reading.Result)
	}

	synthesis := ""
	if slices.Contains(tabs, render.TabVehicles) {
		synthesis = svc.Synthesize(ctx, reading.Result)
	}

	r := render.New(render.Plain)
	out := cmd.OutOrStdout()
	for i, tab := range tabs {
		if i > 0 {
			fmt.Fprintln(out, strings.Repeat("─", 40))
		}
		fmt.Fprintln(out, r.Tab(tab, reading.Result, synthesis))
	}
	return nil
}

// profileFlagsSet reports whether any profile field was given, even empty
func profileFlagsSet(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "date", "time", "place"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// cliNarrator returns nil when narration is off so the template is used
func cliNarrator(ctx context.Context, enabled bool) (domain.Narrator, func(), error) {
	noop := func() {}
	if !enabled {
		return nil, noop, nil
	}

	var cfg narratorEnv
	if err := env.Parse(&cfg); err != nil {
		return nil, noop, fmt.Errorf("parse env: %w", err)
	}
	n, err := services.NewNarratorService(ctx, services.NarratorConfig{
		GeminiAPIKey: cfg.GeminiAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		Timeout:      cfg.Timeout,
	})
	if err != nil {
		return nil, noop, err
	}
	return n, func() { _ = n.Close() }, nil
}

// parsePreset reads "<group>:<index>"
func parsePreset(s string) (domain.UserProfile, error) {
	groupPart, indexPart, found := strings.Cut(s, ":")
	group, groupErr := strconv.Atoi(groupPart)
	index, indexErr := strconv.Atoi(indexPart)
	if !found || groupErr != nil || indexErr != nil {
		return domain.UserProfile{}, fmt.Errorf("preset must look like <group>:<index>, got %q", s)
	}
	profile, ok := akashic.Preset(group, index)
	if !ok {
		return domain.UserProfile{}, fmt.Errorf("no preset %d:%d", group, index)
	}
	return profile, nil
}
