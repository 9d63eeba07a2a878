package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"career-scout/internal/ai/gemini"
	"career-scout/internal/jobs"
	"career-scout/internal/logger"
	"career-scout/internal/parsing"
	"career-scout/internal/search"
	"career-scout/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptDone            = "Done"
	PromptReportByCompany = "Report by companies"
	PromptJobsToFile      = "Dump jobs to file"
)

var errExit = errors.New("exit requested")

var resultPrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptDone, PromptReportByCompany, PromptJobsToFile},
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search LinkedIn job postings and print structured records",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runSearch(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("location", "l", "", "city, region or country to search in")
	searchCmd.Flags().String("job-type", "", "full-time, part-time, contract, internship or freelance")
	searchCmd.Flags().String("experience-level", "", "entry, mid, senior, lead or executive")
	searchCmd.Flags().StringP("company", "c", "", "hiring company name")
	searchCmd.Flags().Bool("exact-match-company", false, "quote the company name in the query")
	searchCmd.Flags().String("industry", "", "industry sector")
	searchCmd.Flags().String("date-range", "", "posting recency: past-day, past-week, past-month, past-2-months, past-3-months, past-6-months or past-year")
	searchCmd.Flags().String("salary-range", "", "salary expectation, free text")
	searchCmd.Flags().String("work-arrangement", "", "remote, hybrid or on-site")
	searchCmd.Flags().String("job-function", "", "job function, e.g. engineering or marketing")
	searchCmd.Flags().IntP("num-results", "n", 10, "number of job records to return")
	searchCmd.Flags().StringP("method", "m", parsing.ManualName, "parsing method: manual or llm")
	searchCmd.Flags().BoolP("auto-approve", "y", false, "print the result and exit without the action prompt")
}

func runSearch(cmd *cobra.Command, keyword string) {
	ctx := context.Background()

	log := mustLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	log.Info("starting the career-scout", zap.String("version", version))

	orchestrator, err := newOrchestrator(ctx, config, log)
	if err != nil {
		log.Fatal("building the search pipeline", zap.Error(err))
	}

	filters := filtersFromFlags(cmd, keyword)

	result := orchestrator.Search(ctx, filters, flagString(cmd, "method"))

	finishWithResult(cmd, log, result)
}

// finishWithResult prints the result as JSON and, unless auto-approve is
// set, runs the interactive action loop over the found records.
func finishWithResult(cmd *cobra.Command, log *zap.Logger, result *jobs.Result) {
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal("encoding the result", zap.Error(err))
	}
	fmt.Println(string(pretty))

	if !result.Success {
		log.Fatal("search failed", zap.String("error", result.Error))
	}

	if flagBool(cmd, "auto-approve") || result.TotalFound == 0 {
		return
	}

	records := &jobs.Records{Items: result.Jobs}
	for {
		_, action, err := resultPrompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, log, records); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, log *zap.Logger, records *jobs.Records) error {
	switch action {
	case PromptDone:
		return errExit
	case PromptReportByCompany:
		pretty, _ := json.MarshalIndent(records.ReportByCompany(), "", "  ")
		log.Info(string(pretty), zap.Int("jobs count", records.Len()))
		return nil
	case PromptJobsToFile:
		filename, err := records.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		log.Info("dumping result to file", zap.String("filename", filename))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// newOrchestrator wires the search provider and, when configured, the
// model-based extraction strategy.
func newOrchestrator(ctx context.Context, config *Config, log *zap.Logger) (*search.Orchestrator, error) {
	apiKey, err := secrets.Load(secrets.Source{
		Name:  "google api key",
		Value: config.Search.APIKey,
		File:  config.Search.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set GOOGLE_API_KEY or search.api-key-file)", err)
	}

	engineID := strings.TrimSpace(config.Search.EngineID)
	if engineID == "" {
		return nil, errors.New("search engine id is not configured (set GOOGLE_CSE_ID or search.engine-id)")
	}

	provider, err := search.NewGoogleCSE(apiKey, engineID, log)
	if err != nil {
		return nil, err
	}

	var model parsing.Strategy
	if aiEnabled(config.AI) {
		generator, err := newGenerator(ctx, config.AI)
		if err != nil {
			return nil, err
		}
		model = gemini.NewJobExtractor(generator, log, maxLogLength(config.AI))
	}

	cfg := &search.Config{}
	if config.Search.DelayMs > 0 {
		cfg.Delay = time.Duration(config.Search.DelayMs) * time.Millisecond
	}

	return search.New(provider, model, cfg, log), nil
}

// newGenerator builds the Gemini client from the AI section of the config.
func newGenerator(ctx context.Context, cfg *AIConfig) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	var source secrets.Source
	source.Name = "gemini api key"
	if cfg.Gemini != nil {
		source.Value = cfg.Gemini.APIKey
		source.File = cfg.Gemini.APIKeyFile
	}

	apiKey, err := secrets.Load(source)
	if err != nil {
		return nil, fmt.Errorf("%w (set GEMINI_API_KEY or ai.gemini.api-key-file)", err)
	}

	model := ""
	if cfg.Gemini != nil {
		model = cfg.Gemini.Model
	}

	return gemini.NewGenerator(ctx, apiKey, model)
}

func aiEnabled(cfg *AIConfig) bool {
	return cfg != nil && cfg.Enabled
}

func maxLogLength(cfg *AIConfig) int {
	if cfg != nil && cfg.Gemini != nil {
		return cfg.Gemini.MaxLogLength
	}
	return 0
}

func filtersFromFlags(cmd *cobra.Command, keyword string) *jobs.FilterSet {
	return &jobs.FilterSet{
		Keyword:           keyword,
		Location:          flagString(cmd, "location"),
		JobType:           flagString(cmd, "job-type"),
		ExperienceLevel:   flagString(cmd, "experience-level"),
		Company:           flagString(cmd, "company"),
		ExactMatchCompany: flagBool(cmd, "exact-match-company"),
		Industry:          flagString(cmd, "industry"),
		DateRange:         flagString(cmd, "date-range"),
		SalaryRange:       flagString(cmd, "salary-range"),
		WorkArrangement:   flagString(cmd, "work-arrangement"),
		JobFunction:       flagString(cmd, "job-function"),
		NumResults:        flagInt(cmd, "num-results"),
	}
}

func mustLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func flagInt(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetInt(name)
	return v
}
