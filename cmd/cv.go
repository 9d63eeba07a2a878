package cmd

import (
	"context"

	"career-scout/internal/ai"
	"career-scout/internal/ai/gemini"
	"career-scout/internal/ingest"
	"career-scout/internal/resume"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cvCmd = &cobra.Command{
	Use:   "cv <file>",
	Short: "Derive a job search from a resume document and run it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCV(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(cvCmd)

	cvCmd.Flags().StringP("location", "l", "", "override the location from the resume")
	cvCmd.Flags().String("job-type", "", "full-time, part-time, contract, internship or freelance")
	cvCmd.Flags().String("work-arrangement", "", "remote, hybrid or on-site")
	cvCmd.Flags().IntP("num-results", "n", 10, "number of job records to return")
	cvCmd.Flags().Bool("include-entry-level", false, "search entry-level roles regardless of seniority")
	cvCmd.Flags().StringP("method", "m", "llm", "parsing method: manual or llm")
	cvCmd.Flags().BoolP("auto-approve", "y", false, "print the result and exit without the action prompt")
}

// runCV turns a resume document into a structured profile, derives search
// filters from it and runs the same pipeline as the search command.
func runCV(cmd *cobra.Command, path string) {
	ctx := context.Background()

	log := mustLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	log.Info("starting the career-scout", zap.String("version", version))

	if !aiEnabled(config.AI) {
		log.Fatal("resume extraction needs the model provider",
			zap.String("hint", "enable the ai section in the configuration file"),
		)
	}

	text, err := ingest.Text(path)
	if err != nil {
		log.Fatal("reading the resume", zap.Error(err))
	}

	generator, err := newGenerator(ctx, config.AI)
	if err != nil {
		log.Fatal("building the model provider", zap.Error(err))
	}

	var extractor ai.ResumeExtractor = gemini.NewResumeExtractor(generator, log, maxLogLength(config.AI))

	profile, err := extractor.Extract(ctx, text)
	if err != nil {
		log.Fatal("extracting the resume", zap.Error(err))
	}

	log.Info("extracted candidate profile",
		zap.String("name", profile.FullName),
		zap.String("title", profile.ProfessionalTitle),
		zap.Int("experiences", len(profile.Experiences)),
	)

	filters := resume.DeriveFilters(profile, resume.Overrides{
		Location:          flagString(cmd, "location"),
		JobType:           flagString(cmd, "job-type"),
		WorkArrangement:   flagString(cmd, "work-arrangement"),
		NumResults:        flagInt(cmd, "num-results"),
		IncludeEntryLevel: flagBool(cmd, "include-entry-level"),
	})

	log.Info("derived search filters",
		zap.String("keyword", filters.Keyword),
		zap.String("location", filters.Location),
		zap.String("experience_level", filters.ExperienceLevel),
	)

	orchestrator, err := newOrchestrator(ctx, config, log)
	if err != nil {
		log.Fatal("building the search pipeline", zap.Error(err))
	}

	result := orchestrator.Search(ctx, filters, flagString(cmd, "method"))

	finishWithResult(cmd, log, result)
}
