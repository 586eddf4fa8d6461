package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/database"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/logger"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/lshigami/examadmin/internal/service"
	"github.com/lshigami/examadmin/internal/store/docstore"
	"github.com/lshigami/examadmin/internal/store/keytree"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
)

const usage = `usage: examctl <command> [flags]

commands:
  results            show stored results (-compute recomputes today's exam first)
  export             write stored results to an xlsx file (-o path)
  purge-candidates   delete every candidate and their answers`

type services struct {
	results    service.ResultService
	candidates service.CandidateService
}

func main() {
	logger.Init()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	svc, err := build()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	switch os.Args[1] {
	case "results":
		fs := flag.NewFlagSet("results", flag.ExitOnError)
		compute := fs.Bool("compute", false, "recompute today's exam results before listing")
		_ = fs.Parse(os.Args[2:])
		err = showResults(ctx, svc, *compute)
	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		out := fs.String("o", "exam-results.xlsx", "output file")
		_ = fs.Parse(os.Args[2:])
		err = exportResults(ctx, svc, *out)
	case "purge-candidates":
		err = purgeCandidates(ctx, svc)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func build() (*services, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger.SetLevel(cfg.LogLevel)

	db, err := database.NewDatabase(cfg)
	if err != nil {
		return nil, err
	}
	docs, tree := docstore.New(db), keytree.New(db)
	if err := docs.AutoMigrate(); err != nil {
		return nil, err
	}
	if err := tree.AutoMigrate(); err != nil {
		return nil, err
	}

	examRepo := repository.NewExamRepository(docs, cfg)
	questionRepo := repository.NewQuestionRepository(docs, cfg)
	candidateRepo := repository.NewCandidateRepository(docs, cfg)
	resultRepo := repository.NewResultRepository(tree)

	return &services{
		results:    service.NewResultService(examRepo, questionRepo, candidateRepo, resultRepo),
		candidates: service.NewCandidateService(candidateRepo, repository.NewMaintenanceRepository(tree)),
	}, nil
}

func showResults(ctx context.Context, svc *services, compute bool) error {
	if compute {
		resp, err := svc.results.ComputeTodayResults(ctx)
		if err != nil {
			return err
		}
		color.Green("Computed %d results for %s (%s %s-%s)", len(resp.Results),
			resp.ExamDetails.ExamID, resp.ExamDetails.Date, resp.ExamDetails.StartTime, resp.ExamDetails.EndTime)
	}

	groups, err := svc.results.GetAllResults(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		color.Yellow("No results stored.")
		return nil
	}
	for _, g := range groups {
		printGroup(g)
	}
	return nil
}

func printGroup(g dto.ExamResultGroup) {
	color.Cyan("\n=== %s: %d candidates, average correct %.2f ===", g.ExamID, g.TotalCandidates, g.AverageCorrect)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Reg Number", "Name", "Phone", "Total", "Correct", "Skipped", "Wrong"})
	for _, c := range g.Candidates {
		table.Append([]string{
			c.RegistrationNumber,
			c.CandidateName,
			c.Phone,
			strconv.Itoa(c.TotalQuestions),
			strconv.Itoa(c.CorrectAnswers),
			strconv.Itoa(c.SkippedQuestions),
			strconv.Itoa(c.WrongAnswers),
		})
	}
	table.Render()
}

func exportResults(ctx context.Context, svc *services, path string) error {
	data, err := svc.results.ExportResults(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	color.Green("Results written to %s", path)
	return nil
}

func purgeCandidates(ctx context.Context, svc *services) error {
	resp, err := svc.candidates.PurgeAll(ctx)
	if err != nil {
		return err
	}
	if resp.Resumed {
		color.Yellow("Resumed an unfinished purge.")
	}
	color.Green("Deleted %d candidates (%d documents) from %s", resp.DeletedCandidates, resp.DeletedDocuments, resp.Collection)
	return nil
}
