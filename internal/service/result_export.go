package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// default sheet of a new workbook
const resultsSheet = "Sheet1"

var resultsHeader = []interface{}{
	"Exam", "Registration Number", "Candidate Name", "Phone",
	"Total Questions", "Correct", "Skipped", "Wrong", "Computed At",
}

// ExportResults renders the stored results as an xlsx workbook, one row per
// candidate result.
func (s *resultService) ExportResults(ctx context.Context) ([]byte, error) {
	groups, err := s.GetAllResults(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow(resultsSheet, "A1", &resultsHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, g := range groups {
		for _, c := range g.Candidates {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, err
			}
			values := []interface{}{
				g.ExamID, c.RegistrationNumber, c.CandidateName, c.Phone,
				c.TotalQuestions, c.CorrectAnswers, c.SkippedQuestions, c.WrongAnswers,
				c.Timestamp.Format(time.RFC3339),
			}
			if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error().Err(err).Msg("Failed to render results workbook")
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	log.Info().Int("rows", row-2).Msg("Results workbook exported")
	return buf.Bytes(), nil
}
