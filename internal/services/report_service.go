package services

import (
	"math"

	"github.com/dmatosb/horabank/internal/models"
)

type ReportCollaboratorRepository interface {
	List() ([]models.Collaborator, error)
	ListBySupervisor(supervisor string) ([]models.Collaborator, error)
}

type ReportTimeEntryRepository interface {
	ListByCollaborator(collaboratorID uint) ([]models.TimeEntry, error)
}

// ReportService is read-only aggregation over collaborators and their
// ledgers for the admin dashboard and per-leader reports.
type ReportService struct {
	collaborators ReportCollaboratorRepository
	entries       ReportTimeEntryRepository
}

func NewReportService(collaborators ReportCollaboratorRepository, entries ReportTimeEntryRepository) *ReportService {
	return &ReportService{collaborators: collaborators, entries: entries}
}

type BalanceLine struct {
	FullName    string  `json:"full_name"`
	BadgeNumber string  `json:"badge_number"`
	Balance     float64 `json:"balance"`
}

type DashboardSummary struct {
	TotalPositiveHours    float64       `json:"total_positive_hours"`
	TotalNegativeHours    float64       `json:"total_negative_hours"`
	PositiveCollaborators []BalanceLine `json:"positive_collaborators"`
	NegativeCollaborators []BalanceLine `json:"negative_collaborators"`
}

type CollaboratorReport struct {
	models.Collaborator
	History []models.TimeEntry `json:"history"`
}

type LeaderReport struct {
	LeaderName         string               `json:"leader_name"`
	TotalPositiveHours float64              `json:"total_positive_hours"`
	TotalNegativeHours float64              `json:"total_negative_hours"`
	Collaborators      []CollaboratorReport `json:"collaborators"`
}

// Dashboard sums positive balances and the absolute value of negative
// balances across every collaborator, listing each side.
func (service *ReportService) Dashboard() (DashboardSummary, error) {
	collaborators, err := service.collaborators.List()
	if err != nil {
		return DashboardSummary{}, err
	}

	summary := DashboardSummary{
		PositiveCollaborators: make([]BalanceLine, 0),
		NegativeCollaborators: make([]BalanceLine, 0),
	}
	for _, collaborator := range collaborators {
		line := BalanceLine{
			FullName:    collaborator.FullName,
			BadgeNumber: collaborator.BadgeNumber,
			Balance:     collaborator.Balance,
		}
		switch {
		case collaborator.Balance > 0:
			summary.TotalPositiveHours += collaborator.Balance
			summary.PositiveCollaborators = append(summary.PositiveCollaborators, line)
		case collaborator.Balance < 0:
			summary.TotalNegativeHours += math.Abs(collaborator.Balance)
			summary.NegativeCollaborators = append(summary.NegativeCollaborators, line)
		}
	}
	return summary, nil
}

// Leader builds the per-supervisor report: every collaborator under
// the leader with their chronological ledger, plus team totals.
func (service *ReportService) Leader(leaderName string) (LeaderReport, error) {
	collaborators, err := service.collaborators.ListBySupervisor(leaderName)
	if err != nil {
		return LeaderReport{}, err
	}

	report := LeaderReport{
		LeaderName:    leaderName,
		Collaborators: make([]CollaboratorReport, 0, len(collaborators)),
	}
	for _, collaborator := range collaborators {
		history, err := service.entries.ListByCollaborator(collaborator.ID)
		if err != nil {
			return LeaderReport{}, err
		}
		report.Collaborators = append(report.Collaborators, CollaboratorReport{
			Collaborator: collaborator,
			History:      history,
		})

		switch {
		case collaborator.Balance > 0:
			report.TotalPositiveHours += collaborator.Balance
		case collaborator.Balance < 0:
			report.TotalNegativeHours += math.Abs(collaborator.Balance)
		}
	}
	return report, nil
}
