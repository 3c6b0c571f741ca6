package services

import (
	"context"
	"fmt"

	"gatehub/catalog"
	"gatehub/db"
	"gatehub/models"
	"gatehub/scoring"
	"gatehub/utils"
)

// ReportService assembles the single report payload consumed by both the
// interactive dashboard and the exportable report. Every read recomputes from
// a fresh input snapshot; nothing is cached between calls.
type ReportService struct {
	Engine  *scoring.Engine
	Catalog catalog.Catalog
}

var reportService *ReportService

// InitReportService wires the shared engine and gate catalogs
func InitReportService(engine *scoring.Engine, cat catalog.Catalog) {
	reportService = &ReportService{Engine: engine, Catalog: cat}
}

// GetReportService returns the initialized service
func GetReportService() *ReportService {
	return reportService
}

// CriticalIssue is the display shape of one blocking finding.
type CriticalIssue struct {
	CriterionCode string `json:"criterion_code"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Rating        string `json:"rating"`
	Finding       string `json:"finding,omitempty"`
	IsCritical    bool   `json:"is_critical"`
}

// DocumentInfo is the display shape of one uploaded document.
type DocumentInfo struct {
	Name      string `json:"name"`
	FileName  string `json:"file_name"`
	Type      string `json:"document_type,omitempty"`
	SizeLabel string `json:"size_label"`
	Extension string `json:"extension"`
}

// Report is the full readiness payload for one project.
type Report struct {
	Project         models.Project           `json:"project"`
	Result          scoring.ReadinessResult  `json:"result"`
	Cases           []scoring.CaseSummary    `json:"cases"`
	CriticalIssues  []CriticalIssue          `json:"critical_issues"`
	Recommendations []scoring.Recommendation `json:"recommendations"`
	Summary         string                   `json:"executive_summary"`
	Documents       []DocumentInfo           `json:"documents"`

	// Coverage is nil when no catalog exists for the project's gate, which
	// is distinct from zero coverage.
	Coverage *scoring.CoverageResult `json:"coverage,omitempty"`
}

// BuildReport fetches the project's stored inputs and rolls them up.
func (s *ReportService) BuildReport(ctx context.Context, projectID string) (*Report, error) {
	project, err := db.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	assessments, err := db.GetProjectAssessments(ctx, projectID)
	if err != nil {
		return nil, err
	}
	documents, err := db.GetProjectDocuments(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.Assemble(*project, assessments, documents), nil
}

// Assemble computes a report from already-fetched inputs. Split out from
// BuildReport so the export path and tests can feed snapshots directly.
func (s *ReportService) Assemble(project models.Project, assessments []models.CriterionAssessment, documents []models.ProjectDocument) *Report {
	result := s.Engine.Aggregate(assessments)
	issues := scoring.CriticalIssues(assessments)

	report := &Report{
		Project:         project,
		Result:          result,
		Cases:           s.Engine.AggregateByCase(assessments),
		CriticalIssues:  criticalIssueViews(issues, s.Engine.Config.MaxCriticalIssues),
		Recommendations: s.Engine.GenerateRecommendations(issues),
		Summary:         s.Engine.ExecutiveSummary(project.Name, project.GateName, assessments, result),
		Documents:       documentViews(documents),
	}

	if cat, ok := s.Catalog.ForGate(project.Gate); ok {
		if coverage, ok := scoring.MatchCatalog(cat, documents); ok {
			report.Coverage = &coverage
		}
	}
	return report
}

// GapsForCriterion merges one criterion's evidence requirements with its
// stored assessment payload and extracts the path-to-green gap list.
func (s *ReportService) GapsForCriterion(ctx context.Context, projectID string, criterionID int) ([]scoring.Gap, error) {
	assessments, err := db.GetProjectAssessments(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var assessment *models.CriterionAssessment
	for i := range assessments {
		if assessments[i].CriterionID == criterionID {
			assessment = &assessments[i]
			break
		}
	}
	if assessment == nil {
		return nil, fmt.Errorf("no assessment for criterion %d on project %s", criterionID, projectID)
	}

	reqs, err := db.GetEvidenceRequirements(ctx, criterionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requirements for criterion %d: %w", criterionID, err)
	}
	return scoring.PathToGreen(assessment.Rating, reqs, assessment.EvidenceAssessment), nil
}

func criticalIssueViews(issues []models.CriterionAssessment, max int) []CriticalIssue {
	if len(issues) > max {
		issues = issues[:max]
	}
	views := make([]CriticalIssue, 0, len(issues))
	for _, issue := range issues {
		views = append(views, CriticalIssue{
			CriterionCode: issue.CriterionCode,
			Title:         issue.Title,
			Category:      issue.Category,
			Rating:        scoring.NormalizeRating(issue.Rating),
			Finding:       issue.Finding,
			IsCritical:    issue.IsCritical,
		})
	}
	return views
}

func documentViews(documents []models.ProjectDocument) []DocumentInfo {
	views := make([]DocumentInfo, 0, len(documents))
	for _, doc := range documents {
		views = append(views, DocumentInfo{
			Name:      doc.Name,
			FileName:  doc.FileName,
			Type:      doc.DocumentType,
			SizeLabel: utils.FormatFileSize(doc.FileSize),
			Extension: utils.FileExtension(doc.FileName),
		})
	}
	return views
}
