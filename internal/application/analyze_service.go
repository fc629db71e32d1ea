package application

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/scoring"
)

// AnalyzeService orchestrates the analysis pipeline:
// load source → compute metrics → score categories → assemble report.
type AnalyzeService struct {
	loader       domain.SourceLoader
	configLoader domain.ConfigLoader
	gitInfo      domain.GitInfo
	history      domain.ScoreHistory
}

func NewAnalyzeService(
	loader domain.SourceLoader,
	configLoader domain.ConfigLoader,
	gitInfo domain.GitInfo,
	history domain.ScoreHistory,
) *AnalyzeService {
	return &AnalyzeService{
		loader:       loader,
		configLoader: configLoader,
		gitInfo:      gitInfo,
		history:      history,
	}
}

// AnalyzeSource runs the deterministic core on an in-memory unit with
// the given config. Never fails: malformed or empty input degrades to
// the documented baseline results.
func (s *AnalyzeService) AnalyzeSource(unit domain.SourceUnit, cfg domain.ProjectConfig) *domain.QualityResult {
	return scoring.Analyze(unit, cfg)
}

// AnalyzeFile loads one file, analyzes it, and stamps the result with
// the repository commit hash and a history entry (both best-effort).
func (s *AnalyzeService) AnalyzeFile(path string) (*domain.QualityResult, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	unit, err := s.loader.LoadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}

	dir := filepath.Dir(absPath)
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	result := scoring.Analyze(unit, cfg)
	result.Timestamp = time.Now()

	if s.gitInfo.IsGitRepo(dir) {
		if hash, err := s.gitInfo.CommitHash(dir); err == nil {
			result.CommitHash = hash
		}
	}

	entry := domain.ScoreEntry{
		Timestamp:  result.Timestamp.Format(time.RFC3339),
		CommitHash: result.CommitHash,
		File:       unit.File,
		Overall:    result.Overall,
		Grade:      result.Grade(),
	}
	_ = s.history.Save(dir, entry) // best-effort

	return result, nil
}

// ScanTree analyzes every recognized source file under root and
// aggregates the per-file scores into a project report.
func (s *AnalyzeService) ScanTree(root string) (*domain.ProjectReport, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := s.configLoader.Load(absRoot)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	units, err := s.loader.LoadTree(absRoot, cfg.IncludeGlobs, cfg.ExcludeGlobs)
	if err != nil {
		return nil, fmt.Errorf("scanning tree: %w", err)
	}

	report := &domain.ProjectReport{
		RootPath:  absRoot,
		Timestamp: time.Now(),
	}

	var total float64
	for _, unit := range units {
		result := scoring.Analyze(unit, cfg)
		result.Timestamp = report.Timestamp
		report.Files = append(report.Files, *result)
		total += float64(result.Overall)
	}
	if len(report.Files) > 0 {
		report.Overall = int(math.Round(total / float64(len(report.Files))))
	}

	if s.gitInfo.IsGitRepo(absRoot) {
		if hash, err := s.gitInfo.CommitHash(absRoot); err == nil {
			report.CommitHash = hash
		}
	}

	entry := domain.ScoreEntry{
		Timestamp:  report.Timestamp.Format(time.RFC3339),
		CommitHash: report.CommitHash,
		Overall:    report.Overall,
		Grade:      report.Grade(),
	}
	_ = s.history.Save(absRoot, entry)

	return report, nil
}

// History returns the saved score entries for a project directory.
func (s *AnalyzeService) History(root string) ([]domain.ScoreEntry, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	return s.history.Load(absRoot)
}
