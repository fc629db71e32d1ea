package application

import (
	"fmt"
	"path/filepath"

	"github.com/codelens/codelens/internal/domain"
	"github.com/codelens/codelens/internal/domain/rules"
	"github.com/codelens/codelens/internal/domain/scoring"
)

// RefactorService orchestrates the rewrite pipeline: load source →
// apply the language rule table → count improvements → score the
// result.
type RefactorService struct {
	loader       domain.SourceLoader
	configLoader domain.ConfigLoader
}

func NewRefactorService(loader domain.SourceLoader, configLoader domain.ConfigLoader) *RefactorService {
	return &RefactorService{
		loader:       loader,
		configLoader: configLoader,
	}
}

// RefactorSource rewrites an in-memory unit. Never fails: input the
// rules cannot improve comes back unchanged with a zero count.
func (s *RefactorService) RefactorSource(unit domain.SourceUnit, cfg domain.ProjectConfig) *domain.RefactoringResult {
	opts := rules.Options{AggressiveSQL: cfg.AggressiveSQL}
	refactored := rules.RefactorWithOptions(unit.Text, unit.Language, opts)
	count, improvements := rules.CountImprovements(unit.Text, refactored, unit.Language)

	scored := scoring.Analyze(domain.SourceUnit{
		Text:     refactored,
		Language: unit.Language,
		File:     unit.File,
	}, cfg)

	return &domain.RefactoringResult{
		RefactoredCode:   refactored,
		ImprovementCount: count,
		Improvements:     improvements,
		QualityScore:     scored.Overall,
		Language:         unit.Language,
	}
}

// RefactorFile loads one file and rewrites it with the project config
// found in the file's directory.
func (s *RefactorService) RefactorFile(path string) (*domain.RefactoringResult, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	unit, err := s.loader.LoadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading source: %w", err)
	}

	cfg, err := s.configLoader.Load(filepath.Dir(absPath))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return s.RefactorSource(unit, cfg), nil
}

// GenerateTests emits a unit-test skeleton for the file's functions.
// Languages without a test idiom return the empty string.
func (s *RefactorService) GenerateTests(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	unit, err := s.loader.LoadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("loading source: %w", err)
	}

	return rules.GenerateTestSkeleton(unit.Text, unit.Language), nil
}
