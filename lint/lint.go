// Package lint is the embeddable entry point: it builds a configured engine
// and drives it over files, directories and in-memory sources.
package lint

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoverse/cmplint/internal"
	"github.com/gnoverse/cmplint/internal/schema"
	tt "github.com/gnoverse/cmplint/internal/types"
	"github.com/gnoverse/cmplint/scanner"
)

// LintEngine is the surface the process helpers need from an engine.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
}

// Config represents the overall configuration with a name and a slice of rules.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

// New builds an engine from the configuration file at configurationPath. A
// missing file means defaults; an invalid one is rejected before any
// expression is evaluated.
func New(configurationPath string) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}

	return internal.NewEngine(config.Rules)
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configurationPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, fmt.Errorf("error reading configuration: %w", err)
	}

	// Validate against the schema first so unknown keys fail loudly instead
	// of being dropped by the YAML decoder.
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return config, fmt.Errorf("error parsing configuration: %w", err)
	}
	validator, err := schema.NewValidator()
	if err != nil {
		return config, err
	}
	if errs := validator.ValidateDocument(doc); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.String()
		}
		return config, fmt.Errorf("invalid configuration %s: %s", configurationPath, strings.Join(msgs, "; "))
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("error parsing configuration: %w", err)
	}

	return config, nil
}

// ProcessSources lints in-memory sources in order.
func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
	processor func(LintEngine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

// ProcessFiles lints every given path, files and directories alike.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

// ProcessPath lints one path. Directories are scanned for Go files and linted
// with a bounded worker pool and a progress bar.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasDesiredExtension(path) {
			return nil, nil
		}
		return processor(engine, path)
	}

	scanned, err := scanner.New(path, desiredExtensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}

	files := make([]string, 0, len(scanned))
	for _, f := range scanned {
		files = append(files, f.Path)
	}

	resultChan := make(chan []tt.Issue, len(files))
	errorChan := make(chan error, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var wg sync.WaitGroup
	for _, filePath := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			wg.Add(1)
			go func(fp string) {
				defer func() {
					<-sem
					wg.Done()
				}()

				fileIssues, err := processor(engine, fp)
				if err != nil {
					if logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					errorChan <- err
					resultChan <- nil
				} else {
					resultChan <- fileIssues
					errorChan <- nil
				}
				_ = bar.Add(1)
			}(filePath)
		}
	}
	wg.Wait()

	var firstErr error
	for range files {
		if err := <-errorChan; err != nil && firstErr == nil {
			firstErr = err
		}
	}

	var issues []tt.Issue
	for range files {
		if result := <-resultChan; result != nil {
			issues = append(issues, result...)
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	fmt.Println()
	return issues, nil
}

// ProcessFile lints a single file through the engine.
func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

// ProcessSource lints an in-memory source through the engine.
func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(source)
}

var desiredExtensions = []string{".go"}

func hasDesiredExtension(path string) bool {
	for _, ext := range desiredExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
