package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
)

const (
	reportExt     = ".yaml"
	indexFileName = "_index.yaml"
)

// ReportStore persists and retrieves annotation reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
	RegenerateIndex(path m.Path) error
	ClearReports(path m.Path) error
}

// LocalReportStore stores one YAML file per report, named after a short
// hash of the report's identity, plus an optional _index.yaml summary.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type fileYAML struct {
	Path string `yaml:"path"`
	Hash string `yaml:"hash"`
}

type reportYAML struct {
	Source   fileYAML `yaml:"source"`
	Query    int      `yaml:"query"`
	Block    int      `yaml:"block"`
	Selected []string `yaml:"selected,omitempty"`
	Context  string   `yaml:"context,omitempty"`
	Answer   string   `yaml:"answer,omitempty"`
	Err      string   `yaml:"error,omitempty"`
}

type indexEntry struct {
	TotalReports  int           `yaml:"total_reports"`
	FailedReports int           `yaml:"failed_reports"`
	Files         []sourceEntry `yaml:"files"`
}

type sourceEntry struct {
	Path    string   `yaml:"path"`
	Hash    string   `yaml:"hash"`
	Reports []string `yaml:"reports"`
}

// SaveReports writes every report to <hash>.yaml under path.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if len(reports) == 0 {
		return nil
	}

	dir := string(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create reports dir %s: %w", dir, err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(toReportYAML(report))
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}

		name := rs.computeReportHash(report) + reportExt
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			return fmt.Errorf("failed to write report %s: %w", name, err)
		}
	}

	return nil
}

// LoadReports reads every stored report, ordered by source path, query and block.
// A missing directory yields no reports.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	names, err := rs.reportFiles(path)
	if err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, len(names))

	for _, name := range names {
		// #nosec G304 - name comes from listing the reports directory
		data, err := os.ReadFile(filepath.Join(string(path), name))
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", name, err)
		}

		var decoded reportYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", name, err)
		}

		reports = append(reports, fromReportYAML(decoded))
	}

	sort.SliceStable(reports, func(i, j int) bool {
		a, b := reports[i], reports[j]
		if a.Source.Path != b.Source.Path {
			return a.Source.Path < b.Source.Path
		}

		if a.QueryIndex != b.QueryIndex {
			return a.QueryIndex < b.QueryIndex
		}

		return a.BlockIndex < b.BlockIndex
	})

	return reports, nil
}

// RegenerateIndex rebuilds _index.yaml from the stored reports.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	names, err := rs.reportFiles(path)
	if err != nil {
		return err
	}

	idx := indexEntry{Files: []sourceEntry{}}
	bySource := map[string]int{}

	for _, name := range names {
		// #nosec G304 - name comes from listing the reports directory
		data, err := os.ReadFile(filepath.Join(string(path), name))
		if err != nil {
			return fmt.Errorf("failed to read report %s: %w", name, err)
		}

		var decoded reportYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return fmt.Errorf("failed to decode report %s: %w", name, err)
		}

		idx.TotalReports++

		if decoded.Err != "" {
			idx.FailedReports++
		}

		pos, ok := bySource[decoded.Source.Path]
		if !ok {
			pos = len(idx.Files)
			bySource[decoded.Source.Path] = pos
			idx.Files = append(idx.Files, sourceEntry{Path: decoded.Source.Path, Hash: decoded.Source.Hash})
		}

		idx.Files[pos].Reports = append(idx.Files[pos].Reports, name)
	}

	sort.Slice(idx.Files, func(i, j int) bool { return idx.Files[i].Path < idx.Files[j].Path })

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	if err := os.MkdirAll(string(path), 0o750); err != nil {
		return fmt.Errorf("failed to create reports dir %s: %w", path, err)
	}

	return os.WriteFile(filepath.Join(string(path), indexFileName), data, 0o600)
}

// ClearReports removes stored reports and the index, leaving other files alone.
func (rs *LocalReportStore) ClearReports(path m.Path) error {
	names, err := rs.reportFiles(path)
	if err != nil {
		return err
	}

	names = append(names, indexFileName)
	for _, name := range names {
		err := os.Remove(filepath.Join(string(path), name))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}

	return nil
}

func (rs *LocalReportStore) reportFiles(path m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to list reports in %s: %w", path, err)
	}

	var names []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFileName || !strings.HasSuffix(name, reportExt) {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

// computeReportHash returns 16 hex chars identifying a report by source,
// query and block, so re-running a query overwrites its previous report.
func (rs *LocalReportStore) computeReportHash(report m.Report) string {
	key := fmt.Sprintf("%s\x00%s\x00%d\x00%d", report.Source.Path, report.Source.Hash, report.QueryIndex, report.BlockIndex)
	sum := sha256.Sum256([]byte(key))

	return fmt.Sprintf("%x", sum[:8])
}

func toReportYAML(report m.Report) reportYAML {
	out := reportYAML{
		Source:   fileYAML{Path: string(report.Source.Path), Hash: report.Source.Hash},
		Query:    report.QueryIndex,
		Block:    report.BlockIndex,
		Selected: report.Selected,
		Context:  report.Context,
		Answer:   report.Answer,
	}
	if report.Error != nil {
		out.Err = report.Error.Error()
	}

	return out
}

func fromReportYAML(in reportYAML) m.Report {
	report := m.Report{
		Source:     m.File{Path: m.Path(in.Source.Path), Hash: in.Source.Hash},
		QueryIndex: in.Query,
		BlockIndex: in.Block,
		Selected:   in.Selected,
		Context:    in.Context,
		Answer:     in.Answer,
	}
	if in.Err != "" {
		report.Error = errors.New(in.Err)
	}

	return report
}
