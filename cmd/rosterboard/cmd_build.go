package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rosterboard/internal/config"
	"rosterboard/internal/exporter"
	"rosterboard/internal/model"
	"rosterboard/internal/publish"
	"rosterboard/internal/report"
	"rosterboard/internal/service/reporting"
)

type buildOptions struct {
	criteria string
	data     string
	dataGlob string
	out      string
	xlsx     string
	tree     string
	publish  bool
}

var buildFlags buildOptions

// buildCmd 보고서 일괄 생성
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the report from a criteria sheet and a roster export",
	Long: `기준표와 발령 데이터로 보고서 JSON 을 만든다.

--data-glob 을 주면 패턴에 맞는 파일 중 이름순 마지막(가장 최근 날짜) 파일을 쓴다.

Example:
  rosterboard build --criteria rule.xlsx --data-glob 'exports/교원_발령사항_*.xlsx' \
    --out professor_data.json --xlsx 현황.xlsx --tree tree.yaml`,
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringVar(&buildFlags.criteria, "criteria", "", "Criteria workbook (required)")
	f.StringVar(&buildFlags.data, "data", "", "Roster export workbook")
	f.StringVar(&buildFlags.dataGlob, "data-glob", "", "Glob for roster exports; the last match by name is used")
	f.StringVarP(&buildFlags.out, "out", "o", "-", "Report JSON output path ('-' for stdout)")
	f.StringVar(&buildFlags.xlsx, "xlsx", "", "Also write the two-column table as xlsx")
	f.StringVar(&buildFlags.tree, "tree", "", "Also write the hierarchy (.yaml or .json)")
	f.BoolVar(&buildFlags.publish, "publish", false, "Publish the report into the data directory")
	_ = buildCmd.MarkFlagRequired("criteria")
	buildCmd.MarkFlagsMutuallyExclusive("data", "data-glob")
}

func resolveDataPath() (string, error) {
	if buildFlags.data != "" {
		return buildFlags.data, nil
	}
	if buildFlags.dataGlob == "" {
		return "", errors.New("one of --data or --data-glob is required")
	}
	path, err := reporting.LatestMatch(buildFlags.dataGlob)
	if err != nil {
		return "", err
	}
	logger.Info("selected latest roster export", zap.String("path", path))
	return path, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	dataPath, err := resolveDataPath()
	if err != nil {
		return err
	}

	gen := reporting.NewGenerator(cfg.ReportOptions(), reporting.Sheets{
		Criteria: cfg.Criteria.Sheet,
		Roster:   cfg.Roster.Sheet,
	}, logger)

	r, err := gen.FromFiles(buildFlags.criteria, dataPath)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if err := writeOutput(cmd, buildFlags.out, func(w io.Writer) error {
		return report.EncodeJSON(w, r)
	}); err != nil {
		return err
	}

	if buildFlags.xlsx != "" {
		ex := exporter.NewExporter(exporter.Options{
			MarkConcurrent: true,
			Progress:       exporter.LogProgress(logger, zap.String("path", buildFlags.xlsx)),
		})
		if err := writeOutput(cmd, buildFlags.xlsx, func(w io.Writer) error {
			return ex.Write(w, r)
		}); err != nil {
			return err
		}
	}

	if buildFlags.tree != "" {
		nodes := report.BuildHierarchy(r)
		if err := writeOutput(cmd, buildFlags.tree, func(w io.Writer) error {
			return report.EncodeHierarchy(w, nodes, formatFromPath(buildFlags.tree, "json"))
		}); err != nil {
			return err
		}
	}

	if buildFlags.publish {
		if err := publishReport(r, publish.Meta{
			CriteriaFile: filepath.Base(buildFlags.criteria),
			DataFile:     filepath.Base(dataPath),
		}); err != nil {
			return err
		}
	}

	printSummary(cmd, r)
	return nil
}

func publishReport(r *model.Report, meta publish.Meta) error {
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return err
	}
	store, err := publish.NewStore(dataDir, cfg.Data.ReportFile, logger)
	if err != nil {
		return err
	}
	return store.Save(r, meta)
}

func printSummary(cmd *cobra.Command, r *model.Report) {
	entries := r.Entries()
	s := report.Summarize(entries)
	fmt.Fprintf(cmd.ErrOrStderr(), "%s\n보직 %d개 / 매칭 %d / 미매칭 %d / 겸직자 %d명\n",
		r.Title, s.Positions, s.Matched, s.Unmatched, s.Concurrent)
	for _, h := range report.ConcurrentHolders(entries) {
		fmt.Fprintf(cmd.ErrOrStderr(), "  ⭐%d %s: %v\n", h.Count, h.Name, h.Positions)
	}
}
