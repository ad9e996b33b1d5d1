package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rosterboard/internal/config"
	"rosterboard/internal/model"
	"rosterboard/internal/orgchart"
	"rosterboard/internal/report"
	"rosterboard/internal/service/excel"
)

var treeFlags struct {
	report   string
	org      string
	orgSheet string
	format   string
	out      string
}

// treeCmd 보고서 계층 출력
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the report hierarchy (category tree or org chart)",
	Long: `게시된 보고서(또는 --report 로 지정한 JSON)를 트리로 출력한다.
--org 로 조직도 시트(이름, ID, 상위 ID, 영문명)를 주면 조직도에 보직자를 붙인다.`,
	RunE: runTree,
}

func init() {
	f := treeCmd.Flags()
	f.StringVar(&treeFlags.report, "report", "", "Report JSON (default: the published report)")
	f.StringVar(&treeFlags.org, "org", "", "Org chart workbook")
	f.StringVar(&treeFlags.orgSheet, "org-sheet", "", "Org chart sheet (default: first)")
	f.StringVar(&treeFlags.format, "format", "yaml", "Output format: yaml or json")
	f.StringVarP(&treeFlags.out, "out", "o", "-", "Output path ('-' for stdout)")
}

func loadReport(path string) (*model.Report, error) {
	if path == "" {
		path = filepath.Join(config.ResolveDataDir(cfg), cfg.Data.ReportFile)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := report.DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r, nil
}

func runTree(cmd *cobra.Command, args []string) error {
	r, err := loadReport(treeFlags.report)
	if err != nil {
		return err
	}

	var nodes []*model.Node
	if treeFlags.org != "" {
		rows, _, err := excel.LoadRows(treeFlags.org, treeFlags.orgSheet)
		if err != nil {
			return err
		}
		roots := orgchart.Build(orgchart.ParseUnits(rows))
		attached := orgchart.Attach(roots, r)
		logger.Info("org chart built", zap.Int("roots", len(roots)), zap.Int("appointees", attached))
		nodes = roots
	} else {
		nodes = report.BuildHierarchy(r)
	}

	format := treeFlags.format
	if treeFlags.out != "-" {
		format = formatFromPath(treeFlags.out, format)
	}
	return writeOutput(cmd, treeFlags.out, func(w io.Writer) error {
		return report.EncodeHierarchy(w, nodes, format)
	})
}
