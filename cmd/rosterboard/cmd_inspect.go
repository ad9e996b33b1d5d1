package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rosterboard/internal/parser"
	"rosterboard/internal/service/excel"
)

var inspectSheet string

// inspectCmd 통합 문서의 시트와 발령 데이터 헤더 위치 확인
var inspectCmd = &cobra.Command{
	Use:   "inspect [xlsx]",
	Short: "List sheets and locate the roster header row",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectSheet, "sheet", "", "Sheet to inspect (default: first)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	wb, err := excel.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	out := cmd.OutOrStdout()
	sheets, err := wb.Sheets()
	if err != nil {
		return err
	}
	for _, s := range sheets {
		fmt.Fprintf(out, "sheet %-20s rows=%d\n", s.Name, s.RowCount)
	}
	fmt.Fprintf(out, "date1904=%v\n", wb.Date1904())
	if d, ok := parser.ExtractReportDate(wb.Name()); ok {
		fmt.Fprintf(out, "report date=%s\n", d)
	}

	rows, err := wb.Rows(inspectSheet)
	if err != nil {
		return err
	}
	filter := parser.NewRosterFilter(cfg.RosterLayout(), parser.DateFormatter{Date1904: wb.Date1904()})
	headerRow, err := filter.LocateHeader(rows)
	if errors.Is(err, parser.ErrHeaderNotFound) {
		fmt.Fprintf(out, "roster header: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	cols := filter.ResolveColumns(rows, headerRow)
	fmt.Fprintf(out, "roster header row=%d name=%d position=%d start=%d end=%d status=%d\n",
		cols.HeaderRow+1, cols.Name, cols.Position, cols.Start, cols.End, cols.Status)

	active, err := filter.ExtractActive(rows)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "active appointments=%d\n", len(active))
	return nil
}
