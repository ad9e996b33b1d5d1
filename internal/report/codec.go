package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"rosterboard/internal/model"
)

// EncodeJSON 보고서를 들여쓰기 된 JSON 으로 기록 (한글은 그대로)
func EncodeJSON(w io.Writer, r *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// DecodeJSON EncodeJSON 으로 저장한 보고서를 읽는다
func DecodeJSON(rd io.Reader) (*model.Report, error) {
	dec := json.NewDecoder(rd)
	dec.DisallowUnknownFields()

	var r model.Report
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if err := Validate(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate 불러온 보고서의 최소 구조 검사. 제목과 날짜는 비어 있어도 된다.
func Validate(r *model.Report) error {
	if r == nil {
		return errors.New("report is nil")
	}
	if r.Rows == nil {
		return errors.New("report rows missing")
	}
	return nil
}

// EncodeHierarchy 트리를 json 또는 yaml 로 기록
func EncodeHierarchy(w io.Writer, nodes []*model.Node, format string) error {
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported hierarchy format %q", format)
	}
}
