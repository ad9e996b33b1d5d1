package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterboard/internal/model"
)

func TestBuildHierarchy(t *testing.T) {
	t.Parallel()

	rows := append([]model.ReportRow{{Category: "대학원"}}, sampleRows()...)
	rows = append(rows, model.ReportRow{Category: "총장실", Position: "총장", Name: "박민수", Period: "2025.01.01 ~ "})
	r := &model.Report{Title: "t", Rows: model.SplitColumns(rows)}

	roots := BuildHierarchy(r)
	labels := make([]string, 0, len(roots))
	for _, n := range roots {
		labels = append(labels, n.Label)
		assert.Equal(t, model.NodeCategory, n.Kind)
	}
	assert.Equal(t, []string{"대학원", "총장실", "교무처", "학생처"}, labels)

	grad := roots[0]
	require.Len(t, grad.Children, 2)
	assert.Equal(t, "대학원장", grad.Children[0].Label)
	assert.Equal(t, model.NodePosition, grad.Children[0].Kind)

	president := roots[1].Children[0]
	require.Len(t, president.Children, 2, "same position twice keeps both appointees")
	assert.Equal(t, "홍길동", president.Children[0].Appointee.Name)
	assert.Equal(t, "박민수", president.Children[1].Label)
	assert.Equal(t, model.NodeAppointee, president.Children[1].Kind)

	student := roots[3]
	require.Len(t, student.Children, 2)
	assert.Empty(t, student.Children[1].Children, "unmatched position has no appointee")
}

func TestEncodeHierarchy(t *testing.T) {
	t.Parallel()

	r := &model.Report{Title: "t", Rows: model.SplitColumns(sampleRows()[:1])}
	nodes := BuildHierarchy(r)

	var buf bytes.Buffer
	require.NoError(t, EncodeHierarchy(&buf, nodes, "yaml"))
	assert.Contains(t, buf.String(), "label: 총장실")
	assert.Contains(t, buf.String(), "kind: appointee")

	buf.Reset()
	require.NoError(t, EncodeHierarchy(&buf, nodes, "json"))
	assert.Contains(t, buf.String(), `"label": "홍길동"`)

	assert.Error(t, EncodeHierarchy(&buf, nodes, "xml"))
}
