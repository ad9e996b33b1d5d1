package model

// NodeKind 계층 노드 종류
type NodeKind string

const (
	NodeCategory  NodeKind = "category"
	NodePosition  NodeKind = "position"
	NodeAppointee NodeKind = "appointee"
	NodeOrgUnit   NodeKind = "org_unit"
)

// Appointee 보직자
type Appointee struct {
	Name     string `json:"name" yaml:"name"`
	Period   string `json:"period,omitempty" yaml:"period,omitempty"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// Node 조직도 렌더링용 트리 노드
type Node struct {
	Label       string     `json:"label" yaml:"label"`
	Kind        NodeKind   `json:"kind" yaml:"kind"`
	ID          string     `json:"id,omitempty" yaml:"id,omitempty"`
	EnglishName string     `json:"englishName,omitempty" yaml:"english_name,omitempty"`
	Appointee   *Appointee `json:"appointee,omitempty" yaml:"appointee,omitempty"`
	Children    []*Node    `json:"children,omitempty" yaml:"children,omitempty"`
}
