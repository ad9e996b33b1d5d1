// Package orgchart 조직도 시트를 트리로 만들고 보고서의 보직자를 붙인다.
package orgchart

import (
	"rosterboard/internal/model"
)

// Unit 조직도 시트의 한 행: 이름, ID, 상위 ID, 영문명
type Unit struct {
	Name         string `json:"name"`
	ID           string `json:"id"`
	SupervisorID string `json:"supervisorId"`
	EnglishName  string `json:"englishName,omitempty"`
}

// minCells 이름, ID, 상위 ID
const minCells = 3

// ParseUnits 첫 행(헤더)을 건너뛰고 조직 단위를 읽는다.
// 셀이 3개 미만이거나 이름 또는 ID 가 빈 행은 버린다.
func ParseUnits(rows []model.Row) []Unit {
	var units []Unit
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < minCells {
			continue
		}
		u := Unit{
			Name:         row.TextAt(0),
			ID:           row.TextAt(1),
			SupervisorID: row.TextAt(2),
			EnglishName:  row.TextAt(3),
		}
		if u.Name == "" || u.ID == "" {
			continue
		}
		units = append(units, u)
	}
	return units
}

// Build 상위 ID 로 숲을 만든다. 상위 ID 가 비었거나 없는 ID 이거나 자기 자신이면 루트.
// ID 가 겹치면 먼저 나온 행만 쓴다. 순환 참조는 입력 순서상 첫 단위를 루트로 끊는다.
func Build(units []Unit) []*model.Node {
	nodes := make(map[string]*model.Node, len(units))
	var order []Unit
	for _, u := range units {
		if _, dup := nodes[u.ID]; dup {
			continue
		}
		nodes[u.ID] = &model.Node{
			Label:       u.Name,
			Kind:        model.NodeOrgUnit,
			ID:          u.ID,
			EnglishName: u.EnglishName,
		}
		order = append(order, u)
	}

	parent := make(map[string]string, len(order))
	var roots []*model.Node
	for _, u := range order {
		node := nodes[u.ID]
		sup, ok := nodes[u.SupervisorID]
		if u.SupervisorID == "" || !ok || u.SupervisorID == u.ID {
			roots = append(roots, node)
			continue
		}
		parent[u.ID] = u.SupervisorID
		sup.Children = append(sup.Children, node)
	}

	for {
		reached := reachable(roots)
		var broken bool
		for _, u := range order {
			if reached[u.ID] {
				continue
			}
			node := nodes[u.ID]
			detach(nodes[parent[u.ID]], node)
			delete(parent, u.ID)
			roots = append(roots, node)
			broken = true
			break
		}
		if !broken {
			return roots
		}
	}
}

func reachable(roots []*model.Node) map[string]bool {
	seen := make(map[string]bool)
	var walk func(n *model.Node)
	walk = func(n *model.Node) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return seen
}

func detach(parent, child *model.Node) {
	if parent == nil {
		return
	}
	for i, c := range parent.Children {
		if c == child {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}

// Attach 노드 이름과 보직명이 같은 보고서 행의 보직자를 자식으로 붙인다.
// 보직자 노드는 보고서 순서를 따르고 조직 단위 자식 앞에 온다.
func Attach(roots []*model.Node, r *model.Report) int {
	byPosition := make(map[string][]model.ReportRow)
	for _, row := range r.Entries() {
		if row.Position == "" || row.Name == "" {
			continue
		}
		byPosition[row.Position] = append(byPosition[row.Position], row)
	}

	attached := 0
	var walk func(n *model.Node)
	walk = func(n *model.Node) {
		units := n.Children
		if n.Kind == model.NodeOrgUnit {
			if rows := byPosition[n.Label]; len(rows) > 0 {
				people := make([]*model.Node, 0, len(rows)+len(units))
				for _, row := range rows {
					people = append(people, &model.Node{
						Label: row.Name,
						Kind:  model.NodeAppointee,
						Appointee: &model.Appointee{
							Name:     row.Name,
							Period:   row.Period,
							Category: row.Category,
						},
					})
				}
				attached += len(rows)
				n.Children = append(people, units...)
			}
		}
		for _, c := range units {
			walk(c)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return attached
}

// FromRows 조직도 시트와 보고서로 트리를 만든다
func FromRows(rows []model.Row, r *model.Report) []*model.Node {
	roots := Build(ParseUnits(rows))
	Attach(roots, r)
	return roots
}
