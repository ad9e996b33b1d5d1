package report

import "rosterboard/internal/model"

// BuildHierarchy 구분 → 보직 → 보직자 트리. 구분과 보직은 처음 나온 순서를 따른다.
// 구분만 있는 행(보직명 없음)은 구분 노드만 만든다.
func BuildHierarchy(r *model.Report) []*model.Node {
	var roots []*model.Node
	categories := make(map[string]*model.Node)
	positions := make(map[*model.Node]map[string]*model.Node)

	for _, row := range r.Entries() {
		cat, ok := categories[row.Category]
		if !ok {
			cat = &model.Node{Label: row.Category, Kind: model.NodeCategory}
			categories[row.Category] = cat
			positions[cat] = make(map[string]*model.Node)
			roots = append(roots, cat)
		}
		if row.Position == "" {
			continue
		}

		pos, ok := positions[cat][row.Position]
		if !ok {
			pos = &model.Node{Label: row.Position, Kind: model.NodePosition}
			positions[cat][row.Position] = pos
			cat.Children = append(cat.Children, pos)
		}
		if row.Name == "" {
			continue
		}
		pos.Children = append(pos.Children, &model.Node{
			Label: row.Name,
			Kind:  model.NodeAppointee,
			Appointee: &model.Appointee{
				Name:     row.Name,
				Period:   row.Period,
				Category: row.Category,
			},
		})
	}
	return roots
}
