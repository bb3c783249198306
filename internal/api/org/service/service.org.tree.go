// Package orgsvc - dựng cây tổ chức từ danh sách thành viên.
package orgsvc

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
)

// BuildOrgTree dựng rừng cây tổ chức từ danh sách thành viên phẳng, dùng ManagerID làm con trỏ cha.
// Quy tắc:
//   - Thành viên không có manager, hoặc manager không nằm trong danh sách, là root.
//   - Thành viên nằm trên một chu trình managerId (A quản lý B, B quản lý A) được đưa lên làm root
//     thay vì bị rơi khỏi cây. Kiểm tra chu trình chạy trước khi dựng cây.
//   - Anh em cùng cấp sắp xếp theo thứ bậc role giảm dần, cùng role thì theo displayName.
//
// Mỗi thành viên không nằm trên chu trình xuất hiện trong cây đúng một lần.
func BuildOrgTree(members []models.Member) []*models.OrgTreeNode {
	byID := make(map[primitive.ObjectID]int, len(members))
	for i, m := range members {
		if !m.ID.IsZero() {
			byID[m.ID] = i
		}
	}

	onCycle := detectManagerCycles(members, byID)

	// Dựng node cho từng thành viên
	nodes := make([]*models.OrgTreeNode, len(members))
	for i := range members {
		nodes[i] = &models.OrgTreeNode{Member: members[i], Children: []*models.OrgTreeNode{}}
	}

	var roots []*models.OrgTreeNode
	for i, m := range members {
		managerIdx, managerExists := byID[m.ManagerID]
		isRoot := m.ManagerID.IsZero() || !managerExists || onCycle[m.ID]
		if isRoot {
			roots = append(roots, nodes[i])
			continue
		}
		nodes[managerIdx].Children = append(nodes[managerIdx].Children, nodes[i])
	}

	sortSiblings(roots)
	for _, n := range nodes {
		sortSiblings(n.Children)
	}
	return roots
}

// detectManagerCycles tìm các thành viên nằm trên chu trình managerId.
// Mỗi node có tối đa một con trỏ cha nên chỉ cần lần theo chuỗi manager với đánh dấu trạng thái:
// 0 = chưa thăm, 1 = đang trong chuỗi hiện tại, 2 = đã xong.
func detectManagerCycles(members []models.Member, byID map[primitive.ObjectID]int) map[primitive.ObjectID]bool {
	state := make(map[primitive.ObjectID]int, len(members))
	onCycle := make(map[primitive.ObjectID]bool)

	for _, m := range members {
		if m.ID.IsZero() || state[m.ID] != 0 {
			continue
		}

		// Lần theo chuỗi manager từ m
		var chain []primitive.ObjectID
		cur := m.ID
		for {
			state[cur] = 1
			chain = append(chain, cur)

			next := members[byID[cur]].ManagerID
			if next.IsZero() {
				break
			}
			if _, exists := byID[next]; !exists {
				break
			}
			if state[next] == 2 {
				break
			}
			if state[next] == 1 {
				// Gặp lại node đang trong chuỗi: mọi node từ next đến cuối chuỗi nằm trên chu trình
				inCycle := false
				for _, id := range chain {
					if id == next {
						inCycle = true
					}
					if inCycle {
						onCycle[id] = true
					}
				}
				break
			}
			cur = next
		}

		for _, id := range chain {
			state[id] = 2
		}
	}
	return onCycle
}

// sortSiblings sắp xếp anh em cùng cấp: role cao trước, cùng role theo displayName.
func sortSiblings(nodes []*models.OrgTreeNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		ri := models.RoleRank(nodes[i].Member.Role)
		rj := models.RoleRank(nodes[j].Member.Role)
		if ri != rj {
			return ri > rj
		}
		return nodes[i].Member.DisplayName < nodes[j].Member.DisplayName
	})
}
