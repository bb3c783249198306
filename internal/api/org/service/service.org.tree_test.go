// Package orgsvc - Test dựng cây tổ chức từ danh sách thành viên phẳng.
package orgsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	models "github.com/Marketing-Manuel-Solis-WebSite/solis-os/internal/api/org/models"
)

func newMember(id primitive.ObjectID, name, role string, managerID primitive.ObjectID) models.Member {
	return models.Member{
		ID:          id,
		DisplayName: name,
		Role:        role,
		ManagerID:   managerID,
	}
}

func countNodes(nodes []*models.OrgTreeNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + countNodes(node.Children)
	}
	return n
}

func findNode(nodes []*models.OrgTreeNode, id primitive.ObjectID) *models.OrgTreeNode {
	for _, node := range nodes {
		if node.Member.ID == id {
			return node
		}
		if found := findNode(node.Children, id); found != nil {
			return found
		}
	}
	return nil
}

func TestBuildOrgTree_SimpleHierarchy(t *testing.T) {
	owner := primitive.NewObjectID()
	manager := primitive.NewObjectID()
	member := primitive.NewObjectID()

	members := []models.Member{
		newMember(member, "Nhan Vien", models.RoleMember, manager),
		newMember(owner, "Giam Doc", models.RoleOwner, primitive.NilObjectID),
		newMember(manager, "Truong Phong", models.RoleManager, owner),
	}

	roots := BuildOrgTree(members)
	if len(roots) != 1 {
		t.Fatalf("cây phải có 1 root, có %d", len(roots))
	}
	if roots[0].Member.ID != owner {
		t.Errorf("root phải là owner, có %s", roots[0].Member.DisplayName)
	}
	if countNodes(roots) != 3 {
		t.Errorf("mỗi thành viên phải xuất hiện đúng một lần, tổng node = %d", countNodes(roots))
	}

	managerNode := findNode(roots, manager)
	if managerNode == nil {
		t.Fatal("không tìm thấy manager trong cây")
	}
	if len(managerNode.Children) != 1 || managerNode.Children[0].Member.ID != member {
		t.Error("member phải là con trực tiếp của manager")
	}
}

func TestBuildOrgTree_MissingManagerBecomesRoot(t *testing.T) {
	orphan := primitive.NewObjectID()
	// Manager không có trong danh sách (đã rời workspace)
	members := []models.Member{
		newMember(orphan, "Mo Coi", models.RoleMember, primitive.NewObjectID()),
	}

	roots := BuildOrgTree(members)
	if len(roots) != 1 || roots[0].Member.ID != orphan {
		t.Fatal("thành viên có manager không tồn tại phải được đưa lên làm root")
	}
}

func TestBuildOrgTree_CycleMembersBecomeRoots(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	c := primitive.NewObjectID()

	// A quản lý B, B quản lý A (chu trình); C báo cáo cho A
	members := []models.Member{
		newMember(a, "A", models.RoleManager, b),
		newMember(b, "B", models.RoleManager, a),
		newMember(c, "C", models.RoleMember, a),
	}

	roots := BuildOrgTree(members)
	if countNodes(roots) != 3 {
		t.Fatalf("không được rơi thành viên khỏi cây, tổng node = %d", countNodes(roots))
	}

	// Cả A và B nằm trên chu trình nên đều phải là root
	rootIDs := map[primitive.ObjectID]bool{}
	for _, r := range roots {
		rootIDs[r.Member.ID] = true
	}
	if !rootIDs[a] || !rootIDs[b] {
		t.Error("các thành viên trên chu trình managerId phải được đưa lên làm root")
	}

	// C không nằm trên chu trình, vẫn là con của A
	aNode := findNode(roots, a)
	if aNode == nil || len(aNode.Children) != 1 || aNode.Children[0].Member.ID != c {
		t.Error("C phải vẫn là con của A")
	}
}

func TestBuildOrgTree_SiblingSortByRoleThenName(t *testing.T) {
	boss := primitive.NewObjectID()
	members := []models.Member{
		newMember(boss, "Boss", models.RoleOwner, primitive.NilObjectID),
		newMember(primitive.NewObjectID(), "Binh", models.RoleMember, boss),
		newMember(primitive.NewObjectID(), "An", models.RoleMember, boss),
		newMember(primitive.NewObjectID(), "Chi", models.RoleManager, boss),
	}

	roots := BuildOrgTree(members)
	if len(roots) != 1 {
		t.Fatalf("cây phải có 1 root, có %d", len(roots))
	}
	children := roots[0].Children
	if len(children) != 3 {
		t.Fatalf("root phải có 3 con, có %d", len(children))
	}

	// Manager trước, sau đó member sắp theo displayName
	got := []string{children[0].Member.DisplayName, children[1].Member.DisplayName, children[2].Member.DisplayName}
	want := []string{"Chi", "An", "Binh"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("thứ tự anh em sai tại vị trí %d: muốn %s, có %s (toàn bộ: %v)", i, want[i], got[i], got)
		}
	}
}

func TestRoleRank_UnknownRoleIsZero(t *testing.T) {
	if models.RoleRank("superuser") != 0 {
		t.Error("role không hợp lệ phải có rank 0")
	}
	if models.RoleRank(models.RoleOwner) <= models.RoleRank(models.RoleAdmin) {
		t.Error("owner phải có thứ bậc cao hơn admin")
	}
}
