package enums

// Role 是看板的权限层级，决定谁可以在看板上发帖、修改和阅读。
// 持久化和对外输出时都使用其字符串名，例如 "ADMIN"。
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RolePresident     Role = "PRESIDENT"
	RoleVicePresident Role = "VICE_PRESIDENT"
	RoleCouncil       Role = "COUNCIL"
	RoleLeader1       Role = "LEADER_1"
	RoleLeader2       Role = "LEADER_2"
	RoleLeader3       Role = "LEADER_3"
	RoleLeader4       Role = "LEADER_4"
	RoleLeaderCircle  Role = "LEADER_CIRCLE"
	RoleLeaderAlumni  Role = "LEADER_ALUMNI"
	RoleProfessor     Role = "PROFESSOR"
	RoleCommon        Role = "COMMON"
	RoleNone          Role = "NONE"
)

// allRoles 保持声明顺序，GET /roles 按此顺序返回
var allRoles = []Role{
	RoleAdmin,
	RolePresident,
	RoleVicePresident,
	RoleCouncil,
	RoleLeader1,
	RoleLeader2,
	RoleLeader3,
	RoleLeader4,
	RoleLeaderCircle,
	RoleLeaderAlumni,
	RoleProfessor,
	RoleCommon,
	RoleNone,
}

var knownRoles = func() map[string]Role {
	m := make(map[string]Role, len(allRoles))
	for _, r := range allRoles {
		m[string(r)] = r
	}
	return m
}()

func (r Role) String() string {
	return string(r)
}

// ParseRole 按名称精确匹配（区分大小写，不去空白）
func ParseRole(name string) (Role, bool) {
	r, ok := knownRoles[name]
	return r, ok
}

// IsValidRole 判断 name 是否属于已知角色集合
func IsValidRole(name string) bool {
	_, ok := ParseRole(name)
	return ok
}

// RoleNames 按声明顺序返回已知角色的字符串名，每次调用都是新切片
func RoleNames() []string {
	out := make([]string, len(allRoles))
	for i, r := range allRoles {
		out[i] = string(r)
	}
	return out
}
