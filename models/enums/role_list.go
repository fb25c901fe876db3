package enums

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// RoleListDelimiter 是角色列表在数据库中的分隔符。
// 没有转义机制，所以角色名本身不能包含它。
const RoleListDelimiter = ","

var (
	// ErrInvalidRoleName 写入前校验失败：角色名为空、含分隔符或不是已知角色。
	// 属于客户端输入错误。
	ErrInvalidRoleName = errors.New("invalid role name")

	// ErrMalformedRoleField 读取时数据库中的角色字段无法解码。
	// 说明数据已损坏或写入时与读取时的角色集合不一致，属于服务端数据完整性错误。
	ErrMalformedRoleField = errors.New("malformed role field")
)

// EncodeRoleList 将角色序列按顺序用 "," 拼接为持久化字符串。
// 空序列编码为 ""。任一元素非法时返回包装了 ErrInvalidRoleName 的错误。
func EncodeRoleList(roles []string) (string, error) {
	for i, name := range roles {
		if strings.Contains(name, RoleListDelimiter) {
			return "", fmt.Errorf("%w: 第 %d 个角色 %q 含有分隔符 %q", ErrInvalidRoleName, i, name, RoleListDelimiter)
		}
		if !IsValidRole(name) {
			return "", fmt.Errorf("%w: 第 %d 个角色 %q 不是已知角色", ErrInvalidRoleName, i, name)
		}
	}
	return strings.Join(roles, RoleListDelimiter), nil
}

// DecodeRoleList 是 EncodeRoleList 的逆操作。
// "" 解码为空切片（非 nil）；出现未知片段（包括 "A,,B" 中的空片段）时
// 返回包装了 ErrMalformedRoleField 的错误，不返回部分结果。
func DecodeRoleList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	tokens := strings.Split(raw, RoleListDelimiter)
	for i, token := range tokens {
		if !IsValidRole(token) {
			return nil, fmt.Errorf("%w: 第 %d 个片段 %q 不是已知角色", ErrMalformedRoleField, i, token)
		}
	}
	return tokens, nil
}

// EncodeNullRoleList 用于写库。空序列存为合法的空串而不是 NULL。
func EncodeNullRoleList(roles []string) (sql.NullString, error) {
	encoded, err := EncodeRoleList(roles)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: encoded, Valid: true}, nil
}

// DecodeNullRoleList 用于读库。NULL（历史数据）与 "" 一样解码为空切片。
func DecodeNullRoleList(raw sql.NullString) ([]string, error) {
	if !raw.Valid {
		return []string{}, nil
	}
	return DecodeRoleList(raw.String)
}
