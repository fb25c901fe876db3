package enums

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoleList(t *testing.T) {
	testCases := []struct {
		name    string
		roles   []string
		want    string
		wantErr error
	}{
		{name: "two roles keep order", roles: []string{"ADMIN", "PRESIDENT"}, want: "ADMIN,PRESIDENT"},
		{name: "single role", roles: []string{"COMMON"}, want: "COMMON"},
		{name: "nil slice", roles: nil, want: ""},
		{name: "empty slice", roles: []string{}, want: ""},
		{name: "duplicates are kept", roles: []string{"ADMIN", "ADMIN"}, want: "ADMIN,ADMIN"},
		{name: "element with delimiter", roles: []string{"ADMIN,PRESIDENT"}, wantErr: ErrInvalidRoleName},
		{name: "unknown role", roles: []string{"ADMIN", "JANITOR"}, wantErr: ErrInvalidRoleName},
		{name: "empty element", roles: []string{""}, wantErr: ErrInvalidRoleName},
		{name: "lower case is not a role", roles: []string{"admin"}, wantErr: ErrInvalidRoleName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeRoleList(tc.roles)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeRoleList(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    []string
		wantErr error
	}{
		{name: "empty string", raw: "", want: []string{}},
		{name: "single", raw: "ADMIN", want: []string{"ADMIN"}},
		{name: "ordered pair", raw: "PRESIDENT,ADMIN", want: []string{"PRESIDENT", "ADMIN"}},
		{name: "unknown token", raw: "ADMIN,UNKNOWN_ROLE", wantErr: ErrMalformedRoleField},
		{name: "empty middle token", raw: "ADMIN,,PRESIDENT", wantErr: ErrMalformedRoleField},
		{name: "trailing delimiter", raw: "ADMIN,", wantErr: ErrMalformedRoleField},
		{name: "whitespace is not trimmed", raw: "ADMIN, PRESIDENT", wantErr: ErrMalformedRoleField},
		{name: "only delimiter", raw: ",", wantErr: ErrMalformedRoleField},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeRoleList(tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeNullRoleList(t *testing.T) {
	got, err := DecodeNullRoleList(sql.NullString{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = DecodeNullRoleList(sql.NullString{String: "", Valid: true})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = DecodeNullRoleList(sql.NullString{String: "GHOST", Valid: true})
	assert.ErrorIs(t, err, ErrMalformedRoleField)
}

func TestEncodeNullRoleList_EmptyIsValidEmptyString(t *testing.T) {
	got, err := EncodeNullRoleList(nil)
	require.NoError(t, err)
	assert.Equal(t, sql.NullString{String: "", Valid: true}, got)

	_, err = EncodeNullRoleList([]string{"BAD,ROLE"})
	assert.ErrorIs(t, err, ErrInvalidRoleName)
}

func TestRoleList_RoundTrip(t *testing.T) {
	names := RoleNames()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := rng.Intn(len(names) + 1)
		roles := make([]string, n)
		for j := range roles {
			roles[j] = names[rng.Intn(len(names))]
		}

		encoded, err := EncodeRoleList(roles)
		require.NoError(t, err)
		decoded, err := DecodeRoleList(encoded)
		require.NoError(t, err)
		assert.Equal(t, roles, decoded, "encoded=%q", encoded)

		nullEncoded, err := EncodeNullRoleList(roles)
		require.NoError(t, err)
		nullDecoded, err := DecodeNullRoleList(nullEncoded)
		require.NoError(t, err)
		assert.Equal(t, roles, nullDecoded)
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("LEADER_CIRCLE")
	assert.True(t, ok)
	assert.Equal(t, RoleLeaderCircle, r)

	_, ok = ParseRole(" ADMIN")
	assert.False(t, ok)
}

func TestRoleNames_ReturnsCopy(t *testing.T) {
	names := RoleNames()
	names[0] = "MUTATED"
	assert.Equal(t, "ADMIN", RoleNames()[0])
	assert.False(t, IsValidRole("MUTATED"))
}
