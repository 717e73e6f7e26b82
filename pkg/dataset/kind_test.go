package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Kind
	}{
		{"departments", KindDepartments},
		{"leave-types", KindLeaveTypes},
		{"leaveTypes", KindLeaveTypes},
		{"onboardingUsers", KindOnboardingUsers},
		{"candidates", KindCandidates},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("payslips")
	assert.Error(t, err)
}

func TestKinds_Metadata(t *testing.T) {
	t.Parallel()
	kinds := Kinds()
	require.Len(t, kinds, 11)
	for _, k := range kinds {
		assert.True(t, k.Valid())
		assert.NotEmpty(t, k.Key())
		assert.NotEmpty(t, k.Label())
	}
	assert.Equal(t, "Onboarding User", KindOnboardingUsers.Label())
	assert.Equal(t, "legalEntities", KindLegalEntities.Key())
	assert.False(t, Kind("nope").Valid())
}

func TestRef_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/users/abc", NewRef(KindUsers, "abc").String())
	assert.True(t, Ref{}.IsZero())
	assert.False(t, NewRef(KindUsers, "abc").IsZero())
}

func TestParseRef(t *testing.T) {
	t.Parallel()

	ref, err := ParseRef("/leave-types/0f8c")
	require.NoError(t, err)
	assert.Equal(t, Ref{Collection: KindLeaveTypes, ID: "0f8c"}, ref)

	for _, bad := range []string{"", "users/1", "/users", "/users/", "/widgets/1", "/users/1/2"} {
		_, err := ParseRef(bad)
		assert.Error(t, err, bad)
	}
}

func TestRef_JSON(t *testing.T) {
	t.Parallel()
	type wrapper struct {
		User Ref `json:"user"`
	}

	body, err := json.Marshal(wrapper{User: NewRef(KindUsers, "u-1")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":"/users/u-1"}`, string(body))

	var w wrapper
	require.NoError(t, json.Unmarshal(body, &w))
	assert.Equal(t, NewRef(KindUsers, "u-1"), w.User)

	assert.Error(t, json.Unmarshal([]byte(`{"user":"users/u-1"}`), &w))
}
