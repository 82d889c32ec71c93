package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUserRecord() *Group {
	return NewRecord(TypeUser, "user-1",
		NewAtomic(UserLoginID, "alice@example.org"),
		NewAtomic(UserActiveStatus, StatusActive),
		NewGroup(UserAppTokens,
			NewGroup(UserAppToken, NewLink(UserAppTokenLink, TypeAppToken, "token-1")),
			NewGroup(UserAppToken, NewLink(UserAppTokenLink, TypeAppToken, "token-2")),
		),
		NewGroup(UserRole, NewLink(UserRole, "permissionRole", "admin")),
		NewLink(UserPasswordLink, TypeSystemSecret, "secret-1"),
	)
}

func TestGroup_RecordID(t *testing.T) {
	id, err := createTestUserRecord().RecordID()
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	_, err = NewRecord(TypeUser, "").RecordID()
	assert.ErrorIs(t, err, ErrMissingID)

	var nilGroup *Group
	_, err = nilGroup.RecordID()
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestGroup_RecordType(t *testing.T) {
	recordType, err := createTestUserRecord().RecordType()
	require.NoError(t, err)
	assert.Equal(t, TypeUser, recordType)

	_, err = (&Group{Name: "noType", ID: "id-1"}).RecordType()
	assert.ErrorIs(t, err, ErrMissingType)

	var nilGroup *Group
	_, err = nilGroup.RecordType()
	assert.ErrorIs(t, err, ErrMissingType)
}

func TestGroup_AtomicAccessors(t *testing.T) {
	g := createTestUserRecord()

	value, err := g.FirstAtomicValue(UserLoginID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.org", value)

	_, err = g.FirstAtomicValue(UserFirstName)
	assert.ErrorIs(t, err, ErrChildNotFound)

	_, ok := g.AtomicValue(UserFirstName)
	assert.False(t, ok)

	// passwordLink is a link, not an atomic
	_, ok = g.AtomicValue(UserPasswordLink)
	assert.False(t, ok)

	assert.True(t, g.ContainsChild(UserPasswordLink))
	assert.False(t, g.ContainsChild("missing"))
}

func TestGroup_GroupAccessors(t *testing.T) {
	g := createTestUserRecord()

	appTokens, err := g.FirstGroup(UserAppTokens)
	require.NoError(t, err)
	assert.Len(t, appTokens.Groups(UserAppToken), 2)

	assert.Len(t, g.Groups(UserRole), 1)
	assert.Empty(t, g.Groups("missing"))

	_, err = g.FirstGroup("missing")
	assert.ErrorIs(t, err, ErrChildNotFound)
}

func TestGroup_LinkAccessors(t *testing.T) {
	g := createTestUserRecord()

	assert.True(t, g.ContainsLink(UserPasswordLink))
	assert.False(t, g.ContainsLink(UserLoginID))

	link, err := g.FirstLink(UserPasswordLink)
	require.NoError(t, err)
	assert.Equal(t, TypeSystemSecret, link.LinkedType)
	assert.Equal(t, "secret-1", link.LinkedID)

	_, err = g.FirstLink(UserPermissionUnit)
	assert.ErrorIs(t, err, ErrChildNotFound)

	g.AddChild(NewLink(UserPermissionUnit, "permissionUnit", "unit-1"))
	g.AddChild(NewLink(UserPermissionUnit, "permissionUnit", "unit-2"))
	assert.Len(t, g.Links(UserPermissionUnit), 2)
}

func TestGroup_JSON(t *testing.T) {
	original := createTestUserRecord()
	original.AddChild(NewAtomic(UserFirstName, ""))

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded := &Group{}
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, original, decoded)

	// empty atomic survives as atomic, not as empty group
	value, err := decoded.FirstAtomicValue(UserFirstName)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestGroup_UnmarshalJSON_NotAGroup(t *testing.T) {
	g := &Group{}
	err := json.Unmarshal([]byte(`{"name":"token","value":"abc"}`), g)
	assert.Error(t, err)
}

func TestGroup_JSON_Links(t *testing.T) {
	t.Run("link without type stays a link", func(t *testing.T) {
		original := NewRecord(TypeUser, "u", NewLink(UserPasswordLink, "", "secret-1"))

		data, err := json.Marshal(original)
		require.NoError(t, err)

		decoded := &Group{}
		require.NoError(t, json.Unmarshal(data, decoded))
		assert.True(t, decoded.ContainsLink(UserPasswordLink))
	})

	t.Run("link without id is not encoded", func(t *testing.T) {
		g := NewRecord(TypeUser, "u",
			NewGroup(UserAppTokens, NewGroup(UserAppToken, NewLink(UserAppTokenLink, TypeAppToken, ""))))

		_, err := json.Marshal(g)
		assert.ErrorIs(t, err, ErrEmptyLink)
	})

	t.Run("decoded by linked type", func(t *testing.T) {
		decoded := &Group{}
		data := `{"name":"user","type":"user","id":"u","children":[{"name":"passwordLink","linkedRecordType":"systemSecret"}]}`
		require.NoError(t, json.Unmarshal([]byte(data), decoded))

		assert.True(t, decoded.ContainsLink(UserPasswordLink))
		assert.ErrorIs(t, CheckRecord(decoded), ErrEmptyLink)
	})
}

func TestCheckLinks(t *testing.T) {
	assert.NoError(t, CheckLinks(createTestUserRecord()))

	nested := NewRecord(TypeUser, "u",
		NewGroup(UserRole, NewLink(UserRole, "permissionRole", "")))
	assert.ErrorIs(t, CheckLinks(nested), ErrEmptyLink)

	assert.ErrorIs(t, CheckRecord(NewRecord("anyType", "x", NewLink("ref", "other", ""))), ErrEmptyLink)
}

func TestCheckRecord(t *testing.T) {
	tests := []struct {
		record  *Group
		name    string
		wantErr bool
	}{
		{
			name:   "valid user",
			record: createTestUserRecord(),
		},
		{
			name:    "loginId as link",
			record:  NewRecord(TypeUser, "u", NewLink(UserLoginID, "x", "y")),
			wantErr: true,
		},
		{
			name: "appToken without link kind",
			record: NewRecord(TypeUser, "u",
				NewGroup(UserAppTokens, NewGroup(UserAppToken, NewAtomic(UserAppTokenLink, "t")))),
			wantErr: true,
		},
		{
			name:   "unknown children ignored",
			record: NewRecord(TypeAppToken, "t", NewAtomic("note", "x"), NewAtomic(AppTokenToken, "abc")),
		},
		{
			name:   "unknown type passes",
			record: NewRecord("recordType", "user", NewLink(UserLoginID, "x", "y")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRecord(tt.record)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrSchemaMismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
