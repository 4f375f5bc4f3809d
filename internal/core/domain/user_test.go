package domain

import "testing"

func TestCanAct(t *testing.T) {
	owner := &User{ID: "u1", Roles: []string{RoleUser}}
	admin := &User{ID: "u2", Roles: []string{RoleUser, RoleAdmin}}
	stranger := &User{ID: "u3", Roles: []string{RoleUser}}

	tests := []struct {
		name    string
		actor   *User
		ownerID string
		want    bool
	}{
		{name: "owner acts on own resource", actor: owner, ownerID: "u1", want: true},
		{name: "stranger denied", actor: stranger, ownerID: "u1", want: false},
		{name: "admin overrides ownership", actor: admin, ownerID: "u1", want: true},
		{name: "nil actor denied", actor: nil, ownerID: "u1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAct(tt.actor, tt.ownerID); got != tt.want {
				t.Errorf("CanAct() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUser_HasRole(t *testing.T) {
	u := &User{Roles: []string{RoleUser}}
	if u.IsAdmin() {
		t.Fatalf("plain user reported as admin")
	}
	if !u.HasRole(RoleUser) {
		t.Fatalf("expected user role")
	}

	u.Roles = append(u.Roles, RoleAdmin)
	if !u.IsAdmin() {
		t.Fatalf("expected admin after role grant")
	}
}
