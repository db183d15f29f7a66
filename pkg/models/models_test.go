package models

import (
	"testing"
	"time"
)

func TestAccountRole_IsValid(t *testing.T) {
	tests := []struct {
		role  AccountRole
		valid bool
	}{
		{RoleUser, true},
		{RoleAdmin, true},
		{"invalid", false},
		{"", false},
		{"ADMIN", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.IsValid(); got != tt.valid {
				t.Errorf("AccountRole(%q).IsValid() = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestPermission_Covers(t *testing.T) {
	tests := []struct {
		name      string
		held      Permission
		requested Permission
		want      bool
	}{
		{"download covers view", PermissionDownload, PermissionView, true},
		{"download covers download", PermissionDownload, PermissionDownload, true},
		{"view covers view", PermissionView, PermissionView, true},
		{"view does not cover download", PermissionView, PermissionDownload, false},
		{"unknown covers nothing", Permission("bogus"), PermissionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.held.Covers(tt.requested); got != tt.want {
				t.Errorf("Permission(%q).Covers(%q) = %v, want %v", tt.held, tt.requested, got, tt.want)
			}
		})
	}
}

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
	}{
		{"valid", Account{Username: "alice", Email: "alice@example.com", Role: "user"}, false},
		{"valid admin", Account{Username: "root", Email: "root@example.com", Role: "admin"}, false},
		{"empty role allowed", Account{Username: "bob", Email: "bob@example.com"}, false},
		{"missing username", Account{Email: "x@example.com"}, true},
		{"missing email", Account{Username: "alice"}, true},
		{"bad role", Account{Username: "alice", Email: "a@example.com", Role: "superuser"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAccount_MFAPending(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		want    bool
	}{
		{"no secret", Account{}, false},
		{"enrolling", Account{MFASecret: "JBSWY3DPEHPK3PXP"}, true},
		{"confirmed", Account{MFASecret: "JBSWY3DPEHPK3PXP", MFAEnabled: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.account.MFAPending(); got != tt.want {
				t.Errorf("MFAPending() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShareGrant_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		grant ShareGrant
		want  bool
	}{
		{"no expiry", ShareGrant{}, false},
		{"future expiry", ShareGrant{ExpiresAt: &future}, false},
		{"past expiry", ShareGrant{ExpiresAt: &past}, true},
		{"expiry exactly now", ShareGrant{ExpiresAt: &now}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grant.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShareLink_Expired(t *testing.T) {
	now := time.Now()

	link := ShareLink{ExpiresAt: now.Add(time.Minute)}
	if link.Expired(now) {
		t.Error("link with future expiry should not be expired")
	}
	if !link.Expired(now.Add(2 * time.Minute)) {
		t.Error("link should be expired after its expiry time")
	}
}
