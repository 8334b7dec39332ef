package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIsValidAssetStatus(t *testing.T) {
	for _, s := range AssetStatuses {
		if !IsValidAssetStatus(s) {
			t.Errorf("IsValidAssetStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "available", "Broken", "ASSIGNED"} {
		if IsValidAssetStatus(s) {
			t.Errorf("IsValidAssetStatus(%q) = true, want false", s)
		}
	}
}

func TestSubDepartmentsFor(t *testing.T) {
	tests := []struct {
		departmentType string
		wantFirst      string
		wantOK         bool
	}{
		{"IT", "Hardware IT", true},
		{"it", "Hardware IT", true},
		{"ITDepartment", "Hardware IT", true},
		{"NonIT", "HR", true},
		{"nonitdepartment", "HR", true},
		{"Sales", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		subs, ok := SubDepartmentsFor(tt.departmentType)
		if ok != tt.wantOK {
			t.Errorf("SubDepartmentsFor(%q) ok = %v, want %v", tt.departmentType, ok, tt.wantOK)
			continue
		}
		if ok && subs[0] != tt.wantFirst {
			t.Errorf("SubDepartmentsFor(%q)[0] = %q, want %q", tt.departmentType, subs[0], tt.wantFirst)
		}
	}
}

func TestUser_Redacted(t *testing.T) {
	u := User{ID: 1, Email: "x@example.com", PasswordHash: "$2a$10$hash"}
	out := u.Redacted()
	if out.PasswordHash != "" {
		t.Error("Redacted() kept the password hash")
	}
	if u.PasswordHash == "" {
		t.Error("Redacted() mutated the receiver")
	}
}

func TestUser_HashNeverMarshals(t *testing.T) {
	u := User{ID: 1, Email: "x@example.com", PasswordHash: "$2a$10$hash"}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "hash") {
		t.Errorf("password hash leaked into JSON: %s", data)
	}
}

func TestEnvelope(t *testing.T) {
	ok, err := json.Marshal(OK(map[string]int{"id": 1}, "Created"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(ok), `"success":true`) {
		t.Errorf("OK envelope = %s", ok)
	}

	fail, err := json.Marshal(Fail("Validation failed", "name is required"))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	body := string(fail)
	if !strings.Contains(body, `"success":false`) || !strings.Contains(body, "name is required") {
		t.Errorf("Fail envelope = %s", body)
	}
	if strings.Contains(body, `"data"`) {
		t.Errorf("Fail envelope carries a data key: %s", body)
	}
}
