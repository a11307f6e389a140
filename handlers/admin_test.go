package handlers

import (
	"testing"

	"mentorhub/config"
)

func TestAdminCredentialsValid(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()

	cases := []struct {
		name      string
		cfgEmail  string
		cfgPass   string
		email     string
		password  string
		wantValid bool
	}{
		{"matching credential", "ops@mentorhub.io", "s3cret", "ops@mentorhub.io", "s3cret", true},
		{"wrong password", "ops@mentorhub.io", "s3cret", "ops@mentorhub.io", "nope", false},
		{"wrong email", "ops@mentorhub.io", "s3cret", "other@mentorhub.io", "s3cret", false},
		{"unconfigured stays closed", "", "", "", "", false},
		{"password alone not enough", "ops@mentorhub.io", "", "ops@mentorhub.io", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config.AppConfig.AdminEmail = tc.cfgEmail
			config.AppConfig.AdminPassword = tc.cfgPass

			if got := adminCredentialsValid(tc.email, tc.password); got != tc.wantValid {
				t.Fatalf("adminCredentialsValid(%q, %q) = %v, want %v", tc.email, tc.password, got, tc.wantValid)
			}
		})
	}
}
