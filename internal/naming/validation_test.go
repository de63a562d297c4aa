package naming

import (
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "sh010", false},
		{"underscore and dot", "char_hero.v2", false},
		{"empty", "", true},
		{"leading dash", "-sh010", true},
		{"slash", "sq01/sh010", true},
		{"placeholder", "{asset}", true},
		{"too long", strings.Repeat("a", assetNameMaxLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAssetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTaskName(t *testing.T) {
	if err := ValidateTaskName("comp"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateTaskName(strings.Repeat("t", taskNameMaxLength+1)); err == nil {
		t.Error("expected error for long task name")
	}
	if err := ValidateTaskName("my task"); err == nil {
		t.Error("expected error for space")
	}
}

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"Demo Project", false},
		{"demo", false},
		{"", true},
		{"a/b", true},
		{"{project}", true},
		{strings.Repeat("p", projectNameMaxLength+1), true},
	}
	for _, tt := range tests {
		if err := ValidateProjectName(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
