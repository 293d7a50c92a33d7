// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package s3lifecycle

import (
	"os"
	"path/filepath"
	"testing"
)

const testSettingsYAML = `core:
  environmentName: dev
  instanceName: s3lifecycle-dev
settings:
  solution:
    hosting:
      accountIDs:
        dev: "111111111111"
        prd: "222222222222"
      regions:
        dev: eu-west-1
        prd: us-east-1
      lambda:
        transientWaitSeconds: 2
  service:
    policy:
      expectedDays: 60
      expectedStorageClass: DEEP_ARCHIVE
`

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	settingsFilePath := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(settingsFilePath, []byte(content), 0644); err != nil {
		t.Fatalf("os.WriteFile %v", err)
	}
	return settingsFilePath
}

func TestUnitLoadInstanceDeployment(t *testing.T) {
	settingsFilePath := writeSettingsFile(t, testSettingsYAML)
	testCases := []struct {
		name                     string
		env                      map[string]string
		wantEnvironmentName      string
		wantInstanceName         string
		wantRegion               string
		wantExpectedDays         int64
		wantExpectedStorageClass string
		wantRetryMaxAttempts     int64
	}{
		{
			name:                     "defaults_without_settings_file",
			env:                      map[string]string{"SETTINGS_FILE_PATH": filepath.Join(t.TempDir(), "missing.yaml"), "AWS_LAMBDA_FUNCTION_NAME": "my-function"},
			wantInstanceName:         "my-function",
			wantExpectedDays:         30,
			wantExpectedStorageClass: "GLACIER",
			wantRetryMaxAttempts:     3,
		},
		{
			name:                     "settings_file",
			env:                      map[string]string{"SETTINGS_FILE_PATH": settingsFilePath},
			wantEnvironmentName:      "dev",
			wantInstanceName:         "s3lifecycle-dev",
			wantRegion:               "eu-west-1",
			wantExpectedDays:         60,
			wantExpectedStorageClass: "DEEP_ARCHIVE",
			wantRetryMaxAttempts:     3,
		},
		{
			name: "environment_overrides",
			env: map[string]string{
				"SETTINGS_FILE_PATH":     settingsFilePath,
				"ENVIRONMENT":            "prd",
				"EXPECTED_DAYS":          "90",
				"EXPECTED_STORAGE_CLASS": "GLACIER_IR",
			},
			wantEnvironmentName:      "prd",
			wantInstanceName:         "s3lifecycle-dev",
			wantRegion:               "us-east-1",
			wantExpectedDays:         90,
			wantExpectedStorageClass: "GLACIER_IR",
			wantRetryMaxAttempts:     3,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lookupEnv := func(key string) (string, bool) {
				value, ok := tc.env[key]
				return value, ok
			}
			instanceDeployment, err := loadInstanceDeployment(lookupEnv)
			if err != nil {
				t.Fatalf("Want no error got %v", err)
			}
			if instanceDeployment.Core.EnvironmentName != tc.wantEnvironmentName {
				t.Errorf("Want environment '%s' got '%s'", tc.wantEnvironmentName, instanceDeployment.Core.EnvironmentName)
			}
			if instanceDeployment.Core.InstanceName != tc.wantInstanceName {
				t.Errorf("Want instance name '%s' got '%s'", tc.wantInstanceName, instanceDeployment.Core.InstanceName)
			}
			if instanceDeployment.Core.ServiceName != serviceName {
				t.Errorf("Want service name '%s' got '%s'", serviceName, instanceDeployment.Core.ServiceName)
			}
			if instanceDeployment.Settings.Solution.Hosting.Region != tc.wantRegion {
				t.Errorf("Want region '%s' got '%s'", tc.wantRegion, instanceDeployment.Settings.Solution.Hosting.Region)
			}
			policy := instanceDeployment.Settings.Service.Policy
			if policy.ExpectedDays != tc.wantExpectedDays {
				t.Errorf("Want expected days %d got %d", tc.wantExpectedDays, policy.ExpectedDays)
			}
			if policy.ExpectedStorageClass != tc.wantExpectedStorageClass {
				t.Errorf("Want expected storage class '%s' got '%s'", tc.wantExpectedStorageClass, policy.ExpectedStorageClass)
			}
			if instanceDeployment.Settings.Solution.Hosting.Lambda.RetryMaxAttempts != tc.wantRetryMaxAttempts {
				t.Errorf("Want retry max attempts %d got %d", tc.wantRetryMaxAttempts, instanceDeployment.Settings.Solution.Hosting.Lambda.RetryMaxAttempts)
			}
		})
	}
}

func TestUnitLoadInstanceDeploymentErrors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "days_not_a_number",
			env:  map[string]string{"SETTINGS_FILE_PATH": "missing.yaml", "EXPECTED_DAYS": "thirty"},
		},
		{
			name: "days_zero",
			env:  map[string]string{"SETTINGS_FILE_PATH": "missing.yaml", "EXPECTED_DAYS": "0"},
		},
		{
			name: "unknown_storage_class",
			env:  map[string]string{"SETTINGS_FILE_PATH": "missing.yaml", "EXPECTED_STORAGE_CLASS": "GLACIERS"},
		},
		{
			name: "settings_file_unknown_storage_class",
			env:  map[string]string{"SETTINGS_FILE_PATH": writeSettingsFile(t, "settings:\n  service:\n    policy:\n      expectedDays: 30\n      expectedStorageClass: GLACIERS\n")},
		},
		{
			name: "settings_file_zero_days",
			env:  map[string]string{"SETTINGS_FILE_PATH": writeSettingsFile(t, "settings:\n  service:\n    policy:\n      expectedDays: 0\n      expectedStorageClass: GLACIER\n")},
		},
		{
			name: "unknown_yaml_field",
			env:  map[string]string{"SETTINGS_FILE_PATH": writeSettingsFile(t, "core:\n  unknownField: x\n")},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			lookupEnv := func(key string) (string, bool) {
				value, ok := tc.env[key]
				return value, ok
			}
			if _, err := loadInstanceDeployment(lookupEnv); err == nil {
				t.Errorf("Want an error got nil")
			}
		})
	}
}
