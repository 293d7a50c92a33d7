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
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"

	"github.com/BrunoReboul/ramconfigrule/utilities/ffo"
	"github.com/BrunoReboul/ramconfigrule/utilities/validater"
)

// loadInstanceDeployment read the settings file when present, apply environment variables, situate and validate
func loadInstanceDeployment(lookupEnv func(string) (string, bool)) (*InstanceDeployment, error) {
	instanceDeployment := NewInstanceDeployment()

	settingsFilePath := defaultSettingsFilePath
	if value, ok := lookupEnv("SETTINGS_FILE_PATH"); ok && value != "" {
		settingsFilePath = value
	}
	err := ffo.ReadUnmarshalYAML(settingsFilePath, instanceDeployment)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ReadUnmarshalYAML %s %v", settingsFilePath, err)
		}
		log.Printf("No settings file %s, using defaults", settingsFilePath)
	}

	if value, ok := lookupEnv("ENVIRONMENT"); ok && value != "" {
		instanceDeployment.Core.EnvironmentName = value
	}
	if instanceDeployment.Core.InstanceName == "" {
		instanceDeployment.Core.InstanceName, _ = lookupEnv("AWS_LAMBDA_FUNCTION_NAME")
	}
	if value, ok := lookupEnv("EXPECTED_DAYS"); ok && value != "" {
		expectedDays, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("Env variable EXPECTED_DAYS cannot be converted to int64: %v", err)
		}
		instanceDeployment.Settings.Service.Policy.ExpectedDays = expectedDays
	}
	if value, ok := lookupEnv("EXPECTED_STORAGE_CLASS"); ok && value != "" {
		instanceDeployment.Settings.Service.Policy.ExpectedStorageClass = value
	}

	instanceDeployment.Settings.Solution.Situate(instanceDeployment.Core.EnvironmentName)
	if err := validater.ValidateStruct(instanceDeployment, "instanceDeployment"); err != nil {
		return nil, err
	}
	return instanceDeployment, nil
}
