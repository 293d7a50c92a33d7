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

package solution

const defaultRetryMaxAttempts = 3

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: accountID, region, and default lambda retry attempts
func (settings *Settings) Situate(environmentName string) {
	if accountID, ok := settings.Hosting.AccountIDs[environmentName]; ok {
		settings.Hosting.AccountID = accountID
	}
	if region, ok := settings.Hosting.Regions[environmentName]; ok {
		settings.Hosting.Region = region
	}
	if settings.Hosting.Lambda.RetryMaxAttempts == 0 {
		settings.Hosting.Lambda.RetryMaxAttempts = defaultRetryMaxAttempts
	}
}
