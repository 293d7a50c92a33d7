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

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		AccountID  string            `yaml:"accountID,omitempty"`
		AccountIDs map[string]string `yaml:"accountIDs"`
		Region     string            `yaml:"region,omitempty"`
		Regions    map[string]string `yaml:"regions"`
		Lambda     struct {
			TransientWaitSeconds int64 `yaml:"transientWaitSeconds,omitempty"`
			RetryMaxAttempts     int64 `yaml:"retryMaxAttempts,omitempty" valid:"isNotZeroValue"`
		} `yaml:"lambda"`
	} `yaml:"hosting"`
}
