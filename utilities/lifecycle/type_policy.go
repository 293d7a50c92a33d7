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

package lifecycle

// Policy expected transition settings
type Policy struct {
	ExpectedDays         int64  `yaml:"expectedDays" valid:"isNotZeroValue"`
	ExpectedStorageClass string `yaml:"expectedStorageClass" valid:"isStorageClass"`
}

// NewPolicy returns the default policy: 30 days to GLACIER
func NewPolicy() Policy {
	return Policy{
		ExpectedDays:         DefaultExpectedDays,
		ExpectedStorageClass: DefaultExpectedStorageClass,
	}
}
