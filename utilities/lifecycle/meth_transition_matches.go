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

import (
	"encoding/json"
	"fmt"
)

// matches compares days by numeric value, 30 and 30.0 are equal, "30" is not
func (transition Transition) matches(policy Policy) bool {
	if transition.Days == nil || transition.StorageClass == nil || transition.Days.Quoted {
		return false
	}
	if *transition.StorageClass != policy.ExpectedStorageClass {
		return false
	}
	return daysEqual(transition.Days.Value, policy.ExpectedDays)
}

func (transition Transition) describe() string {
	days := noneValue
	if transition.Days != nil {
		days = transition.Days.String()
	}
	storageClass := noneValue
	if transition.StorageClass != nil {
		storageClass = *transition.StorageClass
	}
	return fmt.Sprintf("%s days & storage class %s", days, storageClass)
}

func daysEqual(days json.Number, expectedDays int64) bool {
	if i, err := days.Int64(); err == nil {
		return i == expectedDays
	}
	f, err := days.Float64()
	if err != nil {
		return false
	}
	return f == float64(expectedDays)
}
