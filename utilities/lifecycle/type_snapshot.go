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
	"errors"
	"strconv"
)

// ErrMalformedSnapshot the configuration item misses a field the evaluation needs
var ErrMalformedSnapshot = errors.New("malformed configuration snapshot")

// Snapshot point in time configuration of one resource
type Snapshot struct {
	ResourceType               string
	Status                     string
	SupplementaryConfiguration map[string]json.RawMessage
}

// bucketLifecycleConfiguration supplementary configuration section content
// Rules is nil when the rules key is absent or null
type bucketLifecycleConfiguration struct {
	Rules []Rule `json:"rules"`
}

// Rule bucket lifecycle rule
type Rule struct {
	ID          string       `json:"id"`
	Status      string       `json:"status"`
	Prefix      string       `json:"prefix,omitempty"`
	Transitions []Transition `json:"transitions"`
}

// Transition move objects to StorageClass after Days
// Days is nil for date based transitions
type Transition struct {
	Days         *Days   `json:"days"`
	StorageClass *string `json:"storageClass"`
}

// Days transition age as found in the configuration item
// Quoted is true when the item carries a JSON string instead of a number, it never matches a policy
type Days struct {
	Value  json.Number
	Quoted bool
}

// UnmarshalJSON keeps a quoted value apart from a number
func (days *Days) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		days.Value = json.Number(text)
		days.Quoted = true
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	days.Value = number
	days.Quoted = false
	return nil
}

// String renders a quoted value with its quotes
func (days Days) String() string {
	if days.Quoted {
		return strconv.Quote(days.Value.String())
	}
	return days.Value.String()
}
