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

package awscfg

import (
	"encoding/json"
	"fmt"
)

// ParseInvokingEvent decode the invokingEvent string of a config rule event
func ParseInvokingEvent(invokingEventJSON string) (invokingEvent InvokingEvent, err error) {
	if invokingEventJSON == "" {
		return invokingEvent, fmt.Errorf("invokingEvent is empty")
	}
	err = json.Unmarshal([]byte(invokingEventJSON), &invokingEvent)
	if err != nil {
		return invokingEvent, fmt.Errorf("json.Unmarshal(invokingEvent) %w", err)
	}
	return invokingEvent, nil
}
