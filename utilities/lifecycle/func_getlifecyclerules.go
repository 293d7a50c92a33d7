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
	"bytes"
	"encoding/json"
	"fmt"
)

// getLifecycleRules extract the rule list from the supplementary configuration
// Returns nil rules when the lifecycle section or its rules key is absent
func getLifecycleRules(supplementaryConfiguration map[string]json.RawMessage) ([]Rule, error) {
	if supplementaryConfiguration == nil {
		return nil, fmt.Errorf("%w: supplementaryConfiguration is missing", ErrMalformedSnapshot)
	}
	section, ok := supplementaryConfiguration[BucketLifecycleConfigurationSectionName]
	if !ok {
		return nil, nil
	}
	section = bytes.TrimSpace(section)
	if len(section) == 0 || bytes.Equal(section, []byte("null")) {
		return nil, nil
	}
	// config history API returns sections as JSON encoded strings
	if section[0] == '"' {
		var encoded string
		if err := json.Unmarshal(section, &encoded); err != nil {
			return nil, fmt.Errorf("%w: %s section %v", ErrMalformedSnapshot, BucketLifecycleConfigurationSectionName, err)
		}
		return getLifecycleRules(map[string]json.RawMessage{
			BucketLifecycleConfigurationSectionName: json.RawMessage(encoded),
		})
	}

	var lifecycleConfiguration bucketLifecycleConfiguration
	if err := json.Unmarshal(section, &lifecycleConfiguration); err != nil {
		return nil, fmt.Errorf("%w: %s section %v", ErrMalformedSnapshot, BucketLifecycleConfigurationSectionName, err)
	}
	return lifecycleConfiguration.Rules, nil
}
