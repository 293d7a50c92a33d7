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
	"time"

	"github.com/BrunoReboul/ramconfigrule/utilities/lifecycle"
)

// InvokingEvent the invokingEvent JSON string of an AWS Config rule event
type InvokingEvent struct {
	MessageType              string                    `json:"messageType"`
	ConfigurationItem        *ConfigurationItem        `json:"configurationItem"`
	ConfigurationItemSummary *ConfigurationItemSummary `json:"configurationItemSummary"`
	NotificationCreationTime time.Time                 `json:"notificationCreationTime"`
	RecordVersion            string                    `json:"recordVersion"`
}

// ConfigurationItem AWS Config configuration item
type ConfigurationItem struct {
	ResourceType                 string                     `json:"resourceType"`
	ResourceID                   string                     `json:"resourceId"`
	ResourceName                 string                     `json:"resourceName"`
	ARN                          string                     `json:"ARN"`
	AWSRegion                    string                     `json:"awsRegion"`
	AWSAccountID                 string                     `json:"awsAccountId"`
	ConfigurationItemStatus      string                     `json:"configurationItemStatus"`
	ConfigurationItemCaptureTime time.Time                  `json:"configurationItemCaptureTime"`
	Configuration                json.RawMessage            `json:"configuration"`
	SupplementaryConfiguration   map[string]json.RawMessage `json:"supplementaryConfiguration"`
}

// ConfigurationItemSummary carried by oversized notifications instead of the item
type ConfigurationItemSummary struct {
	ResourceType                 string    `json:"resourceType"`
	ResourceID                   string    `json:"resourceId"`
	ResourceName                 string    `json:"resourceName"`
	AWSRegion                    string    `json:"awsRegion"`
	AWSAccountID                 string    `json:"awsAccountId"`
	ConfigurationItemStatus      string    `json:"configurationItemStatus"`
	ConfigurationItemCaptureTime time.Time `json:"configurationItemCaptureTime"`
}

// Snapshot the part of the item the lifecycle evaluation reads
func (item ConfigurationItem) Snapshot() lifecycle.Snapshot {
	return lifecycle.Snapshot{
		ResourceType:               item.ResourceType,
		Status:                     item.ConfigurationItemStatus,
		SupplementaryConfiguration: item.SupplementaryConfiguration,
	}
}
