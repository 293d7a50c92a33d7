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
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// ResolveConfigurationItem returns the configuration item a notification is about
// Oversized notifications only carry a summary, the item is then read from the config history
func ResolveConfigurationItem(ctx context.Context, api ConfigServiceAPI, invokingEvent InvokingEvent) (item ConfigurationItem, err error) {
	switch invokingEvent.MessageType {
	case MessageTypeConfigurationItemChange:
		if invokingEvent.ConfigurationItem == nil {
			return item, fmt.Errorf("%w: %s without configurationItem", ErrNoConfigurationItem, invokingEvent.MessageType)
		}
		return *invokingEvent.ConfigurationItem, nil
	case MessageTypeOversizedConfigurationItemChange:
		if invokingEvent.ConfigurationItemSummary == nil {
			return item, fmt.Errorf("%w: %s without configurationItemSummary", ErrNoConfigurationItem, invokingEvent.MessageType)
		}
		return getConfigurationItem(ctx, api, *invokingEvent.ConfigurationItemSummary)
	default:
		return item, fmt.Errorf("%w: '%s'", ErrUnsupportedMessageType, invokingEvent.MessageType)
	}
}

func getConfigurationItem(ctx context.Context, api ConfigServiceAPI, summary ConfigurationItemSummary) (item ConfigurationItem, err error) {
	input := &configservice.GetResourceConfigHistoryInput{
		ResourceType: types.ResourceType(summary.ResourceType),
		ResourceId:   aws.String(summary.ResourceID),
	}
	if !summary.ConfigurationItemCaptureTime.IsZero() {
		input.LaterTime = aws.Time(summary.ConfigurationItemCaptureTime)
	}
	output, err := api.GetResourceConfigHistory(ctx, input)
	if err != nil {
		return item, fmt.Errorf("configservice.GetResourceConfigHistory %s %s: %w", summary.ResourceType, summary.ResourceID, err)
	}
	if len(output.ConfigurationItems) == 0 {
		return item, fmt.Errorf("%w: %s %s", ErrNoConfigurationItem, summary.ResourceType, summary.ResourceID)
	}
	// most recent first
	return convertConfigurationItem(output.ConfigurationItems[0]), nil
}

func convertConfigurationItem(apiItem types.ConfigurationItem) ConfigurationItem {
	item := ConfigurationItem{
		ResourceType:                 string(apiItem.ResourceType),
		ResourceID:                   aws.ToString(apiItem.ResourceId),
		ResourceName:                 aws.ToString(apiItem.ResourceName),
		ARN:                          aws.ToString(apiItem.Arn),
		AWSRegion:                    aws.ToString(apiItem.AwsRegion),
		AWSAccountID:                 aws.ToString(apiItem.AccountId),
		ConfigurationItemStatus:      string(apiItem.ConfigurationItemStatus),
		ConfigurationItemCaptureTime: aws.ToTime(apiItem.ConfigurationItemCaptureTime),
		SupplementaryConfiguration:   make(map[string]json.RawMessage, len(apiItem.SupplementaryConfiguration)),
	}
	if apiItem.Configuration != nil {
		item.Configuration = json.RawMessage(*apiItem.Configuration)
	}
	for sectionName, sectionJSON := range apiItem.SupplementaryConfiguration {
		item.SupplementaryConfiguration[sectionName] = json.RawMessage(sectionJSON)
	}
	return item
}
