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
	"time"

	"github.com/BrunoReboul/ramconfigrule/utilities/lifecycle"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// MakeEvaluation craft the evaluation record of one configuration item
// The ordering timestamp is the item capture time, else the notification creation time, else now
func MakeEvaluation(item ConfigurationItem, verdict lifecycle.Verdict, notificationCreationTime time.Time) types.Evaluation {
	return types.Evaluation{
		ComplianceResourceType: aws.String(item.ResourceType),
		ComplianceResourceId:   aws.String(item.ResourceID),
		ComplianceType:         types.ComplianceType(verdict.ComplianceType),
		Annotation:             aws.String(TruncateAnnotation(verdict.Annotation)),
		OrderingTimestamp:      aws.Time(getOrderingTimestamp(item, notificationCreationTime)),
	}
}

func getOrderingTimestamp(item ConfigurationItem, notificationCreationTime time.Time) time.Time {
	if !item.ConfigurationItemCaptureTime.IsZero() {
		return item.ConfigurationItemCaptureTime
	}
	if !notificationCreationTime.IsZero() {
		return notificationCreationTime
	}
	return time.Now().UTC()
}

// TruncateAnnotation shorten an annotation to the length PutEvaluations accepts
func TruncateAnnotation(annotation string) string {
	runes := []rune(annotation)
	if len(runes) <= maxAnnotationLength {
		return annotation
	}
	return string(runes[:maxAnnotationLength-3]) + "..."
}
