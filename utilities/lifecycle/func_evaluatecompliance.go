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
	"fmt"
)

const mismatchAnnotation = "Bucket Lifecycle Rule(s) do not match specified timeframe (%d) or storage class (%s). The current lifecycle rule is: %s."

// EvaluateCompliance classifies a configuration snapshot against the policy
// The first transition not matching the policy ends the scan
func EvaluateCompliance(snapshot Snapshot, policy Policy) (verdict Verdict, err error) {
	if snapshot.ResourceType != ResourceTypeS3Bucket {
		verdict.ComplianceType = NotApplicable
		verdict.Annotation = fmt.Sprintf("The rule doesn't apply to resources of type %s.", snapshot.ResourceType)
		return verdict, nil
	}
	if isDeleted(snapshot.Status) {
		verdict.ComplianceType = NotApplicable
		verdict.Annotation = "The configurationItem was deleted and therefore cannot be validated."
		return verdict, nil
	}

	rules, err := getLifecycleRules(snapshot.SupplementaryConfiguration)
	if err != nil {
		return verdict, err
	}
	if rules == nil {
		verdict.ComplianceType = NonCompliant
		verdict.Annotation = fmt.Sprintf(mismatchAnnotation, policy.ExpectedDays, policy.ExpectedStorageClass, noneValue)
		return verdict, nil
	}
	for _, rule := range rules {
		for _, transition := range rule.Transitions {
			if !transition.matches(policy) {
				verdict.ComplianceType = NonCompliant
				verdict.Annotation = fmt.Sprintf(mismatchAnnotation, policy.ExpectedDays, policy.ExpectedStorageClass, transition.describe())
				return verdict, nil
			}
		}
	}
	verdict.ComplianceType = Compliant
	verdict.Annotation = fmt.Sprintf("Bucket Lifecycle rule exists and matches the specified timeframe (%d) and storage class (%s).",
		policy.ExpectedDays, policy.ExpectedStorageClass)
	return verdict, nil
}

func isDeleted(status string) bool {
	return status == StatusResourceDeleted || status == StatusResourceDeletedNotRecorded
}
