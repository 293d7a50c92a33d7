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
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
)

// IsTestMode the result token does not come from AWS Config
func IsTestMode(resultToken string) bool {
	return resultToken == TestModeResultToken
}

// PutEvaluations submit evaluations with the result token of the invoking event
// Nothing is sent in test mode
func PutEvaluations(ctx context.Context, api ConfigServiceAPI, evaluations []types.Evaluation, resultToken string) error {
	if IsTestMode(resultToken) {
		return nil
	}
	output, err := api.PutEvaluations(ctx, &configservice.PutEvaluationsInput{
		Evaluations: evaluations,
		ResultToken: aws.String(resultToken),
	})
	if err != nil {
		return fmt.Errorf("configservice.PutEvaluations: %w", err)
	}
	if len(output.FailedEvaluations) > 0 {
		failed := output.FailedEvaluations[0]
		return fmt.Errorf("%w: %d of %d, first %s %s",
			ErrFailedEvaluations,
			len(output.FailedEvaluations),
			len(evaluations),
			aws.ToString(failed.ComplianceResourceType),
			aws.ToString(failed.ComplianceResourceId))
	}
	return nil
}
