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

package s3lifecycle

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/BrunoReboul/ramconfigrule/utilities/awscfg"
	"github.com/BrunoReboul/ramconfigrule/utilities/lifecycle"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
	"github.com/aws/smithy-go"
)

type fakeConfigService struct {
	putInputs     []*configservice.PutEvaluationsInput
	putErr        error
	historyInputs []*configservice.GetResourceConfigHistoryInput
	historyOutput *configservice.GetResourceConfigHistoryOutput
}

func (f *fakeConfigService) PutEvaluations(ctx context.Context, params *configservice.PutEvaluationsInput, optFns ...func(*configservice.Options)) (*configservice.PutEvaluationsOutput, error) {
	f.putInputs = append(f.putInputs, params)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &configservice.PutEvaluationsOutput{}, nil
}

func (f *fakeConfigService) GetResourceConfigHistory(ctx context.Context, params *configservice.GetResourceConfigHistoryInput, optFns ...func(*configservice.Options)) (*configservice.GetResourceConfigHistoryOutput, error) {
	f.historyInputs = append(f.historyInputs, params)
	if f.historyOutput == nil {
		return &configservice.GetResourceConfigHistoryOutput{}, nil
	}
	return f.historyOutput, nil
}

func makeInvokingEvent(resourceType string, status string, lifecycleJSON string) string {
	supplementaryConfiguration := "{}"
	if lifecycleJSON != "" {
		supplementaryConfiguration = `{"BucketLifecycleConfiguration": ` + lifecycleJSON + `}`
	}
	return `{
  "configurationItem": {
    "configurationItemCaptureTime": "2016-02-17T01:36:34.043Z",
    "awsAccountId": "123456789012",
    "configurationItemStatus": "` + status + `",
    "resourceType": "` + resourceType + `",
    "resourceId": "my-bucket",
    "resourceName": "my-bucket",
    "ARN": "arn:aws:s3:::my-bucket",
    "awsRegion": "us-east-1",
    "supplementaryConfiguration": ` + supplementaryConfiguration + `
  },
  "notificationCreationTime": "2016-07-13T21:50:00.373Z",
  "messageType": "ConfigurationItemChangeNotification",
  "recordVersion": "1.3"
}`
}

func newTestGlobal(api awscfg.ConfigServiceAPI) *Global {
	return &Global{
		configServiceClient: api,
		ctx:                 context.Background(),
		environment:         "test",
		initID:              "init-id",
		instanceName:        "s3lifecycle-test",
		microserviceName:    serviceName,
		policy:              lifecycle.NewPolicy(),
	}
}

func TestUnitEntryPoint(t *testing.T) {
	testCases := []struct {
		name               string
		configEvent        events.ConfigEvent
		putErr             error
		wantErr            bool
		wantPutCount       int
		wantComplianceType types.ComplianceType
		wantAnnotationPart string
		wantLogPart        string
	}{
		{
			name: "compliant",
			configEvent: events.ConfigEvent{
				ConfigRuleName: "s3-lifecycle",
				InvokingEvent:  makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", `{"rules":[{"id":"r1","status":"Enabled","transitions":[{"days":30,"storageClass":"GLACIER"}]}]}`),
				ResultToken:    "token",
			},
			wantPutCount:       1,
			wantComplianceType: types.ComplianceTypeCompliant,
			wantAnnotationPart: "matches the specified timeframe (30)",
			wantLogPart:        `"message":"finish"`,
		},
		{
			name: "days_mismatch",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", `{"rules":[{"id":"r1","status":"Enabled","transitions":[{"days":45,"storageClass":"GLACIER"}]}]}`),
				ResultToken:   "token",
			},
			wantPutCount:       1,
			wantComplianceType: types.ComplianceTypeNonCompliant,
			wantAnnotationPart: "45 days & storage class GLACIER",
		},
		{
			name: "no_lifecycle",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", ""),
				ResultToken:   "token",
			},
			wantPutCount:       1,
			wantComplianceType: types.ComplianceTypeNonCompliant,
			wantAnnotationPart: "The current lifecycle rule is: None.",
		},
		{
			name: "other_resource_type",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent("AWS::EC2::Instance", "OK", ""),
				ResultToken:   "token",
			},
			wantPutCount:       1,
			wantComplianceType: types.ComplianceTypeNotApplicable,
			wantAnnotationPart: "AWS::EC2::Instance",
		},
		{
			name: "empty_resource_type",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent("", "OK", ""),
				ResultToken:   "token",
			},
			wantPutCount:       1,
			wantComplianceType: types.ComplianceTypeNotApplicable,
			wantAnnotationPart: "resources of type .",
		},
		{
			name: "quoted_days",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", `{"rules":[{"id":"r1","status":"Enabled","transitions":[{"days":"30","storageClass":"GLACIER"}]}]}`),
				ResultToken:   "token",
			},
			wantPutCount:       1,
			wantComplianceType: types.ComplianceTypeNonCompliant,
			wantAnnotationPart: `"30" days & storage class GLACIER`,
		},
		{
			name: "deleted",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, lifecycle.StatusResourceDeleted, ""),
				ResultToken:   "token",
			},
			wantPutCount:       1,
			wantComplianceType: types.ComplianceTypeNotApplicable,
			wantAnnotationPart: "deleted",
		},
		{
			name: "event_left_scope",
			configEvent: events.ConfigEvent{
				EventLeftScope: true,
				InvokingEvent:  makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", ""),
				ResultToken:    "token",
			},
			wantPutCount:       1,
			wantComplianceType: types.ComplianceTypeNotApplicable,
			wantAnnotationPart: leftScopeAnnotation,
		},
		{
			name: "testmode",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", ""),
				ResultToken:   awscfg.TestModeResultToken,
			},
			wantPutCount: 0,
			wantLogPart:  `"message":"testmode"`,
		},
		{
			name: "invalid_invoking_event",
			configEvent: events.ConfigEvent{
				InvokingEvent: "{not json",
				ResultToken:   "token",
			},
			wantPutCount: 0,
			wantLogPart:  `"message":"noretry"`,
		},
		{
			name: "scheduled_notification",
			configEvent: events.ConfigEvent{
				InvokingEvent: `{"messageType":"ScheduledNotification","notificationCreationTime":"2016-07-13T21:50:00.373Z"}`,
				ResultToken:   "token",
			},
			wantPutCount: 0,
			wantLogPart:  `"message":"noretry"`,
		},
		{
			name: "malformed_item",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", `"{not json"`),
				ResultToken:   "token",
			},
			wantPutCount: 0,
			wantLogPart:  "lifecycle.EvaluateCompliance",
		},
		{
			name: "transient_put_error",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", ""),
				ResultToken:   "token",
			},
			putErr:       &smithy.GenericAPIError{Code: "ThrottlingException", Message: "Rate exceeded"},
			wantErr:      true,
			wantPutCount: 1,
			wantLogPart:  `"message":"redo_on_transient"`,
		},
		{
			name: "client_put_error",
			configEvent: events.ConfigEvent{
				InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", ""),
				ResultToken:   "token",
			},
			putErr:       &smithy.GenericAPIError{Code: "InvalidResultTokenException", Message: "bad token", Fault: smithy.FaultClient},
			wantPutCount: 1,
			wantLogPart:  `"message":"noretry"`,
		},
	}
	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	defer log.SetOutput(os.Stderr)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buffer.Reset()
			api := &fakeConfigService{putErr: tc.putErr}
			err := EntryPoint(context.Background(), tc.configEvent, newTestGlobal(api))
			if tc.wantErr && err == nil {
				t.Errorf("Want an error got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Want no error got %v", err)
			}
			if len(api.putInputs) != tc.wantPutCount {
				t.Fatalf("Want %d PutEvaluations calls got %d", tc.wantPutCount, len(api.putInputs))
			}
			if tc.wantPutCount > 0 && tc.wantComplianceType != "" {
				input := api.putInputs[0]
				if aws.ToString(input.ResultToken) != tc.configEvent.ResultToken {
					t.Errorf("Want result token %s got %s", tc.configEvent.ResultToken, aws.ToString(input.ResultToken))
				}
				if len(input.Evaluations) != 1 {
					t.Fatalf("Want 1 evaluation got %d", len(input.Evaluations))
				}
				evaluation := input.Evaluations[0]
				if evaluation.ComplianceType != tc.wantComplianceType {
					t.Errorf("Want compliance type %s got %s", tc.wantComplianceType, evaluation.ComplianceType)
				}
				if !strings.Contains(aws.ToString(evaluation.Annotation), tc.wantAnnotationPart) {
					t.Errorf("Want annotation containing '%s' got '%s'", tc.wantAnnotationPart, aws.ToString(evaluation.Annotation))
				}
				if aws.ToString(evaluation.ComplianceResourceId) != "my-bucket" {
					t.Errorf("Want resource id my-bucket got %s", aws.ToString(evaluation.ComplianceResourceId))
				}
			}
			if tc.wantLogPart != "" && !strings.Contains(buffer.String(), tc.wantLogPart) {
				t.Errorf("Want log containing '%s' got '%s'", tc.wantLogPart, buffer.String())
			}
		})
	}
}

func TestUnitEntryPointOversized(t *testing.T) {
	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	defer log.SetOutput(os.Stderr)

	captureTime := time.Date(2016, 10, 6, 16, 46, 16, 0, time.UTC)
	api := &fakeConfigService{
		historyOutput: &configservice.GetResourceConfigHistoryOutput{
			ConfigurationItems: []types.ConfigurationItem{
				{
					ResourceType:                 types.ResourceTypeBucket,
					ResourceId:                   aws.String("big-bucket"),
					ConfigurationItemStatus:      types.ConfigurationItemStatusOk,
					ConfigurationItemCaptureTime: aws.Time(captureTime),
					SupplementaryConfiguration: map[string]string{
						lifecycle.BucketLifecycleConfigurationSectionName: `{"rules":[{"id":"r1","status":"Enabled","transitions":[{"days":30,"storageClass":"GLACIER"}]}]}`,
					},
				},
			},
		},
	}
	configEvent := events.ConfigEvent{
		InvokingEvent: `{
  "configurationItemSummary": {
    "configurationItemCaptureTime": "2016-10-06T16:46:16.261Z",
    "configurationItemStatus": "OK",
    "resourceType": "AWS::S3::Bucket",
    "resourceId": "big-bucket"
  },
  "messageType": "OversizedConfigurationItemChangeNotification",
  "notificationCreationTime": "2016-10-06T16:46:16.261Z",
  "recordVersion": "1.0"
}`,
		ResultToken: "token",
	}
	err := EntryPoint(context.Background(), configEvent, newTestGlobal(api))
	if err != nil {
		t.Fatalf("Want no error got %v", err)
	}
	if len(api.historyInputs) != 1 {
		t.Fatalf("Want 1 GetResourceConfigHistory call got %d", len(api.historyInputs))
	}
	if aws.ToString(api.historyInputs[0].ResourceId) != "big-bucket" {
		t.Errorf("Want history of big-bucket got %s", aws.ToString(api.historyInputs[0].ResourceId))
	}
	if len(api.putInputs) != 1 {
		t.Fatalf("Want 1 PutEvaluations call got %d", len(api.putInputs))
	}
	evaluation := api.putInputs[0].Evaluations[0]
	if evaluation.ComplianceType != types.ComplianceTypeCompliant {
		t.Errorf("Want %s got %s", types.ComplianceTypeCompliant, evaluation.ComplianceType)
	}
	if !aws.ToTime(evaluation.OrderingTimestamp).Equal(captureTime) {
		t.Errorf("Want ordering timestamp %v got %v", captureTime, aws.ToTime(evaluation.OrderingTimestamp))
	}
}

func TestUnitEntryPointWithoutCaptureTime(t *testing.T) {
	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	defer log.SetOutput(os.Stderr)

	api := &fakeConfigService{}
	configEvent := events.ConfigEvent{
		InvokingEvent: `{
  "configurationItem": {
    "configurationItemStatus": "OK",
    "resourceType": "AWS::S3::Bucket",
    "resourceId": "my-bucket",
    "supplementaryConfiguration": {}
  },
  "notificationCreationTime": "2016-07-13T21:50:00.373Z",
  "messageType": "ConfigurationItemChangeNotification",
  "recordVersion": "1.3"
}`,
		ResultToken: "token",
	}
	if err := EntryPoint(context.Background(), configEvent, newTestGlobal(api)); err != nil {
		t.Fatalf("Want no error got %v", err)
	}
	if len(api.putInputs) != 1 {
		t.Fatalf("Want 1 PutEvaluations call got %d", len(api.putInputs))
	}
	want := time.Date(2016, 7, 13, 21, 50, 0, 373000000, time.UTC)
	got := aws.ToTime(api.putInputs[0].Evaluations[0].OrderingTimestamp)
	if !got.Equal(want) {
		t.Errorf("Want ordering timestamp %v got %v", want, got)
	}
}

func TestUnitEntryPointInitFailed(t *testing.T) {
	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	defer log.SetOutput(os.Stderr)

	api := &fakeConfigService{}
	global := newTestGlobal(api)
	global.initFailed = true
	err := EntryPoint(context.Background(), events.ConfigEvent{
		InvokingEvent: makeInvokingEvent(lifecycle.ResourceTypeS3Bucket, "OK", ""),
		ResultToken:   "token",
	}, global)
	if err != nil {
		t.Errorf("Want no error got %v", err)
	}
	if len(api.putInputs) != 0 {
		t.Errorf("Want no PutEvaluations call got %d", len(api.putInputs))
	}
	if !strings.Contains(buffer.String(), "init function failed") {
		t.Errorf("Want init failure logged got '%s'", buffer.String())
	}
}

func TestUnitRedoOnTransient(t *testing.T) {
	var buffer bytes.Buffer
	log.SetOutput(&buffer)
	defer log.SetOutput(os.Stderr)

	global := newTestGlobal(&fakeConfigService{})
	transientErr := &smithy.GenericAPIError{Code: "ServiceUnavailable", Message: "try later"}
	if err := global.redoOnTransient(transientErr, global.newEntry("req", events.ConfigEvent{}, "", "", "test")); !errors.Is(err, transientErr) {
		t.Errorf("Want the transient error returned got %v", err)
	}
	if err := global.redoOnTransient(errors.New("AccessDenied"), global.newEntry("req", events.ConfigEvent{}, "", "", "test")); err != nil {
		t.Errorf("Want nil on a non transient error got %v", err)
	}
}
