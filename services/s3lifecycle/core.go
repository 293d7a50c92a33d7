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
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BrunoReboul/ramconfigrule/utilities/awscfg"
	"github.com/BrunoReboul/ramconfigrule/utilities/erm"
	"github.com/BrunoReboul/ramconfigrule/utilities/lifecycle"
	"github.com/BrunoReboul/ramconfigrule/utilities/logging"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/configservice"
	"github.com/aws/aws-sdk-go-v2/service/configservice/types"
	"github.com/google/uuid"
)

const leftScopeAnnotation = "The resource is no longer in the scope of the rule."

// Global structure for global variables to optimize the lambda function performances
type Global struct {
	configServiceClient  awscfg.ConfigServiceAPI
	ctx                  context.Context
	environment          string
	initFailed           bool
	initID               string
	instanceName         string
	microserviceName     string
	policy               lifecycle.Policy
	transientWaitSeconds time.Duration
}

// Initialize is to be executed once per cold start to optimize the function performances
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.ctx = ctx
	global.initFailed = false
	global.initID = fmt.Sprintf("%v", uuid.New())

	instanceDeployment, err := loadInstanceDeployment(os.LookupEnv)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: serviceName,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("loadInstanceDeployment %v", err),
			InitID:           global.initID,
		})
		global.initFailed = true
		return err
	}

	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName
	global.policy = instanceDeployment.Settings.Service.Policy
	global.transientWaitSeconds = time.Duration(instanceDeployment.Settings.Solution.Hosting.Lambda.TransientWaitSeconds)

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		Description: fmt.Sprintf("expected days %d expected storage class %s",
			global.policy.ExpectedDays, global.policy.ExpectedStorageClass),
		InitID: global.initID,
	})

	configOptions := []func(*config.LoadOptions) error{
		config.WithRetryMode(aws.RetryModeStandard),
		config.WithRetryMaxAttempts(int(instanceDeployment.Settings.Solution.Hosting.Lambda.RetryMaxAttempts)),
	}
	if instanceDeployment.Settings.Solution.Hosting.Region != "" {
		configOptions = append(configOptions, config.WithRegion(instanceDeployment.Settings.Solution.Hosting.Region))
	}
	// the client is initialized once as it should persist between function invocations
	cfg, err := config.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "init_failed",
			Description:      fmt.Sprintf("config.LoadDefaultConfig %v", err),
			InitID:           global.initID,
		})
		global.initFailed = true
		return err
	}
	global.configServiceClient = configservice.NewFromConfig(cfg)
	return nil
}

// EntryPoint is the function to be executed for each lambda function invocation
func EntryPoint(ctxEvent context.Context, configEvent events.ConfigEvent, global *Global) error {
	requestID := getRequestID(ctxEvent)
	if global.initFailed {
		log.Println(global.newEntry(requestID, configEvent, "CRITICAL", "noretry", "init function failed"))
		return nil // NO RETRY
	}

	invokingEvent, err := awscfg.ParseInvokingEvent(configEvent.InvokingEvent)
	if err != nil {
		log.Println(global.newEntry(requestID, configEvent, "CRITICAL", "noretry", fmt.Sprintf("awscfg.ParseInvokingEvent %v", err)))
		return nil // NO RETRY
	}

	now := time.Now()
	startEntry := global.newEntry(requestID, configEvent, "NOTICE", "start", "")
	startEntry.Now = &now
	startEntry.MessageType = invokingEvent.MessageType
	if !invokingEvent.NotificationCreationTime.IsZero() {
		startEntry.NotificationCreationTime = &invokingEvent.NotificationCreationTime
		startEntry.NotificationAgeSeconds = now.Sub(invokingEvent.NotificationCreationTime).Seconds()
	}
	log.Println(startEntry)

	item, err := awscfg.ResolveConfigurationItem(ctxEvent, global.configServiceClient, invokingEvent)
	if err != nil {
		if errors.Is(err, awscfg.ErrUnsupportedMessageType) || errors.Is(err, awscfg.ErrNoConfigurationItem) {
			log.Println(global.newEntry(requestID, configEvent, "CRITICAL", "noretry", fmt.Sprintf("awscfg.ResolveConfigurationItem %v", err)))
			return nil // NO RETRY
		}
		return global.redoOnTransient(err, global.newEntry(requestID, configEvent, "", "", "awscfg.ResolveConfigurationItem"))
	}

	var verdict lifecycle.Verdict
	if configEvent.EventLeftScope {
		verdict.ComplianceType = lifecycle.NotApplicable
		verdict.Annotation = leftScopeAnnotation
	} else {
		verdict, err = lifecycle.EvaluateCompliance(item.Snapshot(), global.policy)
		if err != nil {
			entry := global.newEntry(requestID, configEvent, "CRITICAL", "noretry", fmt.Sprintf("lifecycle.EvaluateCompliance %v", err))
			entry.ResourceType = item.ResourceType
			entry.ResourceID = item.ResourceID
			log.Println(entry)
			return nil // NO RETRY
		}
	}

	evaluation := awscfg.MakeEvaluation(item, verdict, invokingEvent.NotificationCreationTime)
	if awscfg.IsTestMode(configEvent.ResultToken) {
		log.Println(global.newEntry(requestID, configEvent, "NOTICE", "testmode", "evaluation not sent to AWS Config"))
	}
	err = awscfg.PutEvaluations(ctxEvent, global.configServiceClient, []types.Evaluation{evaluation}, configEvent.ResultToken)
	if err != nil {
		return global.redoOnTransient(err, global.newEntry(requestID, configEvent, "", "", "awscfg.PutEvaluations"))
	}

	finish := time.Now()
	finishEntry := global.newEntry(requestID, configEvent, "NOTICE", "finish", "")
	finishEntry.Now = &finish
	finishEntry.MessageType = invokingEvent.MessageType
	finishEntry.ResourceType = item.ResourceType
	finishEntry.ResourceID = item.ResourceID
	finishEntry.ComplianceType = string(verdict.ComplianceType)
	finishEntry.Annotation = aws.ToString(evaluation.Annotation)
	finishEntry.LatencySeconds = finish.Sub(now).Seconds()
	log.Println(finishEntry)
	return nil
}

// redoOnTransient returns the error to get the invocation retried only when it is transient
func (global *Global) redoOnTransient(err error, entry logging.Entry) error {
	entry.Severity = "CRITICAL"
	entry.Description = fmt.Sprintf("%s %v", entry.Description, err)
	if erm.IsNotTransientElseWait(err, global.transientWaitSeconds) {
		entry.Message = "noretry"
		log.Println(entry)
		return nil // NO RETRY
	}
	entry.Message = "redo_on_transient"
	log.Println(entry)
	return err // RETRY
}

func (global *Global) newEntry(requestID string, configEvent events.ConfigEvent, severity string, message string, description string) logging.Entry {
	return logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         severity,
		Message:          message,
		Description:      description,
		InitID:           global.initID,
		RequestID:        requestID,
		ConfigRuleName:   configEvent.ConfigRuleName,
	}
}

func getRequestID(ctx context.Context) string {
	if lambdaContext, ok := lambdacontext.FromContext(ctx); ok && lambdaContext.AwsRequestID != "" {
		return lambdaContext.AwsRequestID
	}
	return fmt.Sprintf("%v", uuid.New())
}
