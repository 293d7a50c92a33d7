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

/*
Package s3lifecycle check S3 bucket lifecycle rules compliance as an AWS Config custom rule

Triggered by

AWS Config configuration item change notifications, including oversized ones, invoking the Lambda function.

Instances

- one per policy: expected transition days and storage class.

Output

- one evaluation per invocation sent with configservice PutEvaluations.

Cardinality

- one-one: one configuration item, one evaluation.

Automatic retrying

Yes on transient AWS API errors, the error is returned so that Lambda retries the asynchronous invocation.
No on malformed events or configuration items, logged as CRITICAL noretry.

Settings

- settings.yaml next to the function binary, path overridden by SETTINGS_FILE_PATH.

- ENVIRONMENT, EXPECTED_DAYS, EXPECTED_STORAGE_CLASS environment variables override the file.

Implementation example

 package main
 import (
     "context"

     "github.com/BrunoReboul/ramconfigrule/services/s3lifecycle"
     "github.com/aws/aws-lambda-go/events"
     "github.com/aws/aws-lambda-go/lambda"
 )
 var global s3lifecycle.Global

 func handler(ctx context.Context, configEvent events.ConfigEvent) error {
     return s3lifecycle.EntryPoint(ctx, configEvent, &global)
 }

 func main() {
     s3lifecycle.Initialize(context.Background(), &global)
     lambda.Start(handler)
 }
*/
package s3lifecycle
