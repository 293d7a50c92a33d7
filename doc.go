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
Package ramconfigrule S3 bucket lifecycle compliance as an AWS Config custom rule

## What

Evaluate each S3 bucket configuration item recorded by AWS Config against a lifecycle policy: at least one lifecycle rule must exist and every transition must move objects after the expected number of days (30) to the expected storage class (GLACIER). The verdict, NOT_APPLICABLE, NON_COMPLIANT or COMPLIANT with a human readable annotation, is reported back to AWS Config.

## Layout

- cmd/s3lifecycle: the AWS Lambda function
- services/s3lifecycle: cold start initialization and per invocation entry point
- utilities/lifecycle: the pure compliance evaluation
- utilities/awscfg: AWS Config invoking event, configuration item and evaluation plumbing
- utilities: logging, error management, settings reading and validation

## Why

- Archiving cold objects early is where the storage bill goes down
- A non compliance detected when the bucket changes is easier to fix
*/
package ramconfigrule
