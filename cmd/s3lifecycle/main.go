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

// Command s3lifecycle is the AWS Lambda function of the S3 bucket lifecycle custom AWS Config rule
package main

import (
	"context"

	"github.com/BrunoReboul/ramconfigrule/services/s3lifecycle"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var global s3lifecycle.Global

func init() {
	// initialization failure is logged and then reported by each invocation as noretry
	_ = s3lifecycle.Initialize(context.Background(), &global)
}

func handler(ctx context.Context, configEvent events.ConfigEvent) error {
	return s3lifecycle.EntryPoint(ctx, configEvent, &global)
}

func main() {
	lambda.Start(handler)
}
