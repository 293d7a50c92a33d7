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

package erm

import (
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/BrunoReboul/ramconfigrule/utilities/str"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

var throttlingErrorCodes = []string{
	"Throttling",
	"ThrottlingException",
	"RequestLimitExceeded",
	"TooManyRequestsException",
	"RequestThrottled",
	"ServiceUnavailable",
	"InternalFailure",
}

// transientStatusTexts as rendered by smithy and AWS http response errors
var transientStatusTexts = []string{
	"StatusCode: 429",
	"StatusCode: 500",
	"StatusCode: 501",
	"StatusCode: 502",
	"StatusCode: 503",
	"StatusCode: 504",
	"StatusCode: 505",
	"StatusCode: 506",
	"StatusCode: 507",
	"StatusCode: 508",
	"StatusCode: 510",
	"StatusCode: 511",
}

// IsNotTransientElseWait check if the error is a throttling or a 5xx and wait if it is
func IsNotTransientElseWait(err error, waitSec time.Duration) (isNotTransient bool) {
	isNotTransient = !isTransient(err)
	if !isNotTransient {
		log.Printf("Transient error, wait %d sec and retry %v", waitSec, err)
		time.Sleep(waitSec * time.Second)
	}
	return isNotTransient
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if str.Find(throttlingErrorCodes, apiErr.ErrorCode()) {
			return true
		}
		if apiErr.ErrorFault() == smithy.FaultServer {
			return true
		}
	}
	var responseErr *awshttp.ResponseError
	if errors.As(err, &responseErr) {
		statusCode := responseErr.HTTPStatusCode()
		return statusCode >= http.StatusInternalServerError || statusCode == http.StatusTooManyRequests
	}
	// no response at all: connection reset, DNS, timeout
	var requestSendErr *smithyhttp.RequestSendError
	if errors.As(err, &requestSendErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	erroMessage := err.Error()
	for _, transientStatusText := range transientStatusTexts {
		if strings.Contains(erroMessage, transientStatusText) {
			return true
		}
	}
	return false
}
