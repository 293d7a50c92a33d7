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
	"errors"
)

// AWS Config notification message types
const (
	MessageTypeConfigurationItemChange         = "ConfigurationItemChangeNotification"
	MessageTypeOversizedConfigurationItemChange = "OversizedConfigurationItemChangeNotification"
	MessageTypeScheduled                       = "ScheduledNotification"
)

// TestModeResultToken result token used when the rule is invoked outside of AWS Config
const TestModeResultToken = "TESTMODE"

// maxAnnotationLength PutEvaluations rejects longer annotations
const maxAnnotationLength = 256

var (
	// ErrUnsupportedMessageType the notification does not carry a configuration item
	ErrUnsupportedMessageType = errors.New("unsupported message type")
	// ErrNoConfigurationItem the config history holds no item for the resource
	ErrNoConfigurationItem = errors.New("no configuration item found")
	// ErrFailedEvaluations AWS Config refused some evaluations
	ErrFailedEvaluations = errors.New("failed evaluations")
)
