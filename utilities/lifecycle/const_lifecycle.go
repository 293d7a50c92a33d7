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

// Monitored resource type and configuration item statuses
const (
	ResourceTypeS3Bucket                    = "AWS::S3::Bucket"
	StatusResourceDeleted                   = "ResourceDeleted"
	StatusResourceDeletedNotRecorded        = "ResourceDeletedNotRecorded"
	BucketLifecycleConfigurationSectionName = "BucketLifecycleConfiguration"
)

// Default policy values
const (
	DefaultExpectedDays         int64 = 30
	DefaultExpectedStorageClass       = "GLACIER"
)

// Compliance classifications
const (
	NotApplicable ComplianceType = "NOT_APPLICABLE"
	NonCompliant  ComplianceType = "NON_COMPLIANT"
	Compliant     ComplianceType = "COMPLIANT"
)

const noneValue = "None"
