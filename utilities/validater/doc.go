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

// Package validater helps to validate struct fields using the "valid" struct tag
//
// Supported tag values
//
// - isNotZeroValue: string, int64 and slices must not be empty.
//
// - isStorageClass: string must be an S3 lifecycle transition storage class.
//
// - "-": do not explore the nested struct.
package validater
