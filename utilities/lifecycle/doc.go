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
Package lifecycle evaluates S3 bucket lifecycle configuration compliance

What

A bucket complies when every lifecycle transition moves objects after the
expected number of days to the expected storage class.

Decision order, first match wins

- the resource is not an S3 bucket: NOT_APPLICABLE.

- the configuration item reports a deleted resource: NOT_APPLICABLE.

- no lifecycle rule list: NON_COMPLIANT.

- first transition with other days or another storage class: NON_COMPLIANT.

- otherwise: COMPLIANT, including rules that have no transitions.

The evaluation is a pure function: no I/O, no state kept between calls.
*/
package lifecycle
