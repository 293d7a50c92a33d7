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
	"github.com/BrunoReboul/ramconfigrule/utilities/lifecycle"
	"github.com/BrunoReboul/ramconfigrule/utilities/solution"
)

const (
	defaultSettingsFilePath = "./settings.yaml"
	serviceName             = "s3lifecycle"
)

// InstanceDeployment settings structure
type InstanceDeployment struct {
	Core struct {
		EnvironmentName string `yaml:"environmentName"`
		InstanceName    string `yaml:"instanceName"`
		ServiceName     string `yaml:"serviceName" valid:"isNotZeroValue"`
	} `yaml:"core"`
	Settings Settings `yaml:"settings"`
}

// Settings flat settings structure: solution - service
type Settings struct {
	Solution solution.Settings `yaml:"solution"`
	Service  ServiceSettings   `yaml:"service"`
}

// ServiceSettings defines service settings common to all service instances
type ServiceSettings struct {
	Policy lifecycle.Policy `yaml:"policy"`
}

// NewInstanceDeployment create deployment structure with the default policy
func NewInstanceDeployment() *InstanceDeployment {
	instanceDeployment := &InstanceDeployment{}
	instanceDeployment.Core.ServiceName = serviceName
	instanceDeployment.Settings.Service.Policy = lifecycle.NewPolicy()
	return instanceDeployment
}
