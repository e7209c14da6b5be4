// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import "strings"

// Mapping describes how a well-known SDK name resolves to Go module source.
//
// ImportName is the package whose tree is walked, ModulePath the module that
// contains it (used to locate the source in the module cache), InstallCmd a
// hint surfaced when the source cannot be found, and MainTypes an optional
// allowlist of client types to focus on. An empty MainTypes walks every
// exported type, which is the right behavior for service-object SDKs such as
// go-github where the interesting methods are spread across many types.
type Mapping struct {
	ImportName string
	ModulePath string
	InstallCmd string
	MainTypes  []string
}

// mappings contains curated entries for SDKs the converter has been tested
// against, mirroring the name users type on the command line.
var mappings = map[string]Mapping{
	"kubernetes": {
		ImportName: "k8s.io/client-go/kubernetes",
		ModulePath: "k8s.io/client-go",
		InstallCmd: "go get k8s.io/client-go@latest",
		MainTypes:  []string{"PodInterface", "ServiceInterface", "DeploymentInterface", "NamespaceInterface", "ConfigMapInterface", "SecretInterface"},
	},
	"github": {
		ImportName: "github.com/google/go-github/v68/github",
		ModulePath: "github.com/google/go-github/v68",
		InstallCmd: "go get github.com/google/go-github/v68@latest",
	},
	"azure": {
		ImportName: "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6",
		ModulePath: "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6",
		InstallCmd: "go get github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6@latest",
		MainTypes:  []string{"VirtualMachinesClient", "DisksClient", "SnapshotsClient"},
	},
}

// MappingFor returns the mapping for a known SDK name, or a synthetic mapping
// that treats the name as an import path for everything else.
func MappingFor(sdkName string) Mapping {
	if m, ok := mappings[strings.ToLower(sdkName)]; ok {
		return m
	}
	return Mapping{
		ImportName: sdkName,
		ModulePath: sdkName,
		InstallCmd: "go get " + sdkName + "@latest",
	}
}

// KnownSDKs returns the curated SDK names in no particular order.
// The MCP server exposes this list as a static resource.
func KnownSDKs() []string {
	names := make([]string, 0, len(mappings))
	for name := range mappings {
		names = append(names, name)
	}
	return names
}
