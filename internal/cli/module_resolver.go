package cli

import (
	"fmt"

	"github.com/toyz/waypoint/internal/utils"
)

// ModuleResolver picks the namespace prefix for controller identifiers
type ModuleResolver struct{}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{}
}

// ResolveNamespace returns custom when set; otherwise the module path of the
// nearest go.mod at or above startDir
func (r *ModuleResolver) ResolveNamespace(custom, startDir string) (string, error) {
	if custom != "" {
		return custom, nil
	}
	if startDir == "" {
		startDir = "."
	}

	goMod, err := utils.FindGoModFile(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to determine namespace: %w (consider using --namespace)", err)
	}
	return utils.ParseModuleName(goMod)
}
