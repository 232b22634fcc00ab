// Package module builds invocation forms for Move functions.
package module

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/suiexplorer-backend/internal/sui/model"
)

// ErrInvalidReference is returned when a package, module or function name is missing.
var ErrInvalidReference = errors.New("invalid function reference")

// Function is a Move function together with its normalized signature.
type Function struct {
	PackageID model.ObjectID           `json:"packageId"`
	Module    string                   `json:"moduleName"`
	Name      string                   `json:"functionName"`
	Details   model.NormalizedFunction `json:"functionDetails"`
}

// Resolve fetches the signature of packageID::module::name.
func Resolve(ctx context.Context, fetcher FunctionFetcher, packageID model.ObjectID, module, name string) (Function, error) {
	if strings.TrimSpace(string(packageID)) == "" || strings.TrimSpace(module) == "" || strings.TrimSpace(name) == "" {
		return Function{}, ErrInvalidReference
	}
	details, err := fetcher.GetNormalizedMoveFunction(ctx, packageID, module, name)
	if err != nil {
		return Function{}, fmt.Errorf("resolve %s::%s::%s: %w", packageID, module, name, err)
	}
	return Function{
		PackageID: packageID,
		Module:    module,
		Name:      name,
		Details:   *details,
	}, nil
}
