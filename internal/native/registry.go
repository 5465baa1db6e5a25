// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// LoaderDynamic is the name of the goffi loader that opens the GLFW shared
// library at runtime.
const LoaderDynamic = "dynamic"

// ErrNoLoader is returned by Open when the requested loader is not registered.
var ErrNoLoader = errors.New("native: no loader registered")

// Loader opens a Library. An empty path means the platform default.
type Loader func(path string) (Library, error)

var loaders = gpucontext.NewRegistry[Loader](
	gpucontext.WithPriority(LoaderDynamic),
)

// RegisterLoader registers a loader under name, replacing any previous one.
func RegisterLoader(name string, l Loader) {
	loaders.Register(name, func() Loader { return l })
}

// UnregisterLoader removes a loader. This is useful for testing.
func UnregisterLoader(name string) {
	loaders.Unregister(name)
}

// Loaders returns the registered loader names.
func Loaders() []string {
	return loaders.Available()
}

// Open loads a Library with the named loader, or with the highest-priority
// registered loader when name is empty.
func Open(name, path string) (Library, error) {
	if name == "" {
		name = loaders.BestName()
	}
	if name == "" || !loaders.Has(name) {
		return nil, fmt.Errorf("%w: %q", ErrNoLoader, name)
	}
	return loaders.Get(name)(path)
}
