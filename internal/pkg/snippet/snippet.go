//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

// Package snippet gives access to the code snippets handed to the benchmark runner.
// Snippets are opaque: they are never parsed nor executed.
package snippet

import (
	"fmt"
	"io/ioutil"

	"github.com/gvallee/go_util/pkg/util"
	"github.com/gvallee/performance_module/tools/pkg/errors"
)

// Default is the snippet used when the caller does not provide any
const Default = "dummy code for testing"

// Load reads the content of a snippet file
func Load(path string) (string, error) {
	if !util.FileExists(path) {
		return "", errors.New(errors.ErrNotFound, fmt.Errorf("%s does not exist", path))
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.New(errors.ErrFatal, err)
	}
	return string(content), nil
}
