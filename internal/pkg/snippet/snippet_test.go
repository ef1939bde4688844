//
// Copyright (c) 2020, NVIDIA CORPORATION. All rights reserved.
//
// See LICENSE.txt for license information
//

package snippet

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/gvallee/performance_module/tools/pkg/errors"
)

func TestLoad(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "snippet")
	if err != nil {
		t.Fatalf("unable to create temporary directory: %s", err)
	}
	defer os.RemoveAll(tempDir)

	code := "for (int i = 0; i < 10; i++) {\n\tint x = i * i;\n}\n"
	path := filepath.Join(tempDir, "snippet.c")
	err = ioutil.WriteFile(path, []byte(code), 0644)
	if err != nil {
		t.Fatalf("unable to create %s: %s", path, err)
	}

	content, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %s", err)
	}
	if content != code {
		t.Fatalf("Load() returned %q instead of %q", content, code)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(os.TempDir(), "snippet-that-does-not-exist.c"))
	if err == nil {
		t.Fatalf("Load() succeeded on a missing file")
	}
	perr, ok := err.(*errors.ProfilerError)
	if !ok {
		t.Fatalf("Load() returned %T instead of *errors.ProfilerError", err)
	}
	if !perr.Is(errors.ErrNotFound) {
		t.Fatalf("Load() returned %s instead of a not found error", err)
	}
}
