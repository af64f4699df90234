// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testStruct struct {
	A string
	B float32
}

func TestYAML(t *testing.T) {
	s := &testStruct{A: "aaa", B: 3.14}
	b, err := WriteBytes(s)
	assert.NoError(t, err)

	tpath := filepath.Join(t.TempDir(), "test.yaml")
	assert.NoError(t, os.WriteFile(tpath, b, 0o644))

	a := &testStruct{}
	assert.NoError(t, Open(a, tpath))
	if *a != *s {
		t.Errorf("Open failed to read same data as WriteBytes produced: wanted %v != got %v", s, a)
	}
}
