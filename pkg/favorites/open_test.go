// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package favorites

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSelectsFileWithoutDSN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favs.json")

	repo, closeFn, err := Open(context.Background(), path, "")
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer func() { assert.NoError(t, closeFn()) }()

	fr, ok := repo.(*FileRepository)
	require.True(t, ok, "expected *FileRepository, got %T", repo)
	assert.Equal(t, path, fr.Path())
}

func TestOpenDefaultsFilePath(t *testing.T) {
	repo, _, err := Open(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, repo.(*FileRepository).Path())
}

func TestOpenUnreachableDatabase(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, closeFn, err := Open(ctx, "", "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	require.Error(t, err)
	assert.NoError(t, closeFn())
}
