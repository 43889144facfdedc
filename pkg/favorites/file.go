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
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	cerrors "github.com/NVIDIA/cocktail-explorer/pkg/errors"
)

// DefaultFile is the favorites file used when no path is configured. It is
// relative to the working directory.
const DefaultFile = "favorites.json"

// FileRepository stores favorites as an indented JSON array of
// {"id","title"} objects. Writes go to a temporary file in the same
// directory which is then renamed over the target.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

var _ Repository = (*FileRepository)(nil)

// NewFileRepository returns a repository backed by path, or DefaultFile
// when path is empty.
func NewFileRepository(path string) *FileRepository {
	if path == "" {
		path = DefaultFile
	}
	return &FileRepository{path: path}
}

// Path returns the backing file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load implements Repository. A missing file is an empty collection.
func (r *FileRepository) Load(_ context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInternal,
			"failed to read favorites file", err, map[string]any{"path": r.path})
	}

	var list []Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInternal,
			"favorites file is not a JSON list", err, map[string]any{"path": r.path})
	}
	if list == nil {
		list = []Entry{}
	}
	return list, nil
}

// Save implements Repository.
func (r *FileRepository) Save(_ context.Context, list []Entry) error {
	if list == nil {
		list = []Entry{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInternal, "failed to encode favorites", err)
	}
	data = append(data, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := writeFileAtomic(r.path, data, 0o644); err != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeInternal,
			"failed to write favorites file", err, map[string]any{"path": r.path})
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return err
	}
	return nil
}
