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
	"log/slog"
)

// Open returns the repository selected by configuration. A non-empty dsn
// selects PostgresRepository; otherwise favorites live in the JSON file at
// path (DefaultFile when empty). The returned close func is never nil.
func Open(ctx context.Context, path, dsn string) (Repository, func() error, error) {
	if dsn != "" {
		repo, err := OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, nopClose, err
		}
		slog.Debug("favorites backed by postgres")
		return repo, repo.Close, nil
	}

	repo := NewFileRepository(path)
	slog.Debug("favorites backed by file", "path", repo.Path())
	return repo, nopClose, nil
}

func nopClose() error { return nil }
