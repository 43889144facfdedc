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

// Package favorites persists the user's saved recipes.
//
// A Store implements add, remove, toggle, and membership on top of a
// Repository that only knows how to load and save the whole list. Three
// repositories are provided:
//
//   - FileRepository: indented JSON array, default favorites.json
//   - MemoryRepository: process memory, for tests and throwaway runs
//   - PostgresRepository: a favorites table created by embedded goose
//     migrations
//
// A favorites file that is missing or corrupt loads as an empty list. The
// corruption is logged and the next save overwrites the file.
package favorites
