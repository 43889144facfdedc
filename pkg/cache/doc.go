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

// Package cache memoizes recipe API responses.
//
// Entries are keyed by URL plus the sorted parameter set and stay fresh for
// one hour from the fetch that produced them. An expired entry is refetched
// on next access; Purge drops expired entries in bulk.
//
// Failed fetches are returned but not stored unless WithErrorCaching(true)
// is given, in which case the error is replayed until the entry expires.
package cache
