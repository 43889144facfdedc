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

// Package errors provides structured errors with machine-readable codes.
//
// Every failure crossing a package boundary in the explorer is a
// *StructuredError: the fetch layer classifies transport, status, and
// decoding failures; the HTTP layer maps codes to status codes and
// retryability; the UI shows Message to the user.
//
//	err := errors.Wrap(errors.ErrCodeUnavailable, "recipe API unreachable", cause)
//	if errors.CodeOf(err) == errors.ErrCodeUnavailable { ... }
//
// StructuredError implements Unwrap, so the standard library errors.Is and
// errors.As work across wrapping.
package errors
