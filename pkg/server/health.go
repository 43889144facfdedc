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

package server

import (
	"net/http"
	"time"

	"github.com/NVIDIA/cocktail-explorer/pkg/serializer"
)

const (
	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

func (s *Server) healthResponse(status, reason string) HealthResponse {
	return HealthResponse{
		Status:    status,
		Service:   s.config.Name,
		Version:   s.config.Version,
		Timestamp: time.Now(),
		Reason:    reason,
	}
}

// handleHealth reports liveness. It never touches the recipe API or the
// favorites store.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, s.healthResponse(statusHealthy, ""))
}

// handleReady reports 503 until the listener is up and again once shutdown
// has begun.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.isReady() {
		serializer.RespondJSON(w, http.StatusServiceUnavailable,
			s.healthResponse(statusNotReady, "server is starting or shutting down"))
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.healthResponse(statusReady, ""))
}
