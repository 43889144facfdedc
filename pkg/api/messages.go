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

package api

// Notice levels, from least to most severe.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// User-visible messages.
const (
	MsgNoNameResults        = "No results found for that name."
	MsgNoIngredientResults  = "No cocktails found for that ingredient."
	MsgNoDetailedRecipes    = "Could not retrieve detailed recipes (API or network issue)."
	MsgAPIErrorPrefix       = "API error: "
	MsgRandomFailed         = "Random fetch failed."
	MsgRecipeNotFound       = "No recipe found with that id."
	MsgNothingSelected      = "No recipe selected."
	MsgNoFavorites          = "No favorites yet."
	MsgSavedToFavorites     = "Saved to favorites!"
	MsgAlreadyInFavorites   = "Already in favorites."
	MsgSaved                = "Saved!"
	MsgRemovedFromFavorites = "Removed from favorites."
	MsgNotInFavorites       = "Not in favorites."
	MsgAllSet               = "You're set — no missing ingredients!"
)

// Notice is a message for the user. The zero value means nothing to say.
type Notice struct {
	Level   string `json:"level,omitempty" yaml:"level,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func notice(level, msg string) Notice {
	return Notice{Level: level, Message: msg}
}

// Empty reports whether n carries no message.
func (n Notice) Empty() bool {
	return n.Message == ""
}
