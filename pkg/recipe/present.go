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

package recipe

import (
	"net/url"

	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
	"github.com/NVIDIA/cocktail-explorer/pkg/shopping"
)

const (
	youTubeSearchURL = "https://www.youtube.com/results?search_query="

	// NoInstructions replaces empty instructions on a summary card.
	NoInstructions = "No instructions"

	// NoInstructionsDetail replaces empty instructions in the detail view.
	NoInstructionsDetail = "No instructions available."

	truncationMarker = "..."
)

// YouTubeSearchLink returns a YouTube search URL for "<title> recipe".
func YouTubeSearchLink(title string) string {
	return youTubeSearchURL + url.QueryEscape(title+" recipe")
}

// SummaryInstructions shortens text for a summary card. Text longer than
// the summary length is cut to that many characters followed by "...".
func SummaryInstructions(text string) string {
	if text == "" {
		return NoInstructions
	}
	runes := []rune(text)
	if len(runes) <= defaults.SummaryInstructionsLength {
		return text
	}
	return string(runes[:defaults.SummaryInstructionsLength]) + truncationMarker
}

// DetailInstructions returns the full instructions for the detail view.
func DetailInstructions(text string) string {
	if text == "" {
		return NoInstructionsDetail
	}
	return text
}

// Card is a recipe as shown in a result list.
type Card struct {
	Recipe   `yaml:",inline"`
	Summary  string `json:"summary" yaml:"summary"`
	VideoURL string `json:"videoUrl" yaml:"videoUrl"`
	Favorite bool   `json:"favorite" yaml:"favorite"`
}

// NewCard builds the summary card for r.
func NewCard(r Recipe, favorite bool) Card {
	return Card{
		Recipe:   r,
		Summary:  SummaryInstructions(r.Instructions),
		VideoURL: YouTubeSearchLink(r.Title),
		Favorite: favorite,
	}
}

// NewCards builds cards for recipes. isFavorite may be nil.
func NewCards(recipes []Recipe, isFavorite func(id string) bool) []Card {
	cards := make([]Card, 0, len(recipes))
	for _, r := range recipes {
		fav := isFavorite != nil && isFavorite(r.ID)
		cards = append(cards, NewCard(r, fav))
	}
	return cards
}

// Detail is a recipe as shown in the detail view, including the shopping
// list for the ingredients the user has.
type Detail struct {
	Recipe   `yaml:",inline"`
	Heading  string   `json:"heading" yaml:"heading"`
	FullText string   `json:"fullInstructions" yaml:"fullInstructions"`
	VideoURL string   `json:"videoUrl" yaml:"videoUrl"`
	Favorite bool     `json:"favorite" yaml:"favorite"`
	Have     string   `json:"have" yaml:"have"`
	Missing  []string `json:"missing" yaml:"missing"`
}

// NewDetail builds the detail view for r given the comma-separated list of
// ingredients on hand.
func NewDetail(r Recipe, favorite bool, haveCSV string) Detail {
	return Detail{
		Recipe:   r,
		Heading:  r.DisplayTitle(),
		FullText: DetailInstructions(r.Instructions),
		VideoURL: YouTubeSearchLink(r.DisplayTitle()),
		Favorite: favorite,
		Have:     haveCSV,
		Missing:  shopping.Missing(haveCSV, r.IngredientNames()),
	}
}

// AllSet reports whether nothing is missing.
func (d Detail) AllSet() bool {
	return len(d.Missing) == 0
}
