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
	"strings"

	"github.com/NVIDIA/cocktail-explorer/pkg/cocktail"
	"github.com/NVIDIA/cocktail-explorer/pkg/defaults"
)

// Ingredient is one ingredient line of a recipe.
type Ingredient struct {
	Name    string `json:"name" yaml:"name"`
	Measure string `json:"measure" yaml:"measure"`
}

// Recipe is the domain view of an API record.
type Recipe struct {
	ID           string       `json:"id" yaml:"id"`
	Title        string       `json:"title" yaml:"title"`
	Category     string       `json:"category,omitempty" yaml:"category,omitempty"`
	Alcoholic    string       `json:"alcoholic,omitempty" yaml:"alcoholic,omitempty"`
	Glass        string       `json:"glass,omitempty" yaml:"glass,omitempty"`
	IBA          string       `json:"iba,omitempty" yaml:"iba,omitempty"`
	ImageURL     string       `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	Instructions string       `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// ExtractIngredients reads the numbered ingredient and measure fields in
// slot order. A slot counts only when its ingredient name is non-blank; a
// missing measure becomes "".
func ExtractIngredients(raw cocktail.RawRecipe) []Ingredient {
	out := make([]Ingredient, 0, defaults.IngredientSlots)
	for slot := 1; slot <= defaults.IngredientSlots; slot++ {
		name := strings.TrimSpace(raw.String(cocktail.IngredientField(slot)))
		if name == "" {
			continue
		}
		out = append(out, Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(raw.String(cocktail.MeasureField(slot))),
		})
	}
	return out
}

// FromRaw converts an API record into a Recipe.
func FromRaw(raw cocktail.RawRecipe) Recipe {
	return Recipe{
		ID:           raw.ID(),
		Title:        raw.Name(),
		Category:     raw.String(cocktail.FieldCategory),
		Alcoholic:    raw.String(cocktail.FieldAlcoholic),
		Glass:        raw.String(cocktail.FieldGlass),
		IBA:          raw.String(cocktail.FieldIBA),
		ImageURL:     raw.String(cocktail.FieldThumbnail),
		Instructions: raw.String(cocktail.FieldInstructions),
		Ingredients:  ExtractIngredients(raw),
	}
}

// FromRawList converts a list of API records, keeping order.
func FromRawList(raws []cocktail.RawRecipe) []Recipe {
	out := make([]Recipe, 0, len(raws))
	for _, raw := range raws {
		out = append(out, FromRaw(raw))
	}
	return out
}

// IngredientNames returns the ingredient names in slot order.
func (r Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		names = append(names, ing.Name)
	}
	return names
}

// DisplayTitle returns the title, or "Recipe" when there is none.
func (r Recipe) DisplayTitle() string {
	if strings.TrimSpace(r.Title) == "" {
		return "Recipe"
	}
	return r.Title
}
