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

package cocktail

import (
	"fmt"
	"strconv"
)

// Field names used by the recipe API.
const (
	FieldID           = "idDrink"
	FieldName         = "strDrink"
	FieldCategory     = "strCategory"
	FieldAlcoholic    = "strAlcoholic"
	FieldThumbnail    = "strDrinkThumb"
	FieldGlass        = "strGlass"
	FieldIBA          = "strIBA"
	FieldInstructions = "strInstructions"
)

// IngredientField returns the name of the numbered ingredient field for slot.
func IngredientField(slot int) string {
	return "strIngredient" + strconv.Itoa(slot)
}

// MeasureField returns the name of the numbered measure field for slot.
func MeasureField(slot int) string {
	return "strMeasure" + strconv.Itoa(slot)
}

// RawRecipe is a recipe record as returned by the API. Any field may be
// missing or null. It is not validated.
type RawRecipe map[string]any

// String returns the field as a string. Missing and null fields yield "".
func (r RawRecipe) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// ID returns the recipe id.
func (r RawRecipe) ID() string { return r.String(FieldID) }

// Name returns the recipe title.
func (r RawRecipe) Name() string { return r.String(FieldName) }

// FilterStub is the partial record returned by an ingredient filter. Only
// ID is needed to resolve the full recipe.
type FilterStub struct {
	ID        string `json:"idDrink" yaml:"idDrink"`
	Name      string `json:"strDrink,omitempty" yaml:"strDrink,omitempty"`
	Thumbnail string `json:"strDrinkThumb,omitempty" yaml:"strDrinkThumb,omitempty"`
}

// IngredientResult is the outcome of SearchByIngredient.
//
// Candidates counts the stubs the filter returned (after truncation).
// Recipes holds the ones that resolved, in stub order, so
// len(Recipes) <= Candidates.
type IngredientResult struct {
	Candidates int         `json:"candidates" yaml:"candidates"`
	Recipes    []RawRecipe `json:"recipes" yaml:"recipes"`
}

// NoCandidates reports whether the filter matched nothing.
func (r IngredientResult) NoCandidates() bool {
	return r.Candidates == 0
}

// Unresolved reports whether the filter matched but no recipe could be
// looked up.
func (r IngredientResult) Unresolved() bool {
	return r.Candidates > 0 && len(r.Recipes) == 0
}
