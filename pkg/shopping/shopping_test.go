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

package shopping

import (
	"reflect"
	"testing"
)

func TestMissing(t *testing.T) {
	tests := []struct {
		name   string
		have   string
		needed []string
		want   []string
	}{
		{
			name:   "case and whitespace insensitive",
			have:   "gin, LIME juice",
			needed: []string{"Gin", "Lime Juice", "Sugar"},
			want:   []string{"Sugar"},
		},
		{
			name:   "nothing on hand",
			have:   "",
			needed: []string{"Vodka", "Kahlua"},
			want:   []string{"Vodka", "Kahlua"},
		},
		{
			name:   "blank tokens ignored",
			have:   " , ,rum,, ",
			needed: []string{"Rum", "Mint"},
			want:   []string{"Mint"},
		},
		{
			name:   "everything on hand",
			have:   "tequila,triple sec,lime juice,salt",
			needed: []string{"Tequila", "Triple sec", "Lime juice", "Salt"},
			want:   []string{},
		},
		{
			name:   "exact match only",
			have:   "lime",
			needed: []string{"Lime juice"},
			want:   []string{"Lime juice"},
		},
		{
			name:   "needed keeps spelling",
			have:   "soda",
			needed: []string{"  Angostura Bitters ", "Soda Water"},
			want:   []string{"  Angostura Bitters ", "Soda Water"},
		},
		{
			name:   "needed entries are trimmed for comparison",
			have:   "sugar",
			needed: []string{" Sugar "},
			want:   []string{},
		},
		{
			name:   "unicode",
			have:   "CRÈME DE CASSIS",
			needed: []string{"Crème de Cassis"},
			want:   []string{},
		},
		{
			name:   "nil needed",
			have:   "gin",
			needed: nil,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Missing(tt.have, tt.needed)
			if got == nil {
				t.Fatal("Missing() returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Missing(%q, %q) = %q, want %q", tt.have, tt.needed, got, tt.want)
			}
		})
	}
}

func TestHaveSet(t *testing.T) {
	set := HaveSet(" Gin ,gin, Tonic,")
	if len(set) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(set), set)
	}
	for _, k := range []string{"gin", "tonic"} {
		if _, ok := set[k]; !ok {
			t.Errorf("expected %q in set", k)
		}
	}
}
