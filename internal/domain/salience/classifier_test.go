package salience

import (
	"testing"

	m "github.com/ZhouZhiping045/FidelityGPT/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []m.Category
	}{
		{"plain assignment", "x = 1;", []m.Category{m.CategoryAssignment}},
		{"equality counts as assignment", "x == 1", []m.Category{m.CategoryAssignment}},
		{"loop header excludes assignment", "for (i = 0; i < n; i++)", []m.Category{m.CategoryAddition, m.CategoryLoop, m.CategoryFunction}},
		{"loop keyword inside identifier", "format = 1;", []m.Category{m.CategoryLoop}},
		{"declaration", "unsigned int v5;", []m.Category{m.CategoryVariable}},
		{"typed cast", "*(_DWORD *)(a1 + 4) = v5;", []m.Category{m.CategoryAssignment, m.CategoryAddition, m.CategoryTypedCast}},
		{"byte cast", "*(_BYTE *)p;", []m.Category{m.CategoryTypedCast}},
		{"conditional call shape", "if ( a2 == b )", []m.Category{m.CategoryAssignment, m.CategoryConditional, m.CategoryFunction}},
		{"return", "return result;", []m.Category{m.CategoryReturn}},
		{"call", "  puts(s);", []m.Category{m.CategoryFunction}},
		{"no match", "  }", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.line))
		})
	}
}

func TestClassify_DefaultWeights(t *testing.T) {
	weights := m.DefaultWeightTable()

	tests := []struct {
		line         string
		wantCategory m.Category
		wantStrength int
	}{
		{"x = 1;", m.CategoryAssignment, 20},
		{"*(_DWORD *)(a1 + 4) = v5;", m.CategoryTypedCast, 26},
		{"unsigned int v5;", m.CategoryVariable, 26},
		{"if ( a2 == b )", m.CategoryConditional, 25},
		// addition and return tie at 25; addition is evaluated first
		{"return x + 1;", m.CategoryAddition, 25},
		{"  }", m.CategoryNone, 0},
		{"", m.CategoryNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := Classify(tt.line, weights)
			assert.Equal(t, tt.line, got.Text)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantStrength, got.Strength)
		})
	}
}

func TestClassify_CustomWeights(t *testing.T) {
	weights := m.DefaultWeightTable()
	weights[m.CategoryFunction] = 50

	got := Classify("result = binarySearch(a1, a2, v5 + 1, a4);", weights)
	assert.Equal(t, m.CategoryFunction, got.Category)
	assert.Equal(t, 50, got.Strength)
}

func TestClassify_TieKeepsEvaluationOrder(t *testing.T) {
	weights := m.WeightTable{}
	for _, category := range m.AllCategories {
		weights[category] = 30
	}

	got := Classify("if (x) return x;", weights)
	assert.Equal(t, m.CategoryReturn, got.Category)
}
