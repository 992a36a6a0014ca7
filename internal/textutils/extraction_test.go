package textutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		amount      string
		description string
		found       bool
	}{
		{"spent on lunch", "gastei 50 no almoço", "50", "almoço", true},
		{"comma decimal", "paguei 30,50 na padaria santa tereza", "30.5", "padaria santa tereza", true},
		{"voucher with punctuation", "usei vr, 35 no restaurante", "35", "vr, restaurante", true},
		{"currency prefix", "comprei remédio R$ 45,90", "45.9", "remédio", true},
		{"currency suffix wins over bare number", "comprei 2 pães, 10 reais", "10", "pães", true},
		{"income", "recebi meu salário de 3000", "3000", "meu salário", true},
		{"only amount", "gastei 20", "20", "Sem descrição", true},
		{"original case kept", "Gastei 12 no Mercado Central", "12", "Mercado Central", true},
		{"no amount", "gastei muito no almoço", "", "", false},
		{"empty", "", "", "", false},
	}

	e := NewExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, description, found := e.Extract(tt.text)
			assert.Equal(t, tt.found, found)
			if !tt.found {
				assert.True(t, amount.IsZero())
				assert.Empty(t, description)
				return
			}
			assert.Equal(t, tt.amount, amount.String())
			assert.Equal(t, tt.description, description)
		})
	}
}

func TestExtractor_CustomStopWords(t *testing.T) {
	e := NewExtractor([]string{"spent", "on"})
	amount, description, found := e.Extract("spent 12 on coffee")
	assert.True(t, found)
	assert.Equal(t, "12", amount.String())
	assert.Equal(t, "coffee", description)
}

func TestExtractor_IsPure(t *testing.T) {
	e := NewExtractor(nil)
	a1, d1, f1 := e.Extract("gastei 50 no almoço")
	a2, d2, f2 := e.Extract("gastei 50 no almoço")
	assert.True(t, a1.Equal(a2))
	assert.Equal(t, d1, d2)
	assert.Equal(t, f1, f2)
}

func TestContainsKeyword(t *testing.T) {
	tests := []struct {
		text    string
		keyword string
		want    bool
	}{
		{"usei vr, 35 no restaurante", "vr", true},
		{"+vr 600", "vr", true},
		{"comprei uva 10", "va", false},
		{"paguei 30 no vale refeição", "vale refeição", true},
		{"gastei 5 no vale-refeição", "vale-refeição", true},
		{"recebi meu SALÁRIO", "salário", true},
		{"anything", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsKeyword(tt.text, tt.keyword))
		})
	}
}

func TestTokensAndNumeric(t *testing.T) {
	assert.Equal(t, []string{"usei", "vr", "35"}, Tokens("  Usei VR, 35! "))
	assert.True(t, IsNumeric("12,50"))
	assert.False(t, IsNumeric("r$"))
	assert.False(t, IsNumeric(""))
	assert.Equal(t, "gastei 5", Normalize("  Gastei 5 "))
}
