package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "button unique keeps its form", input: "restart", expected: "restart"},
		{name: "telebot callback prefix dropped", input: "\fhas_card|yes", expected: "has_card|yes"},
		{name: "trailing newline from client", input: "gender|female\n", expected: "gender|female"},
		{name: "zero width space", input: "exit\u200b_admin", expected: "exit_admin"},
		{name: "control bytes inside payload", input: "refresh\x00\x7f", expected: "refresh"},
		{name: "non latin payload survives", input: "\fcity|Москва", expected: "city|Москва"},
		{name: "blank", input: " \t ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestSplitCallbackData(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedUnique string
		expectedData   string
	}{
		{
			name:           "unique with payload",
			input:          "\fhas_card|yes",
			expectedUnique: "has_card",
			expectedData:   "yes",
		},
		{
			name:           "unique only",
			input:          "\fnext",
			expectedUnique: "next",
			expectedData:   "",
		},
		{
			name:           "plain data",
			input:          "gender|female",
			expectedUnique: "gender",
			expectedData:   "female",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unique, data := splitCallbackData(tt.input)
			assert.Equal(t, tt.expectedUnique, unique)
			assert.Equal(t, tt.expectedData, data)
		})
	}
}
