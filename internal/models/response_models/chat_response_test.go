package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatResponseWireFormat(t *testing.T) {
	out, err := json.Marshal(ChatResponse{Reply: "반영했어요.", UpdatedItinerary: "2025-08-13 (Day1)"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reply":"반영했어요.","updatedItinerary":"2025-08-13 (Day1)"}`, string(out))
}

func TestChatResponseOmitsEmptyItinerary(t *testing.T) {
	out, err := json.Marshal(ChatResponse{Reply: "반영했어요."})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reply":"반영했어요."}`, string(out))
}
