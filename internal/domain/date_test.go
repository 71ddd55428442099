package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-30"`), &back))
	assert.Equal(t, "2024-06-30", back.String())

	assert.Error(t, json.Unmarshal([]byte(`"06/30/2024"`), &back))
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
	}{
		{name: "time", src: time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)},
		{name: "bytes", src: []byte("2024-05-01")},
		{name: "string datetime", src: "2024-05-01 00:00:00"},
		{name: "rfc3339", src: "2024-05-01T00:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, "2024-05-01", d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
}
