package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties_SetKeepsFirstPosition(t *testing.T) {
	props := NewProperties()
	props.Set("Mass", "1")
	props.Set("Density", "2")
	props.Set("mass", "3")

	require.Equal(t, 2, props.Len())
	assert.Equal(t, []Property{
		{Key: "mass", Value: "3"},
		{Key: "density", Value: "2"},
	}, props.All())
}

func TestProperties_GetIsCaseInsensitive(t *testing.T) {
	props := NewProperties()
	props.Set("GM", "398600.4")

	v, ok := props.Get("gm")
	require.True(t, ok)
	assert.Equal(t, "398600.4", v)

	_, ok = props.Get("density")
	assert.False(t, ok)
}

func TestProperties_SetClean(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantKey   string
		wantValue string
		stored    bool
	}{
		{name: "strips commas and spaces", key: " Mass, 10^24 kg ", value: " 5,972.37 ", wantKey: "mass 10^24 kg", wantValue: "5972.37", stored: true},
		{name: "empty key dropped", key: "  ", value: "1", stored: false},
		{name: "empty value dropped", key: "Radius", value: " , ", stored: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := NewProperties()
			assert.Equal(t, tt.stored, props.SetClean(tt.key, tt.value))
			if !tt.stored {
				assert.Zero(t, props.Len())
				return
			}
			v, ok := props.Get(tt.wantKey)
			require.True(t, ok)
			assert.Equal(t, tt.wantValue, v)
		})
	}
}

func TestProperties_AllReturnsCopy(t *testing.T) {
	props := NewProperties()
	props.Set("a", "1")

	all := props.All()
	all[0].Value = "changed"

	v, _ := props.Get("a")
	assert.Equal(t, "1", v)
}
